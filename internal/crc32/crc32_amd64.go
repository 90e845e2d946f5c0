//go:build amd64

package crc32

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

var archFeatures = []cpuid.FeatureID{cpuid.SSE42, cpuid.CLMUL, cpuid.SSE4}

func archAvailableIEEE() bool {
	return cpu.X86.HasPCLMULQDQ && cpu.X86.HasSSE41
}

func archAvailableCastagnoli() bool {
	return cpu.X86.HasSSE42
}

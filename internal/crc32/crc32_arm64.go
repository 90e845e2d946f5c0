//go:build arm64

package crc32

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

var archFeatures = []cpuid.FeatureID{cpuid.CRC32, cpuid.PMULL}

func archAvailableIEEE() bool {
	return cpu.ARM64.HasCRC32
}

func archAvailableCastagnoli() bool {
	return cpu.ARM64.HasCRC32
}

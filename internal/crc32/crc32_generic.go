//go:build !amd64 && !arm64

package crc32

import (
	"github.com/klauspost/cpuid/v2"
)

var archFeatures []cpuid.FeatureID

func archAvailableIEEE() bool {
	return false
}

func archAvailableCastagnoli() bool {
	return false
}

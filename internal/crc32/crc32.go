// Package crc32 selects CPU instructions for the two 32-bit CRCs that have
// them: CRC-32/ISO-HDLC (IEEE) and CRC-32/ISCSI (Castagnoli).
//
// Unlike hash/crc32, every function here operates on the raw CRC register:
// the caller supplies the register exactly as the table-driven engine holds
// it, and receives it back in the same form.  The init and xorout inversions
// are the caller's concern.
package crc32

import (
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/klauspost/crc32"
)

// Size is the size of a CRC-32 register in bytes.
const Size = 4

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

var gArchOnce sync.Once
var gArchIEEE bool
var gArchCastagnoli bool

func probe() {
	gArchOnce.Do(func() {
		gArchIEEE = archAvailableIEEE()
		gArchCastagnoli = archAvailableCastagnoli()
	})
}

// AvailableIEEE returns true iff the CPU can accelerate CRC-32/ISO-HDLC.
func AvailableIEEE() bool {
	probe()
	return gArchIEEE
}

// AvailableCastagnoli returns true iff the CPU can accelerate CRC-32/ISCSI.
func AvailableCastagnoli() bool {
	probe()
	return gArchCastagnoli
}

// UpdateIEEE feeds p into the raw reflected CRC-32/ISO-HDLC register reg and
// returns the new register.
func UpdateIEEE(reg uint32, p []byte) uint32 {
	if len(p) == 0 {
		return reg
	}
	return ^crc32.Update(^reg, crc32.IEEETable, p)
}

// UpdateCastagnoli feeds p into the raw reflected CRC-32/ISCSI register reg and
// returns the new register.
func UpdateCastagnoli(reg uint32, p []byte) uint32 {
	if len(p) == 0 {
		return reg
	}
	return ^crc32.Update(^reg, castagnoliTable, p)
}

// Describe returns a one-line summary of the CPU and of which CRC-32 variants
// it accelerates.
func Describe() string {
	var features []string
	for _, id := range archFeatures {
		if cpuid.CPU.Supports(id) {
			features = append(features, id.String())
		}
	}
	if len(features) == 0 {
		features = append(features, "none")
	}
	return fmt.Sprintf("cpu=%q vendor=%s cores=%d/%d crc-features=%s ieee=%t castagnoli=%t",
		strings.TrimSpace(cpuid.CPU.BrandName),
		cpuid.CPU.VendorString,
		cpuid.CPU.PhysicalCores,
		cpuid.CPU.LogicalCores,
		strings.Join(features, ","),
		AvailableIEEE(),
		AvailableCastagnoli())
}

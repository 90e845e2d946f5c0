package crc

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// Strategy indicates how a Model computes its CRC.  The Strategy is chosen
// once, when the Model is constructed.
type Strategy byte

const (
	// SoftwareStrategy indicates the portable table-driven algorithm.
	SoftwareStrategy Strategy = iota

	// HardwareCRC32Strategy indicates that CRC-32/ISO-HDLC is computed
	// with CPU instructions (PCLMULQDQ on amd64, CRC32 on arm64).
	HardwareCRC32Strategy

	// HardwareCRC32CStrategy indicates that CRC-32/ISCSI (Castagnoli) is
	// computed with CPU instructions (SSE 4.2 on amd64, CRC32 on arm64).
	HardwareCRC32CStrategy
)

var strategyData = []enumhelper.EnumData{
	{GoName: "SoftwareStrategy", Name: "software", Aliases: []string{"table"}},
	{GoName: "HardwareCRC32Strategy", Name: "hardware-crc32"},
	{GoName: "HardwareCRC32CStrategy", Name: "hardware-crc32c"},
}

// IsValid returns true if s is a valid Strategy constant.
func (s Strategy) IsValid() bool {
	return s >= SoftwareStrategy && s <= HardwareCRC32CStrategy
}

// IsHardware returns true if s computes with CPU instructions.
func (s Strategy) IsHardware() bool {
	return s == HardwareCRC32Strategy || s == HardwareCRC32CStrategy
}

// GoString returns the Go string representation of this Strategy constant.
func (s Strategy) GoString() string {
	return enumhelper.DereferenceEnumData("Strategy", strategyData, uint(s)).GoName
}

// String returns the string representation of this Strategy constant.
func (s Strategy) String() string {
	return enumhelper.DereferenceEnumData("Strategy", strategyData, uint(s)).Name
}

// MarshalJSON returns the JSON representation of this Strategy constant.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Strategy", strategyData, uint(s))
}

// Parse parses a string representation of a Strategy constant.
func (s *Strategy) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Strategy", strategyData, str)
	*s = Strategy(value)
	return err
}

var _ fmt.GoStringer = Strategy(0)
var _ fmt.Stringer = Strategy(0)

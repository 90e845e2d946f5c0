package crc

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// Format indicates how a Sum is rendered as text by Sum.Render.
type Format byte

const (
	// HexFormat renders lowercase hexadecimal, zero-padded to HexLen
	// digits.
	HexFormat Format = iota

	// UpperHexFormat renders uppercase hexadecimal, zero-padded to HexLen
	// digits.
	UpperHexFormat

	// DecimalFormat renders the unsigned decimal value.
	DecimalFormat
)

var formatData = []enumhelper.EnumData{
	{GoName: "HexFormat", Name: "hex", Aliases: []string{strDefault, "lower"}},
	{GoName: "UpperHexFormat", Name: "hex-upper", Aliases: []string{"upper"}},
	{GoName: "DecimalFormat", Name: "decimal", Aliases: []string{"dec"}},
}

// IsValid returns true if f is a valid Format constant.
func (f Format) IsValid() bool {
	return f >= HexFormat && f <= DecimalFormat
}

// GoString returns the Go string representation of this Format constant.
func (f Format) GoString() string {
	return enumhelper.DereferenceEnumData("Format", formatData, uint(f)).GoName
}

// String returns the string representation of this Format constant.
func (f Format) String() string {
	return enumhelper.DereferenceEnumData("Format", formatData, uint(f)).Name
}

// MarshalJSON returns the JSON representation of this Format constant.
func (f Format) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Format", formatData, uint(f))
}

// Parse parses a string representation of a Format constant.
func (f *Format) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Format", formatData, str)
	*f = Format(value)
	return err
}

var _ fmt.GoStringer = Format(0)
var _ fmt.Stringer = Format(0)

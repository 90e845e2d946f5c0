package crc

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned when data is written to a Hash that has already
// been finalized.
var ErrFinalized = errors.New("crc: hash has already been finalized")

// ErrFailed is returned when data is written to a Hash whose input source
// previously failed.  Call Reset to reuse it.
var ErrFailed = errors.New("crc: hash is in a failed state")

// ConfigError is returned when a Definition cannot be used, e.g. because its
// width is less than 8 bits or exceeds the capacity of the chosen Register
// type.
type ConfigError struct {
	Name    string
	Width   uint
	Problem string
}

// Error fulfills the error interface.
func (err ConfigError) Error() string {
	return fmt.Sprintf("crc: invalid definition %q (width %d): %s", err.Name, err.Width, err.Problem)
}

var _ error = ConfigError{}

// ValidationError is returned when a Definition's declared check value does
// not match the CRC of "123456789" computed with that Definition.  This always
// indicates a mistake in the Definition itself.
type ValidationError struct {
	Name     string
	Computed Value
	Expected Value
	Mask     Value
}

// Error fulfills the error interface.
func (err ValidationError) Error() string {
	return fmt.Sprintf("crc: self-check failed for %q: computed %v, expected %v (mask %v)", err.Name, err.Computed, err.Expected, err.Mask)
}

var _ error = ValidationError{}

// InputError is returned when an operation that requires input data is given
// none, e.g. a nil io.Reader.
type InputError struct {
	Problem string
}

// Error fulfills the error interface.
func (err InputError) Error() string {
	return fmt.Sprintf("crc: invalid input: %s", err.Problem)
}

var _ error = InputError{}

// UnknownPresetError is returned when a preset name is not in the catalog.  A
// zero Width means that the name was looked up in every family.
type UnknownPresetError struct {
	Width uint
	Name  string
}

// Error fulfills the error interface.
func (err UnknownPresetError) Error() string {
	if err.Width == 0 {
		return fmt.Sprintf("crc: unknown preset %q", err.Name)
	}
	return fmt.Sprintf("crc: unknown preset %q in the %d-bit family", err.Name, err.Width)
}

var _ error = UnknownPresetError{}

// MismatchError is returned by VerifyCatalog when a Model disagrees with the
// bit-serial reference.
type MismatchError struct {
	Name      string
	Length    int
	Computed  Sum
	Reference Sum
}

// Error fulfills the error interface.
func (err MismatchError) Error() string {
	return fmt.Sprintf("crc: %q disagrees with the bit-serial reference on %d bytes: computed %v, reference %v", err.Name, err.Length, err.Computed, err.Reference)
}

var _ error = MismatchError{}

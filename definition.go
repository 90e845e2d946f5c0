package crc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
)

// MinWidth is the narrowest CRC register supported.
const MinWidth = 8

// checkInput is the message whose CRC every Definition declares as its Check.
var checkInput = []byte("123456789")

// Definition describes one CRC variant.  It is plain data; NewModel turns it
// into something that can compute checksums.
//
// Poly, Init and XorOut use the conventions of the published CRC catalogues:
// Poly is written unreflected with the implicit x**Width term omitted, and
// Init is the register value before the first input bit is shifted in.  When
// RefIn is set, input bytes are consumed least significant bit first; when
// RefOut is set, the register is reflected before XorOut is applied.
type Definition struct {
	Name   string
	Width  uint
	Poly   Value
	Init   Value
	RefIn  bool
	RefOut bool
	XorOut Value

	// Check is the CRC of the ASCII string "123456789".
	Check Value

	// Mask, if non-zero, replaces the default 2**Width - 1 register mask.
	Mask Value
}

// Key identifies a CRC variant by width family and name.
type Key struct {
	Width uint
	Name  string
}

// String returns the string representation of this Key.
func (key Key) String() string {
	return fmt.Sprintf("%d/%s", key.Width, key.Name)
}

// Key returns the Key for this Definition.
func (def Definition) Key() Key {
	return Key{Width: def.Width, Name: def.Name}
}

// EffectiveMask returns Mask, or 2**Width - 1 if Mask is zero.
func (def Definition) EffectiveMask() Value {
	if def.Mask.IsZero() {
		return onesValue(def.Width)
	}
	return def.Mask
}

// HasDefaultMask returns true iff the register mask is 2**Width - 1.
func (def Definition) HasDefaultMask() bool {
	return def.Mask.IsZero() || def.Mask.Equal(onesValue(def.Width))
}

// Validate checks that this Definition can be computed with a Register whose
// Capacity is the given number of bits.  All problems are reported.
func (def Definition) Validate(capacity uint) error {
	var errlist []error

	errlist = checkDefinitionWidth(def, capacity, errlist)
	errlist = checkDefinitionValue(def, "poly", def.Poly, errlist)
	errlist = checkDefinitionValue(def, "init", def.Init, errlist)
	errlist = checkDefinitionValue(def, "xorout", def.XorOut, errlist)
	errlist = checkDefinitionValue(def, "check", def.Check, errlist)
	errlist = checkDefinitionValue(def, "mask", def.Mask, errlist)
	if def.Poly.IsZero() {
		errlist = append(errlist, def.configError("poly is zero"))
	}

	if len(errlist) == 0 {
		return nil
	}

	if len(errlist) == 1 {
		return errlist[0]
	}

	return &multierror.Error{Errors: errlist}
}

func (def Definition) configError(format string, args ...interface{}) ConfigError {
	return ConfigError{Name: def.Name, Width: def.Width, Problem: fmt.Sprintf(format, args...)}
}

func checkDefinitionWidth(def Definition, capacity uint, errlist []error) []error {
	if def.Width < MinWidth {
		errlist = append(errlist, def.configError("width is less than the minimum of %d bits", MinWidth))
	}
	if def.Width > capacity {
		errlist = append(errlist, def.configError("width exceeds the %d-bit capacity of the register type", capacity))
	}
	return errlist
}

func checkDefinitionValue(def Definition, field string, v Value, errlist []error) []error {
	if n := v.BitLen(); n > def.Width {
		errlist = append(errlist, def.configError("%s %v is %d bits wide", field, v, n))
	}
	return errlist
}

// String returns the catalogue line representation of this Definition, e.g.
//
//	width=16 poly=0x1021 init=0x0000 refin=false refout=false xorout=0x0000 check=0x31c3 name="CRC-16/XMODEM"
func (def Definition) String() string {
	digits := int(def.Width+3) / 4
	var sb strings.Builder
	fmt.Fprintf(&sb, "width=%d poly=0x%s init=0x%s refin=%t refout=%t xorout=0x%s check=0x%s",
		def.Width,
		def.Poly.Hex(digits),
		def.Init.Hex(digits),
		def.RefIn,
		def.RefOut,
		def.XorOut.Hex(digits),
		def.Check.Hex(digits))
	if !def.Mask.IsZero() {
		fmt.Fprintf(&sb, " mask=0x%s", def.Mask.Hex(digits))
	}
	fmt.Fprintf(&sb, " name=%q", def.Name)
	return sb.String()
}

// ParseDefinition parses the catalogue line representation of a Definition,
// as produced by Definition.String.  The "residue" field is accepted and
// ignored.  The result is not validated.
func ParseDefinition(line string) (Definition, error) {
	fields, err := splitDefinitionFields(line)
	if err != nil {
		return Definition{}, err
	}

	var def Definition
	var haveWidth, havePoly bool
	for _, field := range fields {
		key, value := field[0], field[1]
		switch key {
		case "width":
			u64, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return Definition{}, fmt.Errorf("invalid width %q: %w", value, err)
			}
			def.Width = uint(u64)
			haveWidth = true
		case "poly":
			def.Poly, err = ParseValue(value)
			havePoly = true
		case "init":
			def.Init, err = ParseValue(value)
		case "xorout":
			def.XorOut, err = ParseValue(value)
		case "check":
			def.Check, err = ParseValue(value)
		case "mask":
			def.Mask, err = ParseValue(value)
		case "residue":
			_, err = ParseValue(value)
		case "refin":
			def.RefIn, err = strconv.ParseBool(value)
		case "refout":
			def.RefOut, err = strconv.ParseBool(value)
		case "name":
			def.Name = value
		default:
			return Definition{}, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return Definition{}, fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	if !haveWidth {
		return Definition{}, fmt.Errorf("missing field %q", "width")
	}
	if !havePoly {
		return Definition{}, fmt.Errorf("missing field %q", "poly")
	}
	return def, nil
}

func splitDefinitionFields(line string) ([][2]string, error) {
	var out [][2]string
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed field at %q", rest)
		}
		key := strings.ToLower(rest[:eq])
		if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("malformed field at %q", rest)
		}
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("malformed quoted value for %q: %w", key, err)
			}
			value, err = strconv.Unquote(quoted)
			if err != nil {
				return nil, fmt.Errorf("malformed quoted value for %q: %w", key, err)
			}
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		out = append(out, [2]string{key, value})
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	return out, nil
}

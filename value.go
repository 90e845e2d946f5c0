package crc

import (
	"encoding"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// Value is an immutable unsigned integer of unbounded size.  Values carry CRC
// parameters and results whose width may exceed 64 bits.  The zero Value is 0.
type Value struct {
	n *big.Int
}

// V returns the Value equal to u.
func V(u uint64) Value {
	if u == 0 {
		return Value{}
	}
	return Value{n: new(big.Int).SetUint64(u)}
}

// ValueFromBig returns a Value equal to n.  The caller's *big.Int is copied.
func ValueFromBig(n *big.Int) Value {
	if n == nil || n.Sign() == 0 {
		return Value{}
	}
	if n.Sign() < 0 {
		panic(fmt.Errorf("negative value %v", n))
	}
	return Value{n: new(big.Int).Set(n)}
}

// ParseValue parses a hexadecimal ("0x" prefix) or decimal representation of
// a Value.  Underscores are permitted as digit separators.
func ParseValue(str string) (Value, error) {
	s := strings.TrimSpace(str)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return Value{}, fmt.Errorf("invalid value %q: no digits", str)
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok || n.Sign() < 0 {
		return Value{}, fmt.Errorf("invalid value %q", str)
	}
	if n.Sign() == 0 {
		return Value{}, nil
	}
	return Value{n: n}, nil
}

// MustParseValue is like ParseValue, but panics on error.
func MustParseValue(str string) Value {
	v, err := ParseValue(str)
	if err != nil {
		panic(err)
	}
	return v
}

// onesValue returns 2**width - 1.
func onesValue(width uint) Value {
	if width == 0 {
		return Value{}
	}
	n := new(big.Int).Lsh(big.NewInt(1), width)
	n.Sub(n, big.NewInt(1))
	return Value{n: n}
}

// IsZero returns true iff v is 0.
func (v Value) IsZero() bool {
	return v.n == nil || v.n.Sign() == 0
}

// BitLen returns the number of bits needed to represent v.
func (v Value) BitLen() uint {
	if v.n == nil {
		return 0
	}
	return uint(v.n.BitLen())
}

// Bit returns true iff bit i of v is set.
func (v Value) Bit(i uint) bool {
	if v.n == nil {
		return false
	}
	return v.n.Bit(int(i)) != 0
}

// Uint64 returns the low 64 bits of v.
func (v Value) Uint64() uint64 {
	if v.n == nil {
		return 0
	}
	var u uint64
	for i, w := range v.n.Bits() {
		shift := uint(i) * bits.UintSize
		if shift >= 64 {
			break
		}
		u |= uint64(w) << shift
	}
	return u
}

// Big returns a copy of v as a *big.Int.
func (v Value) Big() *big.Int {
	if v.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.n)
}

// Equal returns true iff v and other represent the same integer.
func (v Value) Equal(other Value) bool {
	switch {
	case v.IsZero():
		return other.IsZero()
	case other.IsZero():
		return false
	default:
		return v.n.Cmp(other.n) == 0
	}
}

// And returns the bitwise AND of v and other.
func (v Value) And(other Value) Value {
	if v.IsZero() || other.IsZero() {
		return Value{}
	}
	return Value{n: new(big.Int).And(v.n, other.n)}
}

// Hex returns the lowercase hexadecimal digits of v, left-padded with zeroes
// to at least the given number of digits.
func (v Value) Hex(digits int) string {
	var str string
	if v.n == nil {
		str = "0"
	} else {
		str = v.n.Text(16)
	}
	if pad := digits - len(str); pad > 0 {
		str = strings.Repeat("0", pad) + str
	}
	return str
}

// String returns the string representation of this Value.
func (v Value) String() string {
	return "0x" + v.Hex(1)
}

// GoString returns the Go string representation of this Value.
func (v Value) GoString() string {
	return fmt.Sprintf("crc.MustParseValue(%q)", v.String())
}

// MarshalText returns the text representation of this Value.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the text representation of a Value.
func (v *Value) UnmarshalText(raw []byte) error {
	parsed, err := ParseValue(string(raw))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

var _ fmt.GoStringer = Value{}
var _ fmt.Stringer = Value{}
var _ encoding.TextMarshaler = Value{}
var _ encoding.TextUnmarshaler = (*Value)(nil)

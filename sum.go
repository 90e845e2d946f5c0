package crc

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// hexLenOverrides lists widths whose conventional hex rendering is not padded
// to a whole number of bytes.
var hexLenOverrides = map[uint]int{
	10: 3,
	11: 3,
	12: 3,
	17: 5,
	82: 21,
}

// HexLen returns the number of hex digits used to render a CRC of the given
// width: ceil(width/4) rounded up to an even count, at least 2, except for a
// few widths whose published renderings use exactly ceil(width/4) digits.
func HexLen(width uint) int {
	if n, found := hexLenOverrides[width]; found {
		return n
	}
	n := int(width+3) / 4
	if n&1 != 0 {
		n++
	}
	if n < 2 {
		n = 2
	}
	return n
}

// Sum is a finalized CRC value together with its width.  It stringifies to
// zero-padded hexadecimal.
type Sum struct {
	width uint
	lo    uint64
	wide  Value
}

// NewSum returns the Sum of the given width whose value is v.  Bits of v at
// or above width are discarded.
func NewSum(width uint, v Value) Sum {
	v = v.And(onesValue(width))
	sum := Sum{width: width, lo: v.Uint64()}
	if width > 64 {
		sum.wide = v
	}
	return sum
}

// Width returns the width of the CRC in bits.
func (sum Sum) Width() uint { return sum.width }

// Uint8 returns the low 8 bits of the CRC.
func (sum Sum) Uint8() uint8 { return uint8(sum.lo) }

// Uint16 returns the low 16 bits of the CRC.
func (sum Sum) Uint16() uint16 { return uint16(sum.lo) }

// Uint32 returns the low 32 bits of the CRC.
func (sum Sum) Uint32() uint32 { return uint32(sum.lo) }

// Uint64 returns the low 64 bits of the CRC.  This is the full value iff
// Width is at most 64.
func (sum Sum) Uint64() uint64 { return sum.lo }

// Value returns the full CRC.
func (sum Sum) Value() Value {
	if sum.width > 64 {
		return sum.wide
	}
	return V(sum.lo)
}

// Big returns the full CRC as a new *big.Int.
func (sum Sum) Big() *big.Int {
	return sum.Value().Big()
}

// Equal returns true iff both Sums have the same width and value.
func (sum Sum) Equal(other Sum) bool {
	return sum.width == other.width && sum.lo == other.lo && sum.wide.Equal(other.wide)
}

// Bytes returns the CRC as ceil(Width/8) big-endian bytes.
func (sum Sum) Bytes() []byte {
	return sum.AppendBytes(nil)
}

// AppendBytes appends the CRC as ceil(Width/8) big-endian bytes.
func (sum Sum) AppendBytes(out []byte) []byte {
	n := bytesForWidth(sum.width)
	if sum.width <= 64 {
		for i := n - 1; i >= 0; i-- {
			out = append(out, byte(sum.lo>>(uint(i)*8)))
		}
		return out
	}
	start := len(out)
	for i := 0; i < n; i++ {
		out = append(out, 0)
	}
	sum.wide.Big().FillBytes(out[start:])
	return out
}

// Hex returns the CRC as lowercase hex, zero-padded to HexLen(Width) digits.
func (sum Sum) Hex() string {
	if sum.width <= 64 {
		return fmt.Sprintf("%0*x", HexLen(sum.width), sum.lo)
	}
	return sum.wide.Hex(HexLen(sum.width))
}

// HexUpper returns the CRC as uppercase hex, zero-padded to HexLen(Width)
// digits.
func (sum Sum) HexUpper() string {
	return strings.ToUpper(sum.Hex())
}

// Render returns the CRC in the given Format.
func (sum Sum) Render(format Format) string {
	switch format {
	case UpperHexFormat:
		return sum.HexUpper()
	case DecimalFormat:
		if sum.width <= 64 {
			return fmt.Sprintf("%d", sum.lo)
		}
		return sum.Big().String()
	default:
		return sum.Hex()
	}
}

// GoString returns the Go string representation of this Sum.
func (sum Sum) GoString() string {
	return fmt.Sprintf("crc.NewSum(%d, crc.MustParseValue(%q))", sum.width, "0x"+sum.Hex())
}

// String returns the string representation of this Sum.
func (sum Sum) String() string {
	return "0x" + sum.Hex()
}

// MarshalJSON returns the JSON representation of this Sum.
func (sum Sum) MarshalJSON() ([]byte, error) {
	return json.Marshal(sum.String())
}

var _ fmt.GoStringer = Sum{}
var _ fmt.Stringer = Sum{}
var _ json.Marshaler = Sum{}

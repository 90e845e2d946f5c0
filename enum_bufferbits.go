package crc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BufferBits indicates the size of the ring buffer that Hash.ReadFrom uses to
// pull data from an io.Reader, as a base-2 logarithm.
type BufferBits byte

const (
	// DefaultBufferBits requests that the default value for BufferBits be
	// selected.  This is equivalent to 16 (64 KiB).
	DefaultBufferBits BufferBits = 0

	// MinBufferBits is the smallest possible BufferBits (256 bytes).
	MinBufferBits BufferBits = 8

	// MaxBufferBits is the largest possible BufferBits (1 MiB).
	MaxBufferBits BufferBits = 20

	defaultBufferBitsValue BufferBits = 16
)

// IsValid returns true if bb is a valid BufferBits constant.
func (bb BufferBits) IsValid() bool {
	return bb == DefaultBufferBits || (bb >= MinBufferBits && bb <= MaxBufferBits)
}

// Size returns the buffer size in bytes.
func (bb BufferBits) Size() uint {
	if bb < MinBufferBits {
		bb = defaultBufferBitsValue
	}
	return uint(1) << bb
}

// GoString returns the Go string representation of this BufferBits constant.
func (bb BufferBits) GoString() string {
	if bb < MinBufferBits {
		return "DefaultBufferBits"
	}
	return fmt.Sprintf("BufferBits(%d)", uint(bb))
}

// String returns the string representation of this BufferBits constant.
func (bb BufferBits) String() string {
	if bb < MinBufferBits {
		return strDefault
	}
	return fmt.Sprintf("%d", uint(bb))
}

// MarshalJSON returns the JSON representation of this BufferBits constant.
func (bb BufferBits) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint(bb))
}

// Parse parses a string representation of a BufferBits constant.
func (bb *BufferBits) Parse(str string) error {
	if strings.EqualFold(str, strDefault) {
		*bb = DefaultBufferBits
		return nil
	}

	u64, err := strconv.ParseUint(str, 10, 8)
	if err != nil {
		*bb = DefaultBufferBits
		return err
	}
	if u64 < uint64(MinBufferBits) {
		*bb = DefaultBufferBits
		return fmt.Errorf("value %d is less than minimum %d", u64, uint64(MinBufferBits))
	}
	if u64 > uint64(MaxBufferBits) {
		*bb = DefaultBufferBits
		return fmt.Errorf("value %d is greater than maximum %d", u64, uint64(MaxBufferBits))
	}
	*bb = BufferBits(u64)
	return nil
}

var _ fmt.GoStringer = BufferBits(0)
var _ fmt.Stringer = BufferBits(0)

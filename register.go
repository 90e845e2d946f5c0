package crc

import (
	"math/big"
	"math/bits"
)

// Register is the set of operations that the CRC engine needs from the integer
// type backing a CRC register.  R is the implementing type itself, so that a
// Model[Word32] performs all of its arithmetic on plain uint32 values.
//
// Methods that only describe the type (Capacity, SliceBy, Ones, FromValue,
// FromByte) ignore their receiver; call them on the zero value.
type Register[R any] interface {
	// Capacity returns the number of bits that the type can hold.
	Capacity() uint

	// SliceBy returns the number of table rows used by the bulk update,
	// or 0 if only the byte-at-a-time update is available.
	SliceBy() int

	// Ones returns 2**width - 1.  width must not exceed Capacity.
	Ones(width uint) R

	// FromValue converts v, discarding bits beyond Capacity.
	FromValue(v Value) R

	// FromByte converts b.
	FromByte(b byte) R

	// Value converts the register to a Value.
	Value() Value

	// Uint64 returns the low 64 bits of the register.
	Uint64() uint64

	Xor(R) R
	And(R) R
	Shl(n uint) R
	Shr(n uint) R

	// Bit returns true iff bit n is set.
	Bit(n uint) bool

	// Byte returns the 8 bits starting at bit offset shift.
	Byte(shift uint) byte

	// Reflect reverses the order of the low width bits.  Bits at or above
	// width must be zero.
	Reflect(width uint) R

	Equal(R) bool
	IsZero() bool
}

// type Word8 {{{

// Word8 is a Register backed by uint8.
type Word8 uint8

func (Word8) Capacity() uint { return 8 }
func (Word8) SliceBy() int   { return 16 }

func (Word8) Ones(width uint) Word8 {
	if width >= 8 {
		return ^Word8(0)
	}
	return (Word8(1) << width) - 1
}

func (Word8) FromValue(v Value) Word8 { return Word8(v.Uint64()) }
func (Word8) FromByte(b byte) Word8   { return Word8(b) }
func (x Word8) Value() Value          { return V(uint64(x)) }
func (x Word8) Uint64() uint64        { return uint64(x) }
func (x Word8) Xor(y Word8) Word8     { return x ^ y }
func (x Word8) And(y Word8) Word8     { return x & y }
func (x Word8) Shl(n uint) Word8      { return x << n }
func (x Word8) Shr(n uint) Word8      { return x >> n }
func (x Word8) Bit(n uint) bool       { return (x>>n)&1 != 0 }
func (x Word8) Byte(shift uint) byte  { return byte(x >> shift) }
func (x Word8) Equal(y Word8) bool    { return x == y }
func (x Word8) IsZero() bool          { return x == 0 }
func (x Word8) Reflect(width uint) Word8 {
	return Word8(bits.Reverse8(uint8(x)) >> (8 - width))
}

var _ Register[Word8] = Word8(0)

// }}}

// type Word16 {{{

// Word16 is a Register backed by uint16.
type Word16 uint16

func (Word16) Capacity() uint { return 16 }
func (Word16) SliceBy() int   { return 16 }

func (Word16) Ones(width uint) Word16 {
	if width >= 16 {
		return ^Word16(0)
	}
	return (Word16(1) << width) - 1
}

func (Word16) FromValue(v Value) Word16 { return Word16(v.Uint64()) }
func (Word16) FromByte(b byte) Word16   { return Word16(b) }
func (x Word16) Value() Value           { return V(uint64(x)) }
func (x Word16) Uint64() uint64         { return uint64(x) }
func (x Word16) Xor(y Word16) Word16    { return x ^ y }
func (x Word16) And(y Word16) Word16    { return x & y }
func (x Word16) Shl(n uint) Word16      { return x << n }
func (x Word16) Shr(n uint) Word16      { return x >> n }
func (x Word16) Bit(n uint) bool        { return (x>>n)&1 != 0 }
func (x Word16) Byte(shift uint) byte   { return byte(x >> shift) }
func (x Word16) Equal(y Word16) bool    { return x == y }
func (x Word16) IsZero() bool           { return x == 0 }
func (x Word16) Reflect(width uint) Word16 {
	return Word16(bits.Reverse16(uint16(x)) >> (16 - width))
}

var _ Register[Word16] = Word16(0)

// }}}

// type Word32 {{{

// Word32 is a Register backed by uint32.
type Word32 uint32

func (Word32) Capacity() uint { return 32 }
func (Word32) SliceBy() int   { return 16 }

func (Word32) Ones(width uint) Word32 {
	if width >= 32 {
		return ^Word32(0)
	}
	return (Word32(1) << width) - 1
}

func (Word32) FromValue(v Value) Word32 { return Word32(v.Uint64()) }
func (Word32) FromByte(b byte) Word32   { return Word32(b) }
func (x Word32) Value() Value           { return V(uint64(x)) }
func (x Word32) Uint64() uint64         { return uint64(x) }
func (x Word32) Xor(y Word32) Word32    { return x ^ y }
func (x Word32) And(y Word32) Word32    { return x & y }
func (x Word32) Shl(n uint) Word32      { return x << n }
func (x Word32) Shr(n uint) Word32      { return x >> n }
func (x Word32) Bit(n uint) bool        { return (x>>n)&1 != 0 }
func (x Word32) Byte(shift uint) byte   { return byte(x >> shift) }
func (x Word32) Equal(y Word32) bool    { return x == y }
func (x Word32) IsZero() bool           { return x == 0 }
func (x Word32) Reflect(width uint) Word32 {
	return Word32(bits.Reverse32(uint32(x)) >> (32 - width))
}

var _ Register[Word32] = Word32(0)

// }}}

// type Word64 {{{

// Word64 is a Register backed by uint64.
type Word64 uint64

func (Word64) Capacity() uint { return 64 }
func (Word64) SliceBy() int   { return 32 }

func (Word64) Ones(width uint) Word64 {
	if width >= 64 {
		return ^Word64(0)
	}
	return (Word64(1) << width) - 1
}

func (Word64) FromValue(v Value) Word64 { return Word64(v.Uint64()) }
func (Word64) FromByte(b byte) Word64   { return Word64(b) }
func (x Word64) Value() Value           { return V(uint64(x)) }
func (x Word64) Uint64() uint64         { return uint64(x) }
func (x Word64) Xor(y Word64) Word64    { return x ^ y }
func (x Word64) And(y Word64) Word64    { return x & y }
func (x Word64) Shl(n uint) Word64      { return x << n }
func (x Word64) Shr(n uint) Word64      { return x >> n }
func (x Word64) Bit(n uint) bool        { return (x>>n)&1 != 0 }
func (x Word64) Byte(shift uint) byte   { return byte(x >> shift) }
func (x Word64) Equal(y Word64) bool    { return x == y }
func (x Word64) IsZero() bool           { return x == 0 }
func (x Word64) Reflect(width uint) Word64 {
	return Word64(bits.Reverse64(uint64(x)) >> (64 - width))
}

var _ Register[Word64] = Word64(0)

// }}}

// type BigWord {{{

// BigWord is a Register of unbounded capacity, used for CRCs wider than 64
// bits.  BigWord values are immutable: every operation allocates its result,
// so a *big.Int held by one BigWord is never modified.  The zero BigWord is 0.
type BigWord struct {
	n *big.Int
}

func (BigWord) Capacity() uint { return ^uint(0) }
func (BigWord) SliceBy() int   { return 0 }

func (BigWord) Ones(width uint) BigWord {
	return BigWord{n: onesValue(width).n}
}

func (BigWord) FromValue(v Value) BigWord {
	return BigWord{n: v.n}
}

func (BigWord) FromByte(b byte) BigWord {
	if b == 0 {
		return BigWord{}
	}
	return BigWord{n: new(big.Int).SetUint64(uint64(b))}
}

func (x BigWord) Value() Value {
	return Value{n: x.n}
}

func (x BigWord) Uint64() uint64 {
	return x.Value().Uint64()
}

func (x BigWord) Xor(y BigWord) BigWord {
	switch {
	case x.n == nil:
		return y
	case y.n == nil:
		return x
	default:
		return BigWord{n: new(big.Int).Xor(x.n, y.n)}
	}
}

func (x BigWord) And(y BigWord) BigWord {
	if x.n == nil || y.n == nil {
		return BigWord{}
	}
	return BigWord{n: new(big.Int).And(x.n, y.n)}
}

func (x BigWord) Shl(n uint) BigWord {
	if x.n == nil || n == 0 {
		return x
	}
	return BigWord{n: new(big.Int).Lsh(x.n, n)}
}

func (x BigWord) Shr(n uint) BigWord {
	if x.n == nil || n == 0 {
		return x
	}
	return BigWord{n: new(big.Int).Rsh(x.n, n)}
}

func (x BigWord) Bit(n uint) bool {
	return x.n != nil && x.n.Bit(int(n)) != 0
}

func (x BigWord) Byte(shift uint) byte {
	if x.n == nil {
		return 0
	}
	var b byte
	for i := uint(0); i < 8; i++ {
		b |= byte(x.n.Bit(int(shift+i))) << i
	}
	return b
}

func (x BigWord) Reflect(width uint) BigWord {
	if x.n == nil {
		return x
	}
	out := new(big.Int)
	for i := uint(0); i < width; i++ {
		if x.n.Bit(int(i)) != 0 {
			out.SetBit(out, int(width-1-i), 1)
		}
	}
	return BigWord{n: out}
}

func (x BigWord) Equal(y BigWord) bool {
	return x.Value().Equal(y.Value())
}

func (x BigWord) IsZero() bool {
	return x.n == nil || x.n.Sign() == 0
}

var _ Register[BigWord] = BigWord{}

// }}}

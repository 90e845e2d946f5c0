package crc

import (
	"io"

	"github.com/icza/bitio"
)

// Bitwise computes the CRC of everything that r yields, one bit at a time,
// directly from the catalogue parameters: no tables, no reflected register,
// no hardware.  It is much slower than a Model and exists as an independent
// reference for checking one.
//
// Definitions with a custom Mask are rejected with ConfigError.
func Bitwise(def Definition, r io.Reader) (Sum, error) {
	if r == nil {
		return Sum{}, InputError{Problem: "nil io.Reader"}
	}

	var zero BigWord
	if err := def.Validate(zero.Capacity()); err != nil {
		return Sum{}, err
	}
	if !def.HasDefaultMask() {
		return Sum{}, def.configError("the bit-serial reference does not support custom masks")
	}

	width := def.Width
	top := width - 1
	mask := zero.Ones(width)
	poly := zero.FromValue(def.Poly)
	reg := zero.FromValue(def.Init)

	br := bitio.NewReader(r)
	var msbFirst [8]bool
	for {
		more, err := readByteBits(br, &msbFirst)
		if err != nil {
			return Sum{}, err
		}
		if !more {
			break
		}
		for i := 0; i < 8; i++ {
			bit := msbFirst[i]
			if def.RefIn {
				bit = msbFirst[7-i]
			}
			feedback := reg.Bit(top) != bit
			reg = reg.Shl(1).And(mask)
			if feedback {
				reg = reg.Xor(poly)
			}
		}
	}

	if def.RefOut {
		reg = reg.Reflect(width)
	}
	reg = reg.Xor(zero.FromValue(def.XorOut)).And(mask)
	return NewSum(width, reg.Value()), nil
}

// readByteBits reads the next 8 bits, most significant first.  It returns
// false at a clean io.EOF.
func readByteBits(br *bitio.Reader, out *[8]bool) (bool, error) {
	for i := 0; i < 8; i++ {
		bit, err := br.ReadBool()
		if err == io.EOF && i == 0 {
			return false, nil
		}
		if err == io.EOF {
			return false, io.ErrUnexpectedEOF
		}
		if err != nil {
			return false, err
		}
		out[i] = bit
	}
	return true, nil
}

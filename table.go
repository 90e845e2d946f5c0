package crc

// table is the lookup data for the software strategy.  rows[0] is the
// byte-at-a-time table; rows[k] for k > 0 gives the contribution of a byte
// followed by k zero bytes, and is only present when the slice-by-N bulk
// update applies.
type table[R Register[R]] struct {
	width     uint
	reflected bool
	mask      R
	lanes     int
	rows      [][256]R
}

// newTable builds the table for def.  sliceBy is the number of rows to build
// for the bulk update, or 0 for the byte-at-a-time table only.
func newTable[R Register[R]](def Definition, mask R, sliceBy int) *table[R] {
	var zero R
	width := def.Width
	poly := zero.FromValue(def.Poly)
	widthMask := zero.Ones(width)

	t := &table[R]{
		width:     width,
		reflected: def.RefIn,
		mask:      mask,
		lanes:     bytesForWidth(width),
	}

	var row0 [256]R
	if def.RefIn {
		rpoly := poly.Reflect(width)
		for i := 0; i < 256; i++ {
			reg := zero.FromByte(byte(i))
			for j := 0; j < 8; j++ {
				lsb := reg.Bit(0)
				reg = reg.Shr(1)
				if lsb {
					reg = reg.Xor(rpoly)
				}
			}
			row0[i] = reg.And(widthMask)
		}
	} else {
		top := width - 1
		for i := 0; i < 256; i++ {
			reg := zero.FromByte(byte(i)).Shl(width - 8)
			for j := 0; j < 8; j++ {
				msb := reg.Bit(top)
				reg = reg.Shl(1)
				if msb {
					reg = reg.Xor(poly)
				}
				reg = reg.And(widthMask)
			}
			row0[i] = reg
		}
	}

	if sliceBy < 2 || !def.RefIn {
		sliceBy = 1
	}
	t.rows = make([][256]R, sliceBy)
	t.rows[0] = row0
	for k := 1; k < sliceBy; k++ {
		prev := &t.rows[k-1]
		next := &t.rows[k]
		for i := 0; i < 256; i++ {
			x := prev[i]
			next[i] = x.Shr(8).Xor(row0[x.Byte(0)])
		}
	}
	return t
}

// sliceBy returns the block size of the bulk update, or 1 if there is none.
func (t *table[R]) sliceBy() int {
	return len(t.rows)
}

// update feeds p into reg, using the bulk update while at least one full
// block remains.
func (t *table[R]) update(reg R, p []byte) R {
	if n := len(t.rows); n > 1 {
		for len(p) >= n {
			reg = t.updateBlock(reg, p[:n])
			p = p[n:]
		}
	}
	return t.updateBytewise(reg, p)
}

// updateBlock folds the register into the leading bytes of an N-byte block and
// looks up every byte in the row matching its distance from the block's end.
func (t *table[R]) updateBlock(reg R, p []byte) R {
	n := len(t.rows)
	var out R
	for j := 0; j < n; j++ {
		b := p[j]
		if j < t.lanes {
			b ^= reg.Byte(uint(j) * 8)
		}
		out = out.Xor(t.rows[n-1-j][b])
	}
	return out
}

func (t *table[R]) updateBytewise(reg R, p []byte) R {
	row0 := &t.rows[0]
	if t.reflected {
		for _, b := range p {
			reg = reg.Shr(8).Xor(row0[b^reg.Byte(0)]).And(t.mask)
		}
		return reg
	}
	shift := t.width - 8
	for _, b := range p {
		reg = row0[b^reg.Byte(shift)].Xor(reg.Shl(8)).And(t.mask)
	}
	return reg
}

package crc

import (
	"hash/crc32"
	"hash/crc64"
	"testing"
)

func TestTable_MatchesStdlib(t *testing.T) {
	t.Run("CRC-32/ISO-HDLC", func(t *testing.T) {
		def := mustPreset("CRC-32/ISO-HDLC")
		tab := newTable[Word32](def, Word32(0).Ones(32), 0)
		for i := 0; i < 256; i++ {
			if actual, expect := uint32(tab.rows[0][i]), crc32.IEEETable[i]; actual != expect {
				t.Errorf("entry %d: expected %#08x, got %#08x", i, expect, actual)
			}
		}
	})

	t.Run("CRC-32/ISCSI", func(t *testing.T) {
		def := mustPreset("CRC-32/ISCSI")
		tab := newTable[Word32](def, Word32(0).Ones(32), 16)
		std := crc32.MakeTable(crc32.Castagnoli)
		for i := 0; i < 256; i++ {
			if actual, expect := uint32(tab.rows[0][i]), std[i]; actual != expect {
				t.Errorf("entry %d: expected %#08x, got %#08x", i, expect, actual)
			}
		}
	})

	t.Run("CRC-64/XZ", func(t *testing.T) {
		def := mustPreset("CRC-64/XZ")
		tab := newTable[Word64](def, Word64(0).Ones(64), 32)
		std := crc64.MakeTable(crc64.ECMA)
		for i := 0; i < 256; i++ {
			if actual, expect := uint64(tab.rows[0][i]), std[i]; actual != expect {
				t.Errorf("entry %d: expected %#016x, got %#016x", i, expect, actual)
			}
		}
	})
}

func TestTable_Rows(t *testing.T) {
	type testRow struct {
		name       string
		sliceBy    int
		expectRows int
	}

	var testData = [...]testRow{
		{"CRC-32/ISO-HDLC", 16, 16},
		{"CRC-64/XZ", 32, 32},
		{"CRC-16/ARC", 16, 16},
		{"CRC-8/MAXIM-DOW", 16, 16},
		{"CRC-16/XMODEM", 16, 1},
		{"CRC-32/BZIP2", 16, 1},
		{"CRC-32/ISO-HDLC", 0, 1},
	}

	for _, row := range testData {
		def := mustPreset(row.name)
		var n int
		switch {
		case def.Width <= 8:
			n = newTable[Word8](def, Word8(0).Ones(def.Width), row.sliceBy).sliceBy()
		case def.Width <= 16:
			n = newTable[Word16](def, Word16(0).Ones(def.Width), row.sliceBy).sliceBy()
		case def.Width <= 32:
			n = newTable[Word32](def, Word32(0).Ones(def.Width), row.sliceBy).sliceBy()
		default:
			n = newTable[Word64](def, Word64(0).Ones(def.Width), row.sliceBy).sliceBy()
		}
		if n != row.expectRows {
			t.Errorf("%s with sliceBy %d: expected %d rows, got %d", row.name, row.sliceBy, row.expectRows, n)
		}
	}
}

// TestTable_SlicedEqualsBytewise feeds lengths around multiples of the block
// size through both update paths of the same table.
func TestTable_SlicedEqualsBytewise(t *testing.T) {
	for _, def := range Presets() {
		if !def.RefIn || def.Width > 64 {
			continue
		}
		t.Run(def.Name, func(t *testing.T) {
			switch {
			case def.Width <= 8:
				checkSlicedEqualsBytewise[Word8](t, def)
			case def.Width <= 16:
				checkSlicedEqualsBytewise[Word16](t, def)
			case def.Width <= 32:
				checkSlicedEqualsBytewise[Word32](t, def)
			default:
				checkSlicedEqualsBytewise[Word64](t, def)
			}
		})
	}
}

func checkSlicedEqualsBytewise[R Register[R]](t *testing.T, def Definition) {
	t.Helper()

	var zero R
	mask := zero.Ones(def.Width)
	seed := zero.FromValue(def.Init).Reflect(def.Width)
	tab := newTable[R](def, mask, zero.SliceBy())
	n := tab.sliceBy()
	if n != zero.SliceBy() {
		t.Fatalf("expected %d rows, got %d", zero.SliceBy(), n)
	}

	for _, blocks := range []int{1, 2, 5} {
		for _, length := range []int{blocks*n - 1, blocks * n, blocks*n + 1} {
			p := testInput(length, int64(def.Width))
			sliced := tab.update(seed, p)
			bytewise := tab.updateBytewise(seed, p)
			if !sliced.Equal(bytewise) {
				t.Errorf("length %d: sliced %v != byte-wise %v", length, sliced.Value(), bytewise.Value())
			}
		}
	}
}

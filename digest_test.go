package crc

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDigest_Chunking(t *testing.T) {
	type testRow struct {
		name   string
		length int
	}

	var testData = [...]testRow{
		{"CRC-8/ROHC", 100},
		{"CRC-11/UMTS", 100},
		{"CRC-16/KERMIT", 1000},
		{"CRC-24/BLE", 257},
		{"CRC-32/ISO-HDLC", 1000},
		{"CRC-32/MPEG-2", 1000},
		{"CRC-40/GSM", 333},
		{"CRC-64/NVME", 1000},
		{"CRC-82/DARC", 99},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			engine, err := New(mustPreset(row.name))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			p := testInput(row.length, 7)
			expect := engine.Checksum(p)

			for _, sizes := range [][]int{{1}, {3, 7, 5}, {row.length}, {16, 1, 32, 17}} {
				h := engine.New()
				for _, chunk := range chunkBy(p, sizes...) {
					n, err := h.Write(chunk)
					if err != nil || n != len(chunk) {
						t.Fatalf("Write: got (%d, %v), expected (%d, nil)", n, err, len(chunk))
					}
				}
				if h.Len() != uint64(row.length) {
					t.Errorf("chunks %v: Len %d, expected %d", sizes, h.Len(), row.length)
				}
				if actual := h.Finalize(); !actual.Equal(expect) {
					t.Errorf("chunks %v: expected %v, got %v", sizes, expect, actual)
				}
			}

			h := engine.New()
			for _, ch := range p[:row.length/2] {
				if err := h.WriteByte(ch); err != nil {
					t.Fatalf("WriteByte failed: %v", err)
				}
			}
			if _, err := h.WriteString(string(p[row.length/2:])); err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}
			if actual := h.Finalize(); !actual.Equal(expect) {
				t.Errorf("WriteByte+WriteString: expected %v, got %v", expect, actual)
			}
		})
	}
}

func TestDigest_States(t *testing.T) {
	m, err := NewModel[Word16](mustPreset("CRC-16/USB"))
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	d := m.NewDigest()
	if s := d.State(); s != IdleState {
		t.Errorf("new Digest: expected IdleState, got %v", s)
	}

	_, _ = d.Write([]byte("1234"))
	if s := d.State(); s != AccumulatingState {
		t.Errorf("after Write: expected AccumulatingState, got %v", s)
	}

	peek := d.Sum(nil)
	_, _ = d.Write([]byte("56789"))
	if s := d.State(); s != AccumulatingState {
		t.Errorf("Sum changed state to %v", s)
	}
	if bytes.Equal(peek, d.Sum(nil)) {
		t.Errorf("Sum did not track input")
	}

	first := d.Finalize()
	if s := d.State(); s != FinalizedState {
		t.Errorf("after Finalize: expected FinalizedState, got %v", s)
	}
	if !first.Equal(NewSum(16, V(0xb4c8))) {
		t.Errorf("wrong CRC-16/USB check: %v", first)
	}
	if second := d.Finalize(); !second.Equal(first) {
		t.Errorf("second Finalize: expected %v, got %v", first, second)
	}
	if actual, expect := d.Sum(nil), mustDecodeHex("b4c8"); !bytes.Equal(actual, expect) {
		t.Errorf("Sum after Finalize:%s", tabify(hexDiff(expect, actual)))
	}

	if _, err := d.Write([]byte("x")); !errors.Is(err, ErrFinalized) {
		t.Errorf("Write after Finalize: expected ErrFinalized, got %v", err)
	}
	if err := d.WriteByte('x'); !errors.Is(err, ErrFinalized) {
		t.Errorf("WriteByte after Finalize: expected ErrFinalized, got %v", err)
	}
	if _, err := d.ReadFrom(strings.NewReader("x")); !errors.Is(err, ErrFinalized) {
		t.Errorf("ReadFrom after Finalize: expected ErrFinalized, got %v", err)
	}

	d.Reset()
	if s := d.State(); s != IdleState || d.Len() != 0 {
		t.Errorf("after Reset: state %v, Len %d", s, d.Len())
	}
	if !d.Register().Equal(m.init) {
		t.Errorf("after Reset: register %v, expected %v", d.Register().Value(), m.init.Value())
	}
	if sum := d.Finalize(); !sum.Equal(m.Checksum(nil)) {
		t.Errorf("empty Finalize: expected %v, got %v", m.Checksum(nil), sum)
	}
	if d.Size() != 2 || d.BlockSize() != 16 {
		t.Errorf("Size %d BlockSize %d, expected 2 and 16", d.Size(), d.BlockSize())
	}
}

func TestDigest_ReadFrom(t *testing.T) {
	type testRow struct {
		name string
		bb   BufferBits
		n    int
	}

	var testData = [...]testRow{
		{"empty", DefaultBufferBits, 0},
		{"small", MinBufferBits, 100},
		{"exact", MinBufferBits, 256},
		{"wrap", MinBufferBits, 10000},
		{"default", DefaultBufferBits, 200000},
	}

	for _, name := range []string{"CRC-32/ISCSI", "CRC-64/WE", "CRC-82/DARC"} {
		for _, row := range testData {
			t.Run(name+"/"+row.name, func(t *testing.T) {
				engine, err := New(mustPreset(name), WithBufferBits(row.bb))
				if err != nil {
					t.Fatalf("New failed: %v", err)
				}
				p := testInput(row.n, 11)
				expect := engine.Checksum(p)

				h := engine.New()
				nn, err := h.ReadFrom(bytes.NewReader(p))
				if err != nil {
					t.Fatalf("ReadFrom failed: %v", err)
				}
				if nn != int64(row.n) {
					t.Errorf("ReadFrom returned %d, expected %d", nn, row.n)
				}
				if actual := h.Finalize(); !actual.Equal(expect) {
					t.Errorf("expected %v, got %v", expect, actual)
				}

				actual, err := engine.ChecksumReader(&trickleReader{data: p})
				if err != nil {
					t.Fatalf("ChecksumReader failed: %v", err)
				}
				if !actual.Equal(expect) {
					t.Errorf("trickle: expected %v, got %v", expect, actual)
				}
			})
		}
	}
}

func TestDigest_ReadFromErrors(t *testing.T) {
	engine, err := New(mustPreset("CRC-32/ISO-HDLC"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("nil-reader", func(t *testing.T) {
		h := engine.New()
		_, err := h.ReadFrom(nil)
		var ie InputError
		if !errors.As(err, &ie) {
			t.Errorf("expected InputError, got %T: %v", err, err)
		}
		if s := h.State(); s != IdleState {
			t.Errorf("nil reader changed state to %v", s)
		}
		if _, err := engine.ChecksumReader(nil); !errors.As(err, &ie) {
			t.Errorf("ChecksumReader: expected InputError, got %v", err)
		}
	})

	t.Run("stalled-reader", func(t *testing.T) {
		sr := &stallReader{data: testInput(1000, 6)}
		h := engine.New()
		nn, err := h.ReadFrom(sr)
		if !errors.Is(err, io.ErrNoProgress) {
			t.Errorf("expected io.ErrNoProgress, got %v", err)
		}
		if nn != 1000 {
			t.Errorf("expected 1000 bytes consumed before stalling, got %d", nn)
		}
		if sr.calls > 1000+maxIdleReads {
			t.Errorf("reader was called %d times after it stalled", sr.calls)
		}
		if s := h.State(); s != FailedState {
			t.Errorf("expected FailedState, got %v", s)
		}

		h.Reset()
		if _, err := h.ReadFrom(&stallReader{}); !errors.Is(err, io.ErrNoProgress) {
			t.Errorf("empty stalled reader: expected io.ErrNoProgress, got %v", err)
		}
	})

	t.Run("failing-reader", func(t *testing.T) {
		h := engine.New()
		nn, err := h.ReadFrom(&failingReader{data: testInput(1000, 5)})
		if !errors.Is(err, errInjected) {
			t.Errorf("expected the reader's error unchanged, got %v", err)
		}
		if nn != 1000 {
			t.Errorf("expected 1000 bytes consumed before failure, got %d", nn)
		}
		if s := h.State(); s != FailedState {
			t.Errorf("expected FailedState, got %v", s)
		}
		if _, err := h.Write([]byte("x")); !errors.Is(err, ErrFailed) {
			t.Errorf("Write in FailedState: expected ErrFailed, got %v", err)
		}

		func() {
			defer func() {
				if recover() == nil {
					t.Error("Finalize in FailedState did not panic")
				}
			}()
			_ = h.Finalize()
		}()

		h.Reset()
		if _, err := h.Write(checkInput); err != nil {
			t.Errorf("Write after Reset failed: %v", err)
		}
		if sum := h.Finalize(); sum.Uint32() != 0xcbf43926 {
			t.Errorf("after Reset: got %v", sum)
		}
	})
}

func BenchmarkDigest_ReadFrom(b *testing.B) {
	p := testInput(1<<20, 2)
	engine, err := New(mustPreset("CRC-64/XZ"))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	h := engine.New()
	b.SetBytes(int64(len(p)))
	for n := 0; n < b.N; n++ {
		h.Reset()
		if _, err := h.ReadFrom(bytes.NewReader(p)); err != nil {
			b.Fatalf("ReadFrom failed: %v", err)
		}
	}
}

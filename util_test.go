package crc

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

func mustDecodeHex(str string) []byte {
	raw, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}
	return raw
}

func mustPreset(name string) Definition {
	def, found := LookupPreset(name)
	if !found {
		panic(fmt.Errorf("unknown preset %q", name))
	}
	return def
}

// testInput returns n pseudo-random bytes that depend only on n and seed.
func testInput(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed*1000003 + int64(n)))
	p := make([]byte, n)
	_, _ = rng.Read(p)
	return p
}

// chunkBy splits p into consecutive chunks whose sizes cycle through sizes.
func chunkBy(p []byte, sizes ...int) [][]byte {
	var out [][]byte
	for i := 0; len(p) > 0; i++ {
		n := sizes[i%len(sizes)]
		if n > len(p) {
			n = len(p)
		}
		out = append(out, p[:n])
		p = p[n:]
	}
	return out
}

var errInjected = errors.New("injected read failure")

// failingReader yields its data and then fails with errInjected.
type failingReader struct {
	data []byte
}

func (fr *failingReader) Read(p []byte) (int, error) {
	if len(fr.data) == 0 {
		return 0, errInjected
	}
	n := copy(p, fr.data)
	fr.data = fr.data[n:]
	return n, nil
}

// trickleReader yields at most one byte per Read, and returns data and
// io.EOF together on the last byte.
type trickleReader struct {
	data []byte
}

func (tr *trickleReader) Read(p []byte) (int, error) {
	if len(tr.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = tr.data[0]
	tr.data = tr.data[1:]
	if len(tr.data) == 0 {
		return 1, io.EOF
	}
	return 1, nil
}

// stallReader yields its data and then returns (0, nil) forever.
type stallReader struct {
	data  []byte
	calls int
}

func (sr *stallReader) Read(p []byte) (int, error) {
	sr.calls++
	n := copy(p, sr.data)
	sr.data = sr.data[n:]
	return n, nil
}

func hexDump(p []byte) []string {
	length := uint(len(p))
	lines := make([]string, 0, (length+15)>>4)
	var offset uint
	var buf strings.Builder
	for (offset + 16) <= length {
		buf.Reset()
		fmt.Fprintf(&buf, "%08x|", offset)
		for i := uint(0); i < 16; i++ {
			index := offset + i
			ch := p[index]
			fmt.Fprintf(&buf, " %02x", ch)
			if i == 7 {
				buf.WriteByte(' ')
			}
		}
		lines = append(lines, buf.String())
		offset += 16
	}
	if offset < length || offset == 0 {
		buf.Reset()
		fmt.Fprintf(&buf, "%08x|", offset)
		for i := uint(0); i < 16; i++ {
			index := offset + i
			if index < length {
				ch := p[index]
				fmt.Fprintf(&buf, " %02x", ch)
			} else {
				buf.WriteString(" --")
			}
			if i == 7 {
				buf.WriteByte(' ')
			}
		}
		lines = append(lines, buf.String())
	}
	return lines
}

func hexDiff(a, b []byte) []string {
	aLines := hexDump(a)
	bLines := hexDump(b)

	aLen := uint(len(aLines))
	bLen := uint(len(bLines))
	minLen := aLen
	if minLen > bLen {
		minLen = bLen
	}

	diffLines := make([]string, 0, aLen+bLen)
	for i := uint(0); i < minLen; i++ {
		aLine := aLines[i]
		bLine := bLines[i]
		if aLine == bLine {
			continue
		}
		diffLines = append(diffLines, "-"+aLine)
		diffLines = append(diffLines, "+"+bLine)
	}
	for i := minLen; i < aLen; i++ {
		aLine := aLines[i]
		diffLines = append(diffLines, "-"+aLine)
	}
	for i := minLen; i < bLen; i++ {
		bLine := bLines[i]
		diffLines = append(diffLines, "+"+bLine)
	}
	return diffLines
}

func tabify(lines []string) string {
	var buf strings.Builder
	for _, line := range lines {
		buf.WriteByte('\n')
		buf.WriteByte('\t')
		buf.WriteString(line)
	}
	return buf.String()
}

package crc

import (
	"hash"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Hash is the width-independent interface to a CRC computation in progress.
//
// Sum (from hash.Hash) appends the big-endian bytes of the value that
// Finalize would return, without changing state.
type Hash interface {
	hash.Hash
	io.ByteWriter
	io.StringWriter
	io.ReaderFrom

	// Finalize applies the output reflection and XorOut.  The first call
	// moves the Hash to FinalizedState; later calls return the same Sum.
	Finalize() Sum

	// State returns the current State.
	State() State

	// Len returns the number of bytes consumed so far.
	Len() uint64
}

const maxIdleReads = 100

// Digest is a single CRC computation over a Model.  It is not safe for
// concurrent use, but any number of Digests may share one Model.
type Digest[R Register[R]] struct {
	model *Model[R]
	reg   R
	state State
	n     uint64
	sum   Sum
}

// Model returns the Model that this Digest computes.
func (d *Digest[R]) Model() *Model[R] {
	return d.model
}

// State returns the current State.
func (d *Digest[R]) State() State {
	return d.state
}

// Len returns the number of bytes consumed since the last Reset.
func (d *Digest[R]) Len() uint64 {
	return d.n
}

// Register returns the raw register value.  For reflected Definitions the
// register holds the reflected form.
func (d *Digest[R]) Register() R {
	return d.reg
}

// Size returns the number of bytes that Sum appends.
func (d *Digest[R]) Size() int {
	return bytesForWidth(d.model.def.Width)
}

// BlockSize returns the number of bytes that the bulk update consumes per
// step.
func (d *Digest[R]) BlockSize() int {
	return d.model.SliceBy()
}

// Reset discards all input and returns to IdleState.
func (d *Digest[R]) Reset() {
	d.reg = d.model.init
	d.state = IdleState
	d.n = 0
	d.sum = Sum{}
}

func (d *Digest[R]) checkWritable() error {
	switch d.state {
	case FinalizedState:
		return ErrFinalized
	case FailedState:
		return ErrFailed
	default:
		return nil
	}
}

func (d *Digest[R]) consume(p []byte) {
	d.reg = d.model.update(d.reg, p)
	d.n += uint64(len(p))
	d.state = AccumulatingState
}

// Write fulfills io.Writer.
func (d *Digest[R]) Write(p []byte) (int, error) {
	if err := d.checkWritable(); err != nil {
		return 0, err
	}
	d.consume(p)
	return len(p), nil
}

// WriteByte fulfills io.ByteWriter.
func (d *Digest[R]) WriteByte(ch byte) error {
	if err := d.checkWritable(); err != nil {
		return err
	}
	tmp := [1]byte{ch}
	d.consume(tmp[:])
	return nil
}

// WriteString fulfills io.StringWriter.
func (d *Digest[R]) WriteString(str string) (int, error) {
	return d.Write([]byte(str))
}

// ReadFrom fulfills io.ReaderFrom.  Input passes through a ring buffer of
// 2**BufferBits bytes taken from a pool; the register carries over between
// fills.  Errors from r other than io.EOF are returned unchanged and leave
// the Digest in FailedState, as does a reader that makes no progress for
// maxIdleReads consecutive calls, which fails with io.ErrNoProgress.
func (d *Digest[R]) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, InputError{Problem: "nil io.Reader"}
	}
	if err := d.checkWritable(); err != nil {
		return 0, err
	}
	d.state = AccumulatingState

	buf := takeBuffer(d.model.opts.bufferBits)
	defer giveBuffer(buf)

	er := &eofReader{r: r}
	size := buf.Size()
	total := int64(0)
	for {
		_, err := buf.ReadFrom(er)
		for !buf.IsEmpty() {
			p := buf.PrepareBulkRead(size)
			d.consume(p)
			buf.CommitBulkRead(uint(len(p)))
			total += int64(len(p))
		}

		switch {
		case err == io.EOF || (err == nil && er.eof):
			return total, nil
		case err != nil:
			d.state = FailedState
			return total, err
		}
	}
}

// Finalize returns the CRC of everything consumed so far and moves the Digest
// to FinalizedState.  Calling Finalize again returns the same Sum.  It is a
// programming error to finalize a Digest in FailedState.
func (d *Digest[R]) Finalize() Sum {
	assert.Assertf(d.state != FailedState, "Finalize called on a Digest in FailedState")
	if d.state == FinalizedState {
		return d.sum
	}
	d.sum = d.model.sumOf(d.model.finalize(d.reg))
	d.state = FinalizedState
	return d.sum
}

// Peek returns the Sum that Finalize would return now, without changing
// state.
func (d *Digest[R]) Peek() Sum {
	if d.state == FinalizedState {
		return d.sum
	}
	return d.model.sumOf(d.model.finalize(d.reg))
}

// Sum fulfills hash.Hash.
func (d *Digest[R]) Sum(b []byte) []byte {
	return d.Peek().AppendBytes(b)
}

var _ Hash = (*Digest[Word8])(nil)
var _ Hash = (*Digest[Word16])(nil)
var _ Hash = (*Digest[Word32])(nil)
var _ Hash = (*Digest[Word64])(nil)
var _ Hash = (*Digest[BigWord])(nil)

// eofReader records whether the wrapped io.Reader has reported io.EOF, and
// fails with io.ErrNoProgress after maxIdleReads consecutive reads that
// return neither data nor an error.
type eofReader struct {
	r    io.Reader
	eof  bool
	idle int
}

func (er *eofReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	switch {
	case err == io.EOF:
		er.eof = true
	case n == 0 && err == nil && len(p) != 0:
		er.idle++
		if er.idle >= maxIdleReads {
			return 0, io.ErrNoProgress
		}
	case n != 0:
		er.idle = 0
	}
	return n, err
}

package crc

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// verifySamples returns the inputs on which VerifyCatalog compares each Model
// against Bitwise.  The lengths straddle both slice-by-N block sizes.
func verifySamples() [][]byte {
	lengths := []int{0, 1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 100, 1000}
	out := make([][]byte, 0, len(lengths)+1)
	out = append(out, checkInput)
	for _, n := range lengths {
		p := make([]byte, n)
		for i := range p {
			p[i] = byte(i*131 + n*7 + 1)
		}
		out = append(out, p)
	}
	return out
}

// VerifyCatalog constructs every preset in parallel with the given Options and
// cross-checks each one against the bit-serial reference, both in one call and
// fed a byte at a time.  Every problem found is reported.  It stops early only
// if ctx is cancelled.
func VerifyCatalog(ctx context.Context, opts ...Option) error {
	samples := verifySamples()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	var errlist []error
	for _, def := range presets {
		def := def
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := verifyPreset(def, samples, opts); err != nil {
				mu.Lock()
				errlist = append(errlist, err)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(errlist) == 0 {
		return nil
	}

	if len(errlist) == 1 {
		return errlist[0]
	}

	return &multierror.Error{Errors: errlist}
}

func verifyPreset(def Definition, samples [][]byte, opts []Option) error {
	engine, err := New(def, opts...)
	if err != nil {
		return err
	}
	for _, p := range samples {
		expect, err := Bitwise(def, bytes.NewReader(p))
		if err != nil {
			return err
		}

		actual := engine.Checksum(p)
		if !actual.Equal(expect) {
			return MismatchError{Name: def.Name, Length: len(p), Computed: actual, Reference: expect}
		}

		if err := verifyBytewise(engine.New(), def.Name, p, expect); err != nil {
			return err
		}
	}
	return nil
}

// verifyBytewise feeds p to h one byte at a time and compares the result
// against expect.
func verifyBytewise(h Hash, name string, p []byte, expect Sum) error {
	for _, ch := range p {
		if err := h.WriteByte(ch); err != nil {
			return fmt.Errorf("crc: %q: WriteByte failed after %d bytes: %w", name, h.Len(), err)
		}
	}
	if actual := h.Finalize(); !actual.Equal(expect) {
		return MismatchError{Name: name, Length: len(p), Computed: actual, Reference: expect}
	}
	return nil
}

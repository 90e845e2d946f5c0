package crc

import (
	"github.com/chronos-tachyon/assert"
)

// Option represents a configuration option for NewModel or New.
type Option func(*options)

type options struct {
	hardware   bool
	selfCheck  bool
	slicing    bool
	bufferBits BufferBits
	tracers    []Tracer
}

func (o *options) reset() {
	*o = options{
		hardware:   true,
		selfCheck:  true,
		slicing:    true,
		bufferBits: DefaultBufferBits,
		tracers:    nil,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

func (o *options) populateDefaults() {
	if o.bufferBits == DefaultBufferBits {
		o.bufferBits = defaultBufferBitsValue
	}
}

// WithHardware specifies whether CRC-32/ISO-HDLC and CRC-32/ISCSI may be
// computed with CPU instructions when the CPU supports them.  Default true.
func WithHardware(enabled bool) Option {
	return func(o *options) { o.hardware = enabled }
}

// WithSelfCheck specifies whether the Definition's Check value is verified
// during construction.  Default true.  Disabling it is only useful for
// Definitions whose Check is unknown.
func WithSelfCheck(enabled bool) Option {
	return func(o *options) { o.selfCheck = enabled }
}

// WithSlicing specifies whether the slice-by-N bulk update may be used for
// reflected Definitions.  Default true.  The results are identical either
// way; only throughput differs.
func WithSlicing(enabled bool) Option {
	return func(o *options) { o.slicing = enabled }
}

// WithBufferBits specifies the size of the ring buffer used by Hash.ReadFrom.
func WithBufferBits(bb BufferBits) Option {
	assert.Assertf(bb.IsValid(), "invalid BufferBits %d", uint(bb))
	return func(o *options) { o.bufferBits = bb }
}

// WithTracers specifies the list of Tracer instances which will receive
// Events.  Completely replaces any previous list.
func WithTracers(tracers ...Tracer) Option {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	if len(tracers) == 0 {
		tracers = nil
	} else {
		tmp := make([]Tracer, len(tracers))
		copy(tmp, tracers)
		tracers = tmp
	}
	return func(o *options) { o.tracers = tracers }
}

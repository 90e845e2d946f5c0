package crc

import (
	"io"

	"github.com/chronos-tachyon/crc/internal/crc32"
)

// Engine is the width-independent view of a Model.  Every *Model[R]
// implements it.
type Engine interface {
	Definition() Definition
	Key() Key
	Name() string
	Width() uint
	Strategy() Strategy
	New() Hash
	Checksum(p []byte) Sum
	ChecksumReader(r io.Reader) (Sum, error)
}

// Model is a validated Definition together with everything needed to compute
// it: the register mask, the internal init value, and either a lookup table
// or a hardware update function.  A Model is immutable and may be shared
// between goroutines.
type Model[R Register[R]] struct {
	def      Definition
	strategy Strategy
	mask     R
	init     R
	xorOut   R
	flip     bool
	table    *table[R]
	hw       func(R, []byte) R
	opts     options
}

// NewModel validates def, selects a Strategy, builds the lookup table if one
// is needed, and verifies def.Check unless WithSelfCheck(false) was given.
func NewModel[R Register[R]](def Definition, opts ...Option) (*Model[R], error) {
	var o options
	o.reset()
	o.apply(opts)
	o.populateDefaults()

	var zero R
	if err := def.Validate(zero.Capacity()); err != nil {
		return nil, err
	}

	m := &Model[R]{
		def:    def,
		mask:   zero.FromValue(def.EffectiveMask()),
		xorOut: zero.FromValue(def.XorOut),
		flip:   def.RefIn != def.RefOut,
		opts:   o,
	}

	m.init = zero.FromValue(def.Init)
	if def.RefIn {
		m.init = m.init.Reflect(def.Width)
	}
	m.init = m.init.And(m.mask)

	m.strategy = chooseStrategy[R](def, o.hardware)
	if m.strategy.IsHardware() {
		m.hw = hardwareUpdate[R](m.strategy)
	} else {
		sliceBy := 0
		if o.slicing && def.HasDefaultMask() {
			sliceBy = zero.SliceBy()
		}
		m.table = newTable[R](def, m.mask, sliceBy)
	}

	if o.selfCheck {
		computed := m.Checksum(checkInput).Value()
		if !computed.Equal(def.Check) {
			return nil, ValidationError{
				Name:     def.Name,
				Computed: computed,
				Expected: def.Check,
				Mask:     def.EffectiveMask(),
			}
		}
	}

	emitEvent(o.tracers, Event{
		Type:     ModelBuildEvent,
		Key:      def.Key(),
		Strategy: m.strategy,
	})
	return m, nil
}

// New constructs a Model for def using the narrowest Register type that can
// hold def.Width bits, and returns it as an Engine.
func New(def Definition, opts ...Option) (Engine, error) {
	switch {
	case def.Width <= 8:
		return newEngine[Word8](def, opts)
	case def.Width <= 16:
		return newEngine[Word16](def, opts)
	case def.Width <= 32:
		return newEngine[Word32](def, opts)
	case def.Width <= 64:
		return newEngine[Word64](def, opts)
	default:
		return newEngine[BigWord](def, opts)
	}
}

func newEngine[R Register[R]](def Definition, opts []Option) (Engine, error) {
	m, err := NewModel[R](def, opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Definition returns the Definition that this Model computes.
func (m *Model[R]) Definition() Definition { return m.def }

// Key returns the (width, name) identity of this Model.
func (m *Model[R]) Key() Key { return m.def.Key() }

// Name returns the name of the Definition.
func (m *Model[R]) Name() string { return m.def.Name }

// Width returns the width of the CRC in bits.
func (m *Model[R]) Width() uint { return m.def.Width }

// Strategy returns the Strategy selected at construction.
func (m *Model[R]) Strategy() Strategy { return m.strategy }

// SliceBy returns the number of bytes consumed per step by the bulk update,
// or 1 if this Model only updates a byte at a time.  Hardware strategies
// report 1 as well; the CPU chooses its own stride.
func (m *Model[R]) SliceBy() int {
	if m.table == nil {
		return 1
	}
	return m.table.sliceBy()
}

// New returns a new Hash in IdleState.
func (m *Model[R]) New() Hash {
	return m.NewDigest()
}

// NewDigest returns a new *Digest in IdleState.
func (m *Model[R]) NewDigest() *Digest[R] {
	return &Digest[R]{model: m, reg: m.init}
}

// Checksum computes the CRC of p in a single call.
func (m *Model[R]) Checksum(p []byte) Sum {
	return m.sumOf(m.finalize(m.update(m.init, p)))
}

// ChecksumReader computes the CRC of everything that r yields until io.EOF.
func (m *Model[R]) ChecksumReader(r io.Reader) (Sum, error) {
	d := m.NewDigest()
	if _, err := d.ReadFrom(r); err != nil {
		return Sum{}, err
	}
	return d.Finalize(), nil
}

func (m *Model[R]) update(reg R, p []byte) R {
	if len(p) == 0 {
		return reg
	}
	if m.hw != nil {
		return m.hw(reg, p)
	}
	return m.table.update(reg, p)
}

func (m *Model[R]) finalize(reg R) R {
	if m.flip {
		reg = reg.Reflect(m.def.Width)
	}
	return reg.Xor(m.xorOut).And(m.mask)
}

func (m *Model[R]) sumOf(reg R) Sum {
	sum := Sum{width: m.def.Width, lo: reg.Uint64()}
	if m.def.Width > 64 {
		sum.wide = reg.Value()
	}
	return sum
}

var _ Engine = (*Model[Word8])(nil)
var _ Engine = (*Model[Word16])(nil)
var _ Engine = (*Model[Word32])(nil)
var _ Engine = (*Model[Word64])(nil)
var _ Engine = (*Model[BigWord])(nil)

// hardwareVariant is the parameter set that a CPU instruction computes.
type hardwareVariant struct {
	strategy  Strategy
	poly      uint64
	available func() bool
}

var hardwareVariants = [...]hardwareVariant{
	{HardwareCRC32Strategy, 0x04c11db7, crc32.AvailableIEEE},
	{HardwareCRC32CStrategy, 0x1edc6f41, crc32.AvailableCastagnoli},
}

const (
	hardwareWidth   = 32
	hardwareInitXor = 0xffffffff
	checkCRC32      = 0xcbf43926
	checkCRC32C     = 0xe3069283
)

// chooseStrategy identifies CRC-32/ISO-HDLC and CRC-32/ISCSI by their check
// values, confirms the remaining parameters, and probes the CPU.  Only Word32
// Models are eligible.
func chooseStrategy[R Register[R]](def Definition, allowHardware bool) Strategy {
	var zero R
	if _, ok := any(zero).(Word32); !ok || !allowHardware {
		return SoftwareStrategy
	}
	if def.Width != hardwareWidth || !def.HasDefaultMask() || !def.RefIn || !def.RefOut {
		return SoftwareStrategy
	}
	if !def.Init.Equal(V(hardwareInitXor)) || !def.XorOut.Equal(V(hardwareInitXor)) {
		return SoftwareStrategy
	}

	var hv hardwareVariant
	switch def.Check.Uint64() {
	case checkCRC32:
		hv = hardwareVariants[0]
	case checkCRC32C:
		hv = hardwareVariants[1]
	default:
		return SoftwareStrategy
	}
	if !def.Poly.Equal(V(hv.poly)) {
		return SoftwareStrategy
	}
	if !hv.available() {
		return SoftwareStrategy
	}
	return hv.strategy
}

// hardwareUpdate returns the update function for a hardware Strategy.  The
// type switch runs once per Model, never per call.
func hardwareUpdate[R Register[R]](strategy Strategy) func(R, []byte) R {
	var fn func(uint32, []byte) uint32
	switch strategy {
	case HardwareCRC32Strategy:
		fn = crc32.UpdateIEEE
	case HardwareCRC32CStrategy:
		fn = crc32.UpdateCastagnoli
	default:
		return nil
	}

	var zero R
	switch any(zero).(type) {
	case Word32:
		var f any = func(reg Word32, p []byte) Word32 {
			return Word32(fn(uint32(reg), p))
		}
		return f.(func(R, []byte) R)
	default:
		return nil
	}
}

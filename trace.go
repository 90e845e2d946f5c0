package crc

import (
	"github.com/rs/zerolog"
)

// Tracer is an interface which callers can implement in order to receive
// Events.  Events report Model construction and Cache activity.
type Tracer interface {
	OnEvent(Event)
}

// Event is a collection of fields that describe something that happened to a
// Model or a Cache.
type Event struct {
	Type     EventType
	Key      Key
	Strategy Strategy

	// CacheSize and CacheCapacity are only present for Cache events.
	CacheSize     int
	CacheCapacity int
}

func emitEvent(tracers []Tracer, event Event) {
	for _, tr := range tracers {
		tr.OnEvent(event)
	}
}

// type NoOpTracer {{{

// NoOpTracer is an implementation of Tracer that does nothing.
type NoOpTracer struct{}

// OnEvent fulfills Tracer.
func (NoOpTracer) OnEvent(event Event) {}

var _ Tracer = NoOpTracer{}

// }}}

// type TracerFunc {{{

// TracerFunc is an implementation of Tracer that calls a function.
type TracerFunc func(Event)

// OnEvent fulfills Tracer.
func (tr TracerFunc) OnEvent(event Event) {
	tr(event)
}

var _ Tracer = TracerFunc(nil)

// }}}

// type logTracer {{{

// Log returns a Tracer implementation which will log each Event at Trace
// priority, except CacheFlushEvent which is logged at Debug.
func Log(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

type logTracer struct {
	logger zerolog.Logger
}

// OnEvent fulfills Tracer.
func (tr logTracer) OnEvent(event Event) {
	e := tr.logger.Trace()
	if event.Type == CacheFlushEvent {
		e = tr.logger.Debug()
	}
	e = e.Stringer("type", event.Type).
		Uint("width", event.Key.Width).
		Str("name", event.Key.Name)
	switch event.Type {
	case ModelBuildEvent:
		e = e.Stringer("strategy", event.Strategy)
	default:
		e = e.Int("size", event.CacheSize).Int("capacity", event.CacheCapacity)
	}
	e.Msg("OnEvent")
}

var _ Tracer = logTracer{}

// }}}

package crc

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// EventType indicates the type of an Event.
type EventType byte

const (
	// ModelBuildEvent indicates that a Model was constructed and passed
	// its self-check.
	ModelBuildEvent EventType = iota

	// CacheHitEvent indicates that a Cache lookup found an existing
	// Engine.
	CacheHitEvent

	// CacheMissEvent indicates that a Cache lookup found no Engine and
	// one will be constructed.
	CacheMissEvent

	// CacheInsertEvent indicates that a newly constructed Engine was
	// stored in a Cache.
	CacheInsertEvent

	// CacheFlushEvent indicates that a Cache reached its capacity and
	// dropped every entry.
	CacheFlushEvent
)

var eventTypeData = []enumhelper.EnumData{
	{GoName: "ModelBuildEvent", Name: "model-build"},
	{GoName: "CacheHitEvent", Name: "cache-hit"},
	{GoName: "CacheMissEvent", Name: "cache-miss"},
	{GoName: "CacheInsertEvent", Name: "cache-insert"},
	{GoName: "CacheFlushEvent", Name: "cache-flush"},
}

// GoString returns the Go string representation of this EventType constant.
func (e EventType) GoString() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).GoName
}

// String returns the string representation of this EventType constant.
func (e EventType) String() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this EventType constant.
func (e EventType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("EventType", eventTypeData, uint(e))
}

var _ fmt.GoStringer = EventType(0)
var _ fmt.Stringer = EventType(0)

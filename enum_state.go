package crc

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// State indicates where a Hash is in its lifecycle.
type State byte

const (
	// IdleState: the register holds the initial value and no input has
	// been consumed since construction or the last Reset.
	IdleState State = iota

	// AccumulatingState: at least one Write, WriteByte, WriteString or
	// ReadFrom call has been made, and the Hash has not been finalized.
	AccumulatingState

	// FinalizedState: Finalize has been called.  The only valid actions
	// are Finalize (which returns the same Sum again) and Reset.
	FinalizedState

	// FailedState: a read from the input source failed.  The register
	// contents are undefined, and the only valid action is Reset.
	FailedState
)

var stateData = []enumhelper.EnumData{
	{GoName: "IdleState", Name: "idle"},
	{GoName: "AccumulatingState", Name: "accumulating"},
	{GoName: "FinalizedState", Name: "finalized"},
	{GoName: "FailedState", Name: "failed"},
}

// GoString returns the Go string representation of this State constant.
func (s State) GoString() string {
	return enumhelper.DereferenceEnumData("State", stateData, uint(s)).GoName
}

// String returns the string representation of this State constant.
func (s State) String() string {
	return enumhelper.DereferenceEnumData("State", stateData, uint(s)).Name
}

// MarshalJSON returns the JSON representation of this State constant.
func (s State) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("State", stateData, uint(s))
}

var _ fmt.GoStringer = State(0)
var _ fmt.Stringer = State(0)

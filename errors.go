// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"fmt"

	"github.com/n2thdl/hwsim/hdl"
)

// LinkErrorKind classifies why Link refused to build a composite.
type LinkErrorKind int

const (
	// PinNotDeclared: an argument references a pin the part or the
	// enclosing chip never declared as input, output or net.
	PinNotDeclared LinkErrorKind = iota
	// WidthMismatch: a non-constant argument's width (the whole net, or the
	// span of a slice) does not equal the declared width of the part pin it
	// is bound to.
	WidthMismatch
	// SliceOutOfRange: a pin[from..to] reference falls outside 0..size-1
	// of the pin it slices.
	SliceOutOfRange
	// CombinationalLoop: the part graph has a cycle that does not pass
	// through a sequential gate's clock boundary.
	CombinationalLoop
	// ClockPhaseViolation: the kind for out-of-order clocking (see
	// clock.ErrClockPhaseViolation). Link never reports it, and no other
	// code in this module produces a LinkError of this kind.
	ClockPhaseViolation
)

func (k LinkErrorKind) String() string {
	switch k {
	case PinNotDeclared:
		return "pin not declared"
	case WidthMismatch:
		return "width mismatch"
	case SliceOutOfRange:
		return "slice out of range"
	case CombinationalLoop:
		return "combinational loop"
	case ClockPhaseViolation:
		return "clock phase violation"
	default:
		return "unknown link error"
	}
}

// LinkError is returned by Link when a chip's HDL does not describe a
// buildable circuit. Pos locates the offending part or argument when known.
type LinkError struct {
	Kind    LinkErrorKind
	Chip    string
	Part    string
	Pin     string
	Pos     hdl.Pos
	Message string
}

func (e *LinkError) Error() string {
	where := e.Chip
	if e.Part != "" {
		where += "." + e.Part
	}
	if e.Pin != "" {
		where += ":" + e.Pin
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", where, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", where, e.Kind)
}

// Conflict records that two or more parts drove overlapping bits of the
// same destination pin with disagreeing values during one evaluation pass.
// It is surfaced as data returned alongside a result row, never as an
// error: a conflict does not stop evaluation, it only flags a bit whose
// visible value is an arbitrary but deterministic pick among its writers.
// Row is the index into the batch passed to ExecOnData, or -1 for a single
// Step/Evaluate call outside a batch.
type Conflict struct {
	Row     int
	Pin     string
	Bit     int
	Writers []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict on %s bit %d between %v", c.Pin, c.Bit, c.Writers)
}

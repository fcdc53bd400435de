// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// GateInstance is satisfied both by mounted built-in primitives (*Instance)
// and by linked composites (*Composite), so the evaluator can walk a part
// list without caring which kind of gate it is mounting. This mirrors the
// teacher's Socket/Component split (chip.go, hwsim.go) generalized to the
// two-phase clocked evaluation model.
type GateInstance interface {
	pins() *Pins
	evaluate()
	clockUp()
	clockDown()
}

// Instance is a mounted built-in gate: its own private Pins plus the
// closures a GateSpec's New function bound over them. ClockUpFn/ClockDownFn
// are nil for combinational gates.
type Instance struct {
	P           *Pins
	EvalFn      func()
	ClockUpFn   func()
	ClockDownFn func()
}

func (i *Instance) pins() *Pins { return i.P }

func (i *Instance) evaluate() {
	if i.EvalFn != nil {
		i.EvalFn()
	}
}

func (i *Instance) clockUp() {
	if i.ClockUpFn != nil {
		i.ClockUpFn()
	}
}

func (i *Instance) clockDown() {
	if i.ClockDownFn != nil {
		i.ClockDownFn()
	}
}

// Sequential reports whether this mounted instance samples on clock edges.
func (i *Instance) Sequential() bool { return i.ClockUpFn != nil || i.ClockDownFn != nil }

// DriveInstance feeds in onto inst's own pins, reads back the resulting
// pin snapshot, then runs one clock edge (a no-op for combinational
// instances) so a later call observes today's update. For a sequential
// instance the returned snapshot therefore reflects the state committed
// by the *previous* DriveInstance call, not the in values just set: real
// flip-flops hold their output until the next clock edge commits it, one
// combined tick at a time, the same one-cycle delay the teacher's own
// TickTock exhibits (see dff_test.go: "because inputs are delayed by one
// tick, DFFs do not see the new value when we change it right at the
// beginning of a new clock cycle"). It exists for callers outside this
// package that need to exercise a single bare GateInstance - gate-vs-gate
// comparison tests, mainly - without building a full composite around it.
func DriveInstance(inst GateInstance, in Row) Row {
	p := inst.pins()
	for name, v := range in {
		p.Set(name, v)
	}
	inst.evaluate()
	row := p.Snapshot()
	inst.clockUp()
	inst.clockDown()
	return row
}

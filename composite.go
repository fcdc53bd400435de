// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/n2thdl/hwsim/clock"
	"github.com/n2thdl/hwsim/hdl"
	"github.com/n2thdl/hwsim/word"
)

// bitWriter records who last drove one bit of a net during the pass
// currently settling, so mergeWrite can tell a converging rewrite by the
// same part from a genuine disagreement between two different parts.
type bitWriter struct {
	part   int
	writer string
	value  bool
}

// Composite is a mounted, linked chip: a private net table, the part
// instances Link bound to it, and the order Evaluate walks them in. It
// satisfies GateInstance, so a Composite can itself be wired as a part of
// an enclosing Composite to arbitrary nesting depth.
type Composite struct {
	name    string
	inputs  []PinSpec
	outputs []PinSpec
	extPins *Pins

	netSizes  map[string]int
	netValues map[string]word.Word
	inputSet  map[string]bool

	plans []*partPlan
	insts []GateInstance
	order []int
	seq   bool

	writers   map[string]map[int]bitWriter
	conflicts []Conflict
}

func newComposite(name string, inputs, outputs []PinSpec, sizes map[string]int, plans []*partPlan, order []int) *Composite {
	c := &Composite{
		name:      name,
		inputs:    inputs,
		outputs:   outputs,
		extPins:   newPins(inputs, outputs),
		netSizes:  sizes,
		netValues: make(map[string]word.Word, len(sizes)),
		inputSet:  make(map[string]bool, len(inputs)),
		plans:     plans,
		insts:     make([]GateInstance, len(plans)),
		order:     order,
		writers:   make(map[string]map[int]bitWriter),
	}
	for _, p := range inputs {
		c.inputSet[p.Name] = true
	}
	for i, p := range plans {
		inst := p.spec.New()
		c.insts[i] = inst
		if isSequential(inst) {
			c.seq = true
		}
	}
	return c
}

// isSequential reports whether a mounted GateInstance samples on a clock
// edge, recursing into a nested Composite's own flag rather than assuming
// every sub-part is a bare *Instance.
func isSequential(inst GateInstance) bool {
	switch v := inst.(type) {
	case *Instance:
		return v.Sequential()
	case *Composite:
		return v.Sequential()
	default:
		return false
	}
}

// Name returns the chip name this composite was linked from.
func (c *Composite) Name() string { return c.name }

// Sequential reports whether this composite, or any part nested inside it
// to arbitrary depth, samples on a clock edge. GateSpec.Sequential uses
// this so a chip built entirely from HDL that happens to wrap a DFF deep
// in its part graph is still classified as sequential rather than being
// mistaken for combinational by the linker's loop check.
func (c *Composite) Sequential() bool { return c.seq }

func (c *Composite) pins() *Pins { return c.extPins }

// evaluate satisfies GateInstance for a Composite nested as a part of
// another one.
func (c *Composite) evaluate() { c.Evaluate() }

func (c *Composite) clockUp()   { c.ClockUp() }
func (c *Composite) clockDown() { c.ClockDown() }

// Evaluate recomputes every net from the current external input pins,
// walking parts in topological order and settling combinational feedback
// between a composite's own latched and unlatched outputs by repeating the
// pass until the net table stops changing (bounded by one more pass than
// there are parts, so
// a run that never settles reports the last pass's snapshot rather than
// looping forever — a genuine oscillation was already rejected at link
// time as a CombinationalLoop). Sequential parts emit whatever they
// latched on the last clock edge regardless of how many passes run, so
// they never prevent settling.
func (c *Composite) Evaluate() {
	for _, p := range c.inputs {
		c.netValues[p.Name] = c.extPins.Get(p.Name)
	}
	for name := range c.netSizes {
		if c.inputSet[name] {
			continue
		}
		c.netValues[name] = 0
	}

	maxPasses := len(c.order) + 1
	if maxPasses < 1 {
		maxPasses = 1
	}
	var prev map[string]word.Word
	for pass := 0; pass < maxPasses; pass++ {
		for k := range c.writers {
			delete(c.writers, k)
		}
		c.conflicts = c.conflicts[:0]
		for _, idx := range c.order {
			c.runPart(idx)
		}
		cur := c.snapshotNets()
		if prev != nil && netsEqual(prev, cur) {
			break
		}
		prev = cur
	}

	for _, p := range c.outputs {
		c.extPins.Set(p.Name, c.netValues[p.Name])
	}
}

func (c *Composite) runPart(idx int) {
	plan := c.plans[idx]
	inst := c.insts[idx]
	pins := inst.pins()

	for _, in := range plan.inputs {
		var v word.Word
		switch in.ref.Kind {
		case hdl.RefConstant:
			if in.ref.Value {
				v = word.Ones(pins.Size(in.partPin))
			}
		case hdl.RefSlice:
			v = word.Slice(c.netValues[in.ref.Name], in.ref.From, in.ref.To)
		default:
			v = c.netValues[in.ref.Name]
		}
		pins.Set(in.partPin, v)
	}

	inst.evaluate()

	for _, out := range plan.outputs {
		c.mergeWrite(out.ref, pins.Get(out.partPin), idx, plan.callName)
	}
}

// mergeWrite folds one part's write into the shared net table bit by bit,
// flagging a Conflict whenever a different part already wrote a
// disagreeing value to the same bit during this pass. The later write
// always wins so the visible value stays deterministic.
func (c *Composite) mergeWrite(ref hdl.PinRef, value word.Word, part int, writer string) {
	from, to := 0, c.netSizes[ref.Name]-1
	if ref.Kind == hdl.RefSlice {
		from, to = ref.From, ref.To
	}
	log, ok := c.writers[ref.Name]
	if !ok {
		log = make(map[int]bitWriter)
		c.writers[ref.Name] = log
	}
	cur := c.netValues[ref.Name]
	for bit := from; bit <= to; bit++ {
		bv := word.Bit(value, bit-from)
		if prior, seen := log[bit]; seen && prior.part != part && prior.value != bv {
			c.conflicts = append(c.conflicts, Conflict{Row: -1, Pin: ref.Name, Bit: bit, Writers: []string{prior.writer, writer}})
		}
		log[bit] = bitWriter{part: part, writer: writer, value: bv}
		cur = word.SetBit(cur, bit, bv)
	}
	c.netValues[ref.Name] = cur
}

func (c *Composite) snapshotNets() map[string]word.Word {
	m := make(map[string]word.Word, len(c.netValues))
	for k, v := range c.netValues {
		m[k] = v
	}
	return m
}

func netsEqual(a, b map[string]word.Word) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// ClockUp propagates a rising edge to every part that samples on one, then
// re-evaluates so newly latched state reaches this composite's outputs.
// It evaluates once before delivering the edge so that input values set by
// a prior SetPinValues (with no intervening Evaluate) have already reached
// every sub-part's own pins; otherwise a sequential sub-part would sample
// whatever stale (possibly zero) value its pins held from the last pass
// instead of the input this caller just set.
func (c *Composite) ClockUp() {
	c.Evaluate()
	for _, inst := range c.insts {
		inst.clockUp()
	}
	c.Evaluate()
}

// ClockDown propagates a falling edge and re-evaluates, the mirror of
// ClockUp. A full clock cycle is one ClockUp followed by one ClockDown.
func (c *Composite) ClockDown() {
	for _, inst := range c.insts {
		inst.clockDown()
	}
	c.Evaluate()
}

// Tick advances clk by one half-phase and delivers the resulting edge to
// this composite. Two calls make a full cycle.
func (c *Composite) Tick(clk *clock.SystemClock) {
	clk.Tick(c)
}

// SetPinValues writes row into this composite's external input pins.
// Values for names that are not declared inputs are ignored.
func (c *Composite) SetPinValues(row Row) {
	for _, p := range c.inputs {
		if v, ok := row[p.Name]; ok {
			c.extPins.Set(p.Name, v)
		}
	}
}

// GetPinValues snapshots every external input and output pin.
func (c *Composite) GetPinValues() Row {
	return c.extPins.Snapshot()
}

// Step sets row's values onto the inputs, evaluates, and returns the
// resulting pin snapshot together with any conflicts the pass surfaced.
func (c *Composite) Step(row Row) (Row, []Conflict) {
	c.SetPinValues(row)
	c.Evaluate()
	return c.GetPinValues(), append([]Conflict(nil), c.conflicts...)
}

// ExecOnData runs Step over a batch of input rows in order, tagging any
// conflict it collects with the row index that produced it.
func (c *Composite) ExecOnData(rows []Row) ([]Row, []Conflict) {
	results := make([]Row, len(rows))
	var conflicts []Conflict
	for i, row := range rows {
		out, rowConflicts := c.Step(row)
		results[i] = out
		for _, cf := range rowConflicts {
			cf.Row = i
			conflicts = append(conflicts, cf)
		}
	}
	return results, conflicts
}

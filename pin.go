// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/n2thdl/hwsim/hdl"
	"github.com/n2thdl/hwsim/word"
)

// PinSpec and PinRef are the HDL grammar's pin vocabulary; the
// parser builds them and the linker consumes them, so both live in the hdl
// package and are aliased here for callers that only ever touch the
// evaluator-facing API.
type (
	PinSpec = hdl.PinSpec
	PinRef  = hdl.PinRef
)

// Re-exported PinRef kinds.
const (
	RefSimple   = hdl.RefSimple
	RefSlice    = hdl.RefSlice
	RefConstant = hdl.RefConstant
)

// Row maps a declared pin name to its value. execOnData rows and
// GetPinValues/SetPinValues results are both Rows.
type Row map[string]word.Word

// Pins is the private pin namespace of one gate instance: a map from pin
// name to its current Word value, with each write masked to that pin's
// declared size. A built-in gate's Mount/New closures read and write their
// own pins through this type; a composite's external interface is also a
// Pins.
type Pins struct {
	values map[string]word.Word
	sizes  map[string]int
}

func newPins(specs ...[]PinSpec) *Pins {
	p := &Pins{values: make(map[string]word.Word), sizes: make(map[string]int)}
	for _, list := range specs {
		for _, s := range list {
			p.sizes[s.Name] = s.Size
			p.values[s.Name] = 0
		}
	}
	return p
}

// NewPins allocates the private pin namespace for a built-in gate, sized by
// its declared inputs and outputs. Built-in gate packages call this from
// their GateSpec.New factory; hwsim itself never needs it outside that
// path since composites get their external Pins from the linker.
func NewPins(inputs, outputs []PinSpec) *Pins {
	return newPins(inputs, outputs)
}

// Get returns the current value of pin name. Unknown pins read as 0, since
// evaluate() is specified as total.
func (p *Pins) Get(name string) word.Word {
	return p.values[name]
}

// Set writes w to pin name, masked to that pin's declared size. Writing to
// a name not present in the instance's declared inputs/outputs is a no-op.
func (p *Pins) Set(name string, w word.Word) {
	if size, ok := p.sizes[name]; ok {
		p.values[name] = word.Mask(w, size)
	}
}

// Size returns the declared width of pin name, or 0 if unknown.
func (p *Pins) Size(name string) int {
	return p.sizes[name]
}

// Snapshot copies every pin's current value into a fresh Row.
func (p *Pins) Snapshot() Row {
	r := make(Row, len(p.values))
	for k, v := range p.values {
		r[k] = v
	}
	return r
}

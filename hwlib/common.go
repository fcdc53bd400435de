// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib is the built-in gate library: the primitive GateSpecs that
// terminate every composite chip's part graph, from single-bit Nand up
// through the canonical Hack CPU and Computer.
package hwlib

import (
	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// common pin names, shared across gate files the way a single wire/bus name
// vocabulary keeps built-in signatures consistent.
const (
	pA     = "a"
	pB     = "b"
	pIn    = "in"
	pOut   = "out"
	pSel   = "sel"
	pLoad  = "load"
	pReset = "reset"
)

func bit(name string) hwsim.PinSpec  { return hwsim.PinSpec{Name: name, Size: 1} }
func bus(name string, size int) hwsim.PinSpec { return hwsim.PinSpec{Name: name, Size: size} }

func toBool(w word.Word) bool {
	return w != 0
}

func toWord(b bool) word.Word {
	if b {
		return 1
	}
	return 0
}

// comb builds a combinational GateSpec: eval is a pure function of p's
// current inputs, run once per Evaluate pass.
func comb(name string, inputs, outputs []hwsim.PinSpec, eval func(p *hwsim.Pins)) *hwsim.GateSpec {
	return &hwsim.GateSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		New: func() hwsim.GateInstance {
			p := hwsim.NewPins(inputs, outputs)
			return &hwsim.Instance{P: p, EvalFn: func() { eval(p) }}
		},
	}
}

// seq builds a sequential GateSpec. mount runs once per instance and
// returns the three closures an Instance needs: eval for the combinational
// read-out of whatever is currently latched, up for the rising-edge sample,
// down for the falling-edge commit.
func seq(name string, inputs, outputs []hwsim.PinSpec, mount func(p *hwsim.Pins) (eval, up, down func())) *hwsim.GateSpec {
	return &hwsim.GateSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		New: func() hwsim.GateInstance {
			p := hwsim.NewPins(inputs, outputs)
			ev, up, down := mount(p)
			return &hwsim.Instance{P: p, EvalFn: ev, ClockUpFn: up, ClockDownFn: down}
		},
	}
}

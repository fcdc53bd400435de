// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// DFF returns a clocked data flip-flop. The registers and PC below use the
// same sample-then-commit shape but hold their own state rather than being
// built from DFF.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1), where t is the current clock cycle.
var DFF = seq("DFF", []hwsim.PinSpec{bit(pIn)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) (eval, up, down func()) {
		var held, shadow word.Word
		eval = func() { p.Set(pOut, held) }
		up = func() { shadow = p.Get(pIn) }
		down = func() { held = shadow }
		return
	})

// registerSpec builds an n-bit loadable register: the shared shape behind
// Bit, Register, ARegister and DRegister, which differ only in name and
// width by convention in the Hack platform.
func registerSpec(name string, bits int) *hwsim.GateSpec {
	return seq(name, []hwsim.PinSpec{bus(pIn, bits), bit(pLoad)}, []hwsim.PinSpec{bus(pOut, bits)},
		func(p *hwsim.Pins) (eval, up, down func()) {
			var held, shadow word.Word
			eval = func() { p.Set(pOut, held) }
			up = func() {
				if toBool(p.Get(pLoad)) {
					shadow = p.Get(pIn)
				} else {
					shadow = held
				}
			}
			down = func() { held = shadow }
			return
		})
}

// Bit returns a 1-bit register with load.
//
//	Inputs: in, load
//	Outputs: out
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
var Bit = registerSpec("Bit", 1)

// Register returns a 16-bit register with load.
//
//	Inputs: in[16], load
//	Outputs: out[16]
var Register = registerSpec("Register", 16)

// ARegister returns the Hack platform's A register: electrically a plain
// Register, kept as a distinct name since the CPU addresses it separately
// from D.
//
//	Inputs: in[16], load
//	Outputs: out[16]
var ARegister = registerSpec("ARegister", 16)

// DRegister returns the Hack platform's D register.
//
//	Inputs: in[16], load
//	Outputs: out[16]
var DRegister = registerSpec("DRegister", 16)

// PC returns the Hack platform's program counter: a 16-bit register that
// can hold, increment, load or reset, in that ascending priority.
//
//	Inputs: in[16], load, inc, reset
//	Outputs: out[16]
//	Function: out(t) = reset(t-1) ? 0 : load(t-1) ? in(t-1) :
//	          inc(t-1) ? out(t-1)+1 : out(t-1)
var PC = seq("PC", []hwsim.PinSpec{bus(pIn, 16), bit(pLoad), bit("inc"), bit(pReset)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) (eval, up, down func()) {
		var held, shadow word.Word
		eval = func() { p.Set(pOut, held) }
		up = func() {
			switch {
			case toBool(p.Get(pReset)):
				shadow = 0
			case toBool(p.Get(pLoad)):
				shadow = p.Get(pIn)
			case toBool(p.Get("inc")):
				shadow = held + 1
			default:
				shadow = held
			}
		}
		down = func() { held = shadow }
		return
	})

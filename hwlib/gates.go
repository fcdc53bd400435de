// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/n2thdl/hwsim"

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
var Nand = comb("Nand", []hwsim.PinSpec{bit(pA), bit(pB)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		p.Set(pOut, toWord(!(toBool(p.Get(pA)) && toBool(p.Get(pB)))))
	})

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
var Not = comb("Not", []hwsim.PinSpec{bit(pIn)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		p.Set(pOut, toWord(!toBool(p.Get(pIn))))
	})

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
var And = comb("And", []hwsim.PinSpec{bit(pA), bit(pB)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		p.Set(pOut, toWord(toBool(p.Get(pA)) && toBool(p.Get(pB))))
	})

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
var Or = comb("Or", []hwsim.PinSpec{bit(pA), bit(pB)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		p.Set(pOut, toWord(toBool(p.Get(pA)) || toBool(p.Get(pB))))
	})

// Xor returns an XOR gate.
//
//	Inputs: a, b
//	Outputs: out
var Xor = comb("Xor", []hwsim.PinSpec{bit(pA), bit(pB)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		va, vb := toBool(p.Get(pA)), toBool(p.Get(pB))
		p.Set(pOut, toWord(va != vb))
	})

// Not16 returns a 16-bit NOT gate.
//
//	Inputs: in[16]
//	Outputs: out[16]
var Not16 = comb("Not16", []hwsim.PinSpec{bus(pIn, 16)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, ^p.Get(pIn))
	})

// And16 returns a 16-bit AND gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
var And16 = comb("And16", []hwsim.PinSpec{bus(pA, 16), bus(pB, 16)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, p.Get(pA)&p.Get(pB))
	})

// Or16 returns a 16-bit OR gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
var Or16 = comb("Or16", []hwsim.PinSpec{bus(pA, 16), bus(pB, 16)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, p.Get(pA)|p.Get(pB))
	})

// Or8Way returns an 8-way OR gate: out is true if any of its 8 inputs are.
//
//	Inputs: in[8]
//	Outputs: out
var Or8Way = comb("Or8Way", []hwsim.PinSpec{bus(pIn, 8)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		p.Set(pOut, toWord(p.Get(pIn) != 0))
	})

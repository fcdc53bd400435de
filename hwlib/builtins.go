// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/n2thdl/hwsim"

// all lists every required built-in gate, in registry order.
var all = []*hwsim.GateSpec{
	Nand,
	Not,
	And,
	Or,
	Xor,
	Mux,
	DMux,
	Not16,
	And16,
	Or16,
	Mux16,
	Or8Way,
	Mux4Way16,
	Mux8Way16,
	DMux4Way,
	DMux8Way,
	HalfAdder,
	FullAdder,
	Add16,
	Inc16,
	ALU,
	DFF,
	Bit,
	Register,
	ARegister,
	DRegister,
	PC,
	RAM8,
	RAM64,
	RAM512,
	RAM4K,
	RAM16K,
	ROM32K,
	Screen,
	Keyboard,
	CPU,
	Memory,
	Computer,
}

// DefaultRegistry returns a fresh registry pre-seeded with the full built-in
// gate library, each combinational gate carrying its precomputed canonical
// truth table.
func DefaultRegistry() *hwsim.Registry {
	r := hwsim.NewRegistry()
	for _, spec := range all {
		reg := *spec
		reg.TruthTable = hwsim.BuildTruthTable(spec)
		r.Register(&reg)
	}
	return r
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/n2thdl/hwsim"

// Mux returns a 1-bit multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: out = sel ? b : a
var Mux = comb("Mux", []hwsim.PinSpec{bit(pA), bit(pB), bit(pSel)}, []hwsim.PinSpec{bit(pOut)},
	func(p *hwsim.Pins) {
		if toBool(p.Get(pSel)) {
			p.Set(pOut, p.Get(pB))
		} else {
			p.Set(pOut, p.Get(pA))
		}
	})

// DMux returns a 1-bit demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: sel ? (a=0, b=in) : (a=in, b=0)
var DMux = comb("DMux", []hwsim.PinSpec{bit(pIn), bit(pSel)}, []hwsim.PinSpec{bit(pA), bit(pB)},
	func(p *hwsim.Pins) {
		if toBool(p.Get(pSel)) {
			p.Set(pA, 0)
			p.Set(pB, p.Get(pIn))
		} else {
			p.Set(pA, p.Get(pIn))
			p.Set(pB, 0)
		}
	})

// Mux16 returns a 16-bit multiplexer.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
var Mux16 = comb("Mux16", []hwsim.PinSpec{bus(pA, 16), bus(pB, 16), bit(pSel)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		if toBool(p.Get(pSel)) {
			p.Set(pOut, p.Get(pB))
		} else {
			p.Set(pOut, p.Get(pA))
		}
	})

// Mux4Way16 returns a 4-way 16-bit multiplexer. sel is decoded low-bit
// first: sel=0 selects a, 1 selects b, 2 selects c, 3 selects d.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
var Mux4Way16 = comb("Mux4Way16",
	[]hwsim.PinSpec{bus(pA, 16), bus(pB, 16), bus("c", 16), bus("d", 16), bus(pSel, 2)},
	[]hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		ins := [4]string{pA, pB, "c", "d"}
		p.Set(pOut, p.Get(ins[p.Get(pSel)&3]))
	})

// Mux8Way16 returns an 8-way 16-bit multiplexer, sel decoded low-bit first.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Outputs: out[16]
var Mux8Way16 = comb("Mux8Way16",
	[]hwsim.PinSpec{bus(pA, 16), bus(pB, 16), bus("c", 16), bus("d", 16),
		bus("e", 16), bus("f", 16), bus("g", 16), bus("h", 16), bus(pSel, 3)},
	[]hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		ins := [8]string{pA, pB, "c", "d", "e", "f", "g", "h"}
		p.Set(pOut, p.Get(ins[p.Get(pSel)&7]))
	})

// DMux4Way returns a 4-way demultiplexer, sel decoded low-bit first.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
var DMux4Way = comb("DMux4Way", []hwsim.PinSpec{bit(pIn), bus(pSel, 2)},
	[]hwsim.PinSpec{bit(pA), bit(pB), bit("c"), bit("d")},
	func(p *hwsim.Pins) {
		outs := [4]string{pA, pB, "c", "d"}
		sel := p.Get(pSel) & 3
		in := p.Get(pIn)
		for i, o := range outs {
			if int(sel) == i {
				p.Set(o, in)
			} else {
				p.Set(o, 0)
			}
		}
	})

// DMux8Way returns an 8-way demultiplexer, sel decoded low-bit first.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
var DMux8Way = comb("DMux8Way", []hwsim.PinSpec{bit(pIn), bus(pSel, 3)},
	[]hwsim.PinSpec{bit(pA), bit(pB), bit("c"), bit("d"), bit("e"), bit("f"), bit("g"), bit("h")},
	func(p *hwsim.Pins) {
		outs := [8]string{pA, pB, "c", "d", "e", "f", "g", "h"}
		sel := p.Get(pSel) & 7
		in := p.Get(pIn)
		for i, o := range outs {
			if int(sel) == i {
				p.Set(o, in)
			} else {
				p.Set(o, 0)
			}
		}
	})

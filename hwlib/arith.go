// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b); c = msb(a + b)
var HalfAdder = comb("HalfAdder", []hwsim.PinSpec{bit(pA), bit(pB)}, []hwsim.PinSpec{bit("s"), bit("c")},
	func(p *hwsim.Pins) {
		va, vb := toBool(p.Get(pA)), toBool(p.Get(pB))
		p.Set("s", toWord(va != vb))
		p.Set("c", toWord(va && vb))
	})

// FullAdder returns a 3-input adder.
//
//	Inputs: a, b, c
//	Outputs: s, carry
//	Function: s = lsb(a+b+c); carry = msb(a+b+c)
var FullAdder = comb("FullAdder", []hwsim.PinSpec{bit(pA), bit(pB), bit("c")}, []hwsim.PinSpec{bit("s"), bit("carry")},
	func(p *hwsim.Pins) {
		va, vb, vc := toBool(p.Get(pA)), toBool(p.Get(pB)), toBool(p.Get("c"))
		n := 0
		for _, v := range []bool{va, vb, vc} {
			if v {
				n++
			}
		}
		p.Set("s", toWord(n%2 == 1))
		p.Set("carry", toWord(n >= 2))
	})

// Add16 returns a 16-bit adder with wraparound carry-out discarded, as
// Nand2Tetris defines it (no carry pin).
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
var Add16 = comb("Add16", []hwsim.PinSpec{bus(pA, 16), bus(pB, 16)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, p.Get(pA)+p.Get(pB))
	})

// Inc16 returns a 16-bit incrementer.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: out = in + 1
var Inc16 = comb("Inc16", []hwsim.PinSpec{bus(pIn, 16)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, p.Get(pIn)+1)
	})

// computeALU implements the Hack ALU's 6-control-bit function over x and y.
func computeALU(x, y word.Word, zx, nx, zy, ny, f, no bool) (out word.Word, zr, ng bool) {
	if zx {
		x = 0
	}
	if nx {
		x = ^x
	}
	if zy {
		y = 0
	}
	if ny {
		y = ^y
	}
	if f {
		out = x + y
	} else {
		out = x & y
	}
	if no {
		out = ^out
	}
	return out, out == 0, word.Signed(out, 16) < 0
}

// ALU returns the Hack arithmetic logic unit.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: zx/nx/zy/ny zero or negate x/y, f selects add (1) or and (0),
//	no negates the result; zr = out==0, ng = out<0 (two's complement).
var ALU = comb("ALU",
	[]hwsim.PinSpec{bus("x", 16), bus("y", 16), bit("zx"), bit("nx"), bit("zy"), bit("ny"), bit("f"), bit("no")},
	[]hwsim.PinSpec{bus(pOut, 16), bit("zr"), bit("ng")},
	func(p *hwsim.Pins) {
		out, zr, ng := computeALU(p.Get("x"), p.Get("y"),
			toBool(p.Get("zx")), toBool(p.Get("nx")), toBool(p.Get("zy")), toBool(p.Get("ny")),
			toBool(p.Get("f")), toBool(p.Get("no")))
		p.Set(pOut, out)
		p.Set("zr", toWord(zr))
		p.Set("ng", toWord(ng))
	})

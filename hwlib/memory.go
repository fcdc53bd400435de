// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// ramSpec builds an n-word addressable RAM: asynchronous read, and a
// tick-up/tick-down sample-then-commit write exactly like Register, just
// indexed by address instead of being a single cell.
func ramSpec(name string, words, addrBits int) *hwsim.GateSpec {
	return seq(name, []hwsim.PinSpec{bus(pIn, 16), bit(pLoad), bus("address", addrBits)}, []hwsim.PinSpec{bus(pOut, 16)},
		func(p *hwsim.Pins) (eval, up, down func()) {
			cells := make([]word.Word, words)
			var doWrite bool
			var writeAddr int
			var writeVal word.Word

			eval = func() {
				addr := int(p.Get("address"))
				if addr < 0 || addr >= words {
					addr = 0
				}
				p.Set(pOut, cells[addr])
			}
			up = func() {
				doWrite = toBool(p.Get(pLoad))
				writeAddr = int(p.Get("address"))
				writeVal = p.Get(pIn)
			}
			down = func() {
				if doWrite && writeAddr >= 0 && writeAddr < words {
					cells[writeAddr] = writeVal
				}
			}
			return
		})
}

// RAM8 returns an 8-word RAM.
//
//	Inputs: in[16], load, address[3]
//	Outputs: out[16]
var RAM8 = ramSpec("RAM8", 8, 3)

// RAM64 returns a 64-word RAM.
//
//	Inputs: in[16], load, address[6]
//	Outputs: out[16]
var RAM64 = ramSpec("RAM64", 64, 6)

// RAM512 returns a 512-word RAM.
//
//	Inputs: in[16], load, address[9]
//	Outputs: out[16]
var RAM512 = ramSpec("RAM512", 512, 9)

// RAM4K returns a 4096-word RAM.
//
//	Inputs: in[16], load, address[12]
//	Outputs: out[16]
var RAM4K = ramSpec("RAM4K", 4096, 12)

// RAM16K returns a 16384-word RAM.
//
//	Inputs: in[16], load, address[14]
//	Outputs: out[16]
var RAM16K = ramSpec("RAM16K", 16384, 14)

// Screen returns the Hack platform's memory-mapped screen buffer: 8192
// words addressed exactly like a RAM, with pixel rendering left to the
// caller inspecting the cells through GetPinValues/ExecOnData.
//
//	Inputs: in[16], load, address[13]
//	Outputs: out[16]
var Screen = ramSpec("Screen", 8192, 13)

// ROM32K returns the Hack platform's 32768-word instruction memory. Real
// hardware loads it from a program image before the clock ever runs; that
// loader lives outside this toolkit's evaluate/tick surface, so ROM32K
// here is an always-zero read-only memory reachable only by address.
//
//	Inputs: address[15]
//	Outputs: out[16]
var ROM32K = comb("ROM32K", []hwsim.PinSpec{bus("address", 15)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, 0)
	})

// Keyboard returns the Hack platform's memory-mapped keyboard register.
// Real hardware drives it from the physical keyboard; with no such input
// wired into this toolkit it always reads zero, the same scope boundary
// as ROM32K.
//
//	Outputs: out[16]
var Keyboard = comb("Keyboard", nil, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) {
		p.Set(pOut, 0)
	})

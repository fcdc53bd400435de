// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// decodeCPU implements the Hack instruction decode shared by CPU and
// Computer: it always runs the ALU (an A-instruction's low bits are simply
// unused address bits, not control bits, so there is nothing to special-case
// there) and gates the three destination loads and the jump behind the
// instruction's opcode bit.
func decodeCPU(instr, inM, aReg, dReg word.Word) (outM word.Word, loadA, loadD, writeM, jump bool) {
	isC := word.Bit(instr, 15)
	aBit := word.Bit(instr, 12)
	x := dReg
	y := aReg
	if aBit {
		y = inM
	}
	zx, nx := word.Bit(instr, 11), word.Bit(instr, 10)
	zy, ny := word.Bit(instr, 9), word.Bit(instr, 8)
	f, no := word.Bit(instr, 7), word.Bit(instr, 6)
	out, zr, ng := computeALU(x, y, zx, nx, zy, ny, f, no)

	d1, d2, d3 := word.Bit(instr, 5), word.Bit(instr, 4), word.Bit(instr, 3)
	j1, j2, j3 := word.Bit(instr, 2), word.Bit(instr, 1), word.Bit(instr, 0)
	jumpCond := (j1 && ng) || (j2 && zr) || (j3 && !zr && !ng)

	return out, !isC || d1, isC && d2, isC && d3, isC && jumpCond
}

// CPU returns the Hack central processing unit.
//
//	Inputs: inM[16], instruction[16], reset
//	Outputs: outM[16], writeM, addressM[15], pc[15]
var CPU = seq("CPU",
	[]hwsim.PinSpec{bus("inM", 16), bus("instruction", 16), bit(pReset)},
	[]hwsim.PinSpec{bus("outM", 16), bit("writeM"), bus("addressM", 15), bus("pc", 15)},
	func(p *hwsim.Pins) (eval, up, down func()) {
		var aReg, dReg, pcReg word.Word
		var shadowA, shadowD, shadowPC word.Word

		eval = func() {
			instr := p.Get("instruction")
			inM := p.Get("inM")
			outM, _, _, writeM, _ := decodeCPU(instr, inM, aReg, dReg)
			p.Set("outM", outM)
			p.Set("writeM", toWord(writeM))
			p.Set("addressM", word.Mask(aReg, 15))
			p.Set("pc", word.Mask(pcReg, 15))
		}
		up = func() {
			instr := p.Get("instruction")
			inM := p.Get("inM")
			outM, loadA, loadD, _, jump := decodeCPU(instr, inM, aReg, dReg)
			isC := word.Bit(instr, 15)
			newA := instr
			if isC {
				newA = outM
			}
			if loadA {
				shadowA = newA
			} else {
				shadowA = aReg
			}
			if loadD {
				shadowD = outM
			} else {
				shadowD = dReg
			}
			switch {
			case toBool(p.Get(pReset)):
				shadowPC = 0
			case jump:
				shadowPC = word.Mask(aReg, 15)
			default:
				shadowPC = pcReg + 1
			}
		}
		down = func() {
			aReg, dReg, pcReg = shadowA, shadowD, word.Mask(shadowPC, 15)
		}
		return
	})

// memRegion classifies a 15-bit Memory address into the Hack platform's
// three memory-mapped regions.
func memRegion(addr int) (region, index int) {
	switch {
	case addr < 16384:
		return 0, addr
	case addr < 24576:
		return 1, addr - 16384
	default:
		return 2, 0
	}
}

// Memory returns the Hack platform's unified address space: RAM16K,
// Screen and Keyboard selected by the high bits of address.
//
//	Inputs: in[16], load, address[15]
//	Outputs: out[16]
var Memory = seq("Memory", []hwsim.PinSpec{bus(pIn, 16), bit(pLoad), bus("address", 15)}, []hwsim.PinSpec{bus(pOut, 16)},
	func(p *hwsim.Pins) (eval, up, down func()) {
		ram := make([]word.Word, 16384)
		screen := make([]word.Word, 8192)
		var doWrite bool
		var region, index int
		var writeVal word.Word

		eval = func() {
			reg, idx := memRegion(int(p.Get("address")))
			switch reg {
			case 0:
				p.Set(pOut, ram[idx])
			case 1:
				p.Set(pOut, screen[idx])
			default:
				p.Set(pOut, 0)
			}
		}
		up = func() {
			doWrite = toBool(p.Get(pLoad))
			region, index = memRegion(int(p.Get("address")))
			writeVal = p.Get(pIn)
		}
		down = func() {
			if !doWrite {
				return
			}
			switch region {
			case 0:
				ram[index] = writeVal
			case 1:
				screen[index] = writeVal
			}
		}
		return
	})

// Computer returns the complete Hack platform: ROM32K, CPU and Memory
// wired into a single fetch-execute loop. It has no outputs, mirroring the
// canonical chip: everything observable lives in the Memory it exposes
// only through the clock, not through a pin. Its ROM starts zeroed for the
// same reason ROM32K does: loading a program image is outside this
// toolkit's evaluate/tick surface.
//
//	Inputs: reset
var Computer = seq("Computer", []hwsim.PinSpec{bit(pReset)}, nil,
	func(p *hwsim.Pins) (eval, up, down func()) {
		rom := make([]word.Word, 32768)
		ram := make([]word.Word, 16384)
		screen := make([]word.Word, 8192)
		var aReg, dReg, pcReg word.Word
		var shadowA, shadowD, shadowPC word.Word
		var writeMem bool
		var memAddr int
		var memVal word.Word

		readMem := func(addr int) word.Word {
			reg, idx := memRegion(addr)
			switch reg {
			case 0:
				return ram[idx]
			case 1:
				return screen[idx]
			default:
				return 0
			}
		}
		writeMemCell := func(addr int, v word.Word) {
			reg, idx := memRegion(addr)
			switch reg {
			case 0:
				ram[idx] = v
			case 1:
				screen[idx] = v
			}
		}

		eval = func() {}
		up = func() {
			instr := rom[int(pcReg)%len(rom)]
			inM := readMem(int(aReg))
			outM, loadA, loadD, doWriteM, jump := decodeCPU(instr, inM, aReg, dReg)
			isC := word.Bit(instr, 15)
			newA := instr
			if isC {
				newA = outM
			}
			if loadA {
				shadowA = newA
			} else {
				shadowA = aReg
			}
			if loadD {
				shadowD = outM
			} else {
				shadowD = dReg
			}
			writeMem = doWriteM
			memAddr = int(aReg)
			memVal = outM
			switch {
			case toBool(p.Get(pReset)):
				shadowPC = 0
			case jump:
				shadowPC = word.Mask(aReg, 15)
			default:
				shadowPC = pcReg + 1
			}
		}
		down = func() {
			aReg, dReg, pcReg = shadowA, shadowD, word.Mask(shadowPC, 15)
			if writeMem {
				writeMemCell(memAddr, memVal)
			}
		}
		return
	})

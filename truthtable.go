// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/n2thdl/hwsim/word"

// truthTableBitCap is the largest total input width enumerated exhaustively.
// Above it a curated sample is generated instead, since 2^n rows would
// otherwise dominate registry construction for wide primitives like Add16.
const truthTableBitCap = 8

// BuildTruthTable builds the canonical input/output table for a
// combinational GateSpec by mounting a throwaway instance and driving it
// through every input combination (or, past truthTableBitCap total input
// bits, a curated sample: all-zeros, all-ones, and each input isolated at
// all-ones with the rest held at zero). Sequential gates have no canonical
// table, since their output also depends on held state the inputs alone
// don't capture.
func BuildTruthTable(spec *GateSpec) []Row {
	if spec.Sequential() {
		return nil
	}
	totalBits := 0
	for _, in := range spec.Inputs {
		totalBits += in.Size
	}
	if totalBits == 0 {
		return []Row{evalRow(spec, nil)}
	}
	if totalBits <= truthTableBitCap {
		rows := make([]Row, 0, 1<<uint(totalBits))
		for v := 0; v < 1<<uint(totalBits); v++ {
			rows = append(rows, evalRow(spec, splitBits(spec.Inputs, word.Word(v))))
		}
		return rows
	}
	var rows []Row
	rows = append(rows, evalRow(spec, nil))
	allOnes := make(map[string]word.Word, len(spec.Inputs))
	for _, in := range spec.Inputs {
		allOnes[in.Name] = word.Ones(in.Size)
	}
	rows = append(rows, evalRow(spec, allOnes))
	for _, isolate := range spec.Inputs {
		assign := make(map[string]word.Word, len(spec.Inputs))
		assign[isolate.Name] = word.Ones(isolate.Size)
		rows = append(rows, evalRow(spec, assign))
	}
	return rows
}

// splitBits distributes the bits of v across inputs in declaration order,
// each input consuming its declared width starting from v's low bit.
func splitBits(inputs []PinSpec, v word.Word) map[string]word.Word {
	assign := make(map[string]word.Word, len(inputs))
	shift := uint(0)
	for _, in := range inputs {
		assign[in.Name] = word.Slice(v, int(shift), int(shift)+in.Size-1)
		shift += uint(in.Size)
	}
	return assign
}

// evalRow mounts a fresh instance, drives assign onto its inputs (any input
// not present in assign reads as its zero value), evaluates it once, and
// returns a Row covering every declared input and output.
func evalRow(spec *GateSpec, assign map[string]word.Word) Row {
	inst := spec.New()
	p := inst.pins()
	for name, v := range assign {
		p.Set(name, v)
	}
	inst.evaluate()
	row := make(Row, len(spec.Inputs)+len(spec.Outputs))
	for _, in := range spec.Inputs {
		row[in.Name] = p.Get(in.Name)
	}
	for _, out := range spec.Outputs {
		row[out.Name] = p.Get(out.Name)
	}
	return row
}

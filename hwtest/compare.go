// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing gates and circuits.
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// randWord returns a random value of size bits.
func randWord(size int) word.Word {
	return word.Mask(word.Word(rand.Uint32()), size)
}

// ComparePart mounts two GateSpecs sharing the same pin interface and
// compares their outputs over iterations random input assignments plus the
// all-zeros and all-ones corners. It is meant for checking a hand-written
// composite against the canonical built-in it is supposed to reimplement
// (or vice versa).
func ComparePart(t *testing.T, iterations int, spec1, spec2 *hwsim.GateSpec) {
	t.Helper()

	if len(spec1.Inputs) != len(spec2.Inputs) {
		t.Fatalf("input count mismatch: %d != %d", len(spec1.Inputs), len(spec2.Inputs))
	}
	if len(spec1.Outputs) != len(spec2.Outputs) {
		t.Fatalf("output count mismatch: %d != %d", len(spec1.Outputs), len(spec2.Outputs))
	}
	for i := range spec1.Inputs {
		if spec1.Inputs[i] != spec2.Inputs[i] {
			t.Fatalf("input %d mismatch: %+v != %+v", i, spec1.Inputs[i], spec2.Inputs[i])
		}
	}
	for i := range spec1.Outputs {
		if spec1.Outputs[i] != spec2.Outputs[i] {
			t.Fatalf("output %d mismatch: %+v != %+v", i, spec1.Outputs[i], spec2.Outputs[i])
		}
	}

	inst1, inst2 := spec1.New(), spec2.New()
	seq1, seq2 := spec1.Sequential(), spec2.Sequential()
	if seq1 != seq2 {
		t.Fatalf("%s is sequential but %s is not (or vice versa)", spec1.Name, spec2.Name)
	}

	run := func(row hwsim.Row) (hwsim.Row, hwsim.Row) {
		snap1 := hwsim.DriveInstance(inst1, row)
		snap2 := hwsim.DriveInstance(inst2, row)
		out1, out2 := make(hwsim.Row, len(spec1.Outputs)), make(hwsim.Row, len(spec2.Outputs))
		for _, o := range spec1.Outputs {
			out1[o.Name] = snap1[o.Name]
		}
		for _, o := range spec2.Outputs {
			out2[o.Name] = snap2[o.Name]
		}
		return out1, out2
	}

	describe := func(row hwsim.Row) string {
		var b strings.Builder
		for _, in := range spec1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%d", in.Name, row[in.Name])
		}
		return b.String()
	}

	check := func(row hwsim.Row) {
		out1, out2 := run(row)
		for _, o := range spec1.Outputs {
			if out1[o.Name] != out2[o.Name] {
				t.Fatalf("%s vs %s differ for %s: %s=%d, %s=%d",
					spec1.Name, spec2.Name, describe(row), o.Name, out1[o.Name], o.Name, out2[o.Name])
			}
		}
	}

	zero := make(hwsim.Row, len(spec1.Inputs))
	ones := make(hwsim.Row, len(spec1.Inputs))
	for _, in := range spec1.Inputs {
		zero[in.Name] = 0
		ones[in.Name] = word.Ones(in.Size)
	}
	check(zero)
	check(ones)

	rand.Seed(time.Now().UnixNano())
	for i := 0; i < iterations; i++ {
		row := make(hwsim.Row, len(spec1.Inputs))
		for _, in := range spec1.Inputs {
			row[in.Name] = randWord(in.Size)
		}
		check(row)
	}
}

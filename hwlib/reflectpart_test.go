package hwlib_test

import (
	"testing"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/hwlib"
	"github.com/n2thdl/hwsim/word"
)

// mux2 is a hand-written Go primitive wired through reflection instead of a
// comb closure, exercising MakePart's tag-driven pin binding.
type mux2 struct {
	A   word.Word `hw:"in,a,16"`
	B   word.Word `hw:"in,b,16"`
	Sel word.Word `hw:"in,sel"`
	Out word.Word `hw:"out,out,16"`
}

func (m *mux2) Update() {
	if m.Sel != 0 {
		m.Out = m.B
	} else {
		m.Out = m.A
	}
}

var mux2Spec = hwlib.MakePart((*mux2)(nil))

func TestMakePartMux2(t *testing.T) {
	out := hwsim.DriveInstance(mux2Spec.New(), hwsim.Row{"a": 11, "b": 22, "sel": 0})
	if out["out"] != 11 {
		t.Fatalf("mux2(sel=0) = %d, want 11", out["out"])
	}
	out = hwsim.DriveInstance(mux2Spec.New(), hwsim.Row{"a": 11, "b": 22, "sel": 1})
	if out["out"] != 22 {
		t.Fatalf("mux2(sel=1) = %d, want 22", out["out"])
	}
}

func TestMakePartDeclaresPins(t *testing.T) {
	if len(mux2Spec.Inputs) != 3 {
		t.Fatalf("mux2 inputs = %d, want 3", len(mux2Spec.Inputs))
	}
	if len(mux2Spec.Outputs) != 1 || mux2Spec.Outputs[0].Size != 16 {
		t.Fatalf("mux2 outputs = %v, want one 16-bit pin", mux2Spec.Outputs)
	}
}

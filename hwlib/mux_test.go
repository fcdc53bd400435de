package hwlib_test

import (
	"testing"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/hwlib"
	"github.com/n2thdl/hwsim/word"
)

func TestMux(t *testing.T) {
	td := []struct {
		a, b, sel word.Word
		want      word.Word
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{1, 0, 1, 0},
	}
	for _, d := range td {
		out := hwsim.DriveInstance(hwlib.Mux.New(), hwsim.Row{"a": d.a, "b": d.b, "sel": d.sel})
		if out["out"] != d.want {
			t.Errorf("Mux(a=%d, b=%d, sel=%d) = %d, want %d", d.a, d.b, d.sel, out["out"], d.want)
		}
	}
}

func TestDMux(t *testing.T) {
	out := hwsim.DriveInstance(hwlib.DMux.New(), hwsim.Row{"in": 1, "sel": 0})
	if out["a"] != 1 || out["b"] != 0 {
		t.Errorf("DMux(in=1, sel=0) = a=%d b=%d, want a=1 b=0", out["a"], out["b"])
	}
	out = hwsim.DriveInstance(hwlib.DMux.New(), hwsim.Row{"in": 1, "sel": 1})
	if out["a"] != 0 || out["b"] != 1 {
		t.Errorf("DMux(in=1, sel=1) = a=%d b=%d, want a=0 b=1", out["a"], out["b"])
	}
}

func TestMux4Way16(t *testing.T) {
	row := hwsim.Row{"a": 1, "b": 2, "c": 3, "d": 4}
	for sel := word.Word(0); sel < 4; sel++ {
		row["sel"] = sel
		out := hwsim.DriveInstance(hwlib.Mux4Way16.New(), row)
		want := word.Word(sel + 1)
		if out["out"] != want {
			t.Errorf("Mux4Way16(sel=%d) = %d, want %d", sel, out["out"], want)
		}
	}
}

func TestMux8Way16(t *testing.T) {
	row := hwsim.Row{"a": 10, "b": 11, "c": 12, "d": 13, "e": 14, "f": 15, "g": 16, "h": 17}
	for sel := word.Word(0); sel < 8; sel++ {
		row["sel"] = sel
		out := hwsim.DriveInstance(hwlib.Mux8Way16.New(), row)
		want := word.Word(10 + sel)
		if out["out"] != want {
			t.Errorf("Mux8Way16(sel=%d) = %d, want %d", sel, out["out"], want)
		}
	}
}

func TestDMux4Way(t *testing.T) {
	outs := [4]string{"a", "b", "c", "d"}
	for sel := word.Word(0); sel < 4; sel++ {
		out := hwsim.DriveInstance(hwlib.DMux4Way.New(), hwsim.Row{"in": 1, "sel": sel})
		for i, name := range outs {
			want := word.Word(0)
			if word.Word(i) == sel {
				want = 1
			}
			if out[name] != want {
				t.Errorf("DMux4Way(sel=%d).%s = %d, want %d", sel, name, out[name], want)
			}
		}
	}
}

func TestDMux8Way(t *testing.T) {
	outs := [8]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for sel := word.Word(0); sel < 8; sel++ {
		out := hwsim.DriveInstance(hwlib.DMux8Way.New(), hwsim.Row{"in": 1, "sel": sel})
		for i, name := range outs {
			want := word.Word(0)
			if word.Word(i) == sel {
				want = 1
			}
			if out[name] != want {
				t.Errorf("DMux8Way(sel=%d).%s = %d, want %d", sel, name, out[name], want)
			}
		}
	}
}

package hwlib_test

import (
	"testing"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/hwlib"
	"github.com/n2thdl/hwsim/word"
)

func TestHalfAdder(t *testing.T) {
	td := []struct{ a, b, s, c word.Word }{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 0, 1},
	}
	for _, d := range td {
		out := hwsim.DriveInstance(hwlib.HalfAdder.New(), hwsim.Row{"a": d.a, "b": d.b})
		if out["s"] != d.s || out["c"] != d.c {
			t.Errorf("HalfAdder(%d,%d) = s=%d c=%d, want s=%d c=%d", d.a, d.b, out["s"], out["c"], d.s, d.c)
		}
	}
}

func TestFullAdder(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, c := word.Word(i>>2&1), word.Word(i>>1&1), word.Word(i&1)
		sum := a + b + c
		out := hwsim.DriveInstance(hwlib.FullAdder.New(), hwsim.Row{"a": a, "b": b, "c": c})
		if out["s"] != sum&1 || out["carry"] != sum>>1 {
			t.Errorf("FullAdder(%d,%d,%d) = s=%d carry=%d, want s=%d carry=%d",
				a, b, c, out["s"], out["carry"], sum&1, sum>>1)
		}
	}
}

func TestAdd16(t *testing.T) {
	out := hwsim.DriveInstance(hwlib.Add16.New(), hwsim.Row{"a": 40000, "b": 30000})
	a, b := uint16(40000), uint16(30000)
	want := word.Word(a + b)
	if out["out"] != want {
		t.Errorf("Add16(40000, 30000) = %d, want %d", out["out"], want)
	}
}

func TestInc16(t *testing.T) {
	out := hwsim.DriveInstance(hwlib.Inc16.New(), hwsim.Row{"in": 0xFFFF})
	if out["out"] != 0 {
		t.Errorf("Inc16(0xFFFF) = %d, want 0 (wraparound)", out["out"])
	}
}

func TestALU(t *testing.T) {
	// x=17, y=3 computed a few standard Hack ALU control-bit combinations.
	base := hwsim.Row{"x": 17, "y": 3}
	control := func(zx, nx, zy, ny, f, no bool) hwsim.Row {
		row := hwsim.Row{}
		for k, v := range base {
			row[k] = v
		}
		set := func(name string, b bool) {
			if b {
				row[name] = 1
			} else {
				row[name] = 0
			}
		}
		set("zx", zx)
		set("nx", nx)
		set("zy", zy)
		set("ny", ny)
		set("f", f)
		set("no", no)
		return row
	}

	td := []struct {
		name                   string
		zx, nx, zy, ny, f, no bool
		want                   word.Word
	}{
		{"zero", true, false, true, true, true, true, 0},
		{"one", true, true, true, true, true, true, 1},
		{"x", false, false, true, true, false, false, 17},
		{"y", true, true, false, false, false, false, 3},
		{"x+y", false, false, false, false, true, false, 20},
		{"x-y", false, true, false, false, true, true, 14},
		{"x&y", false, false, false, false, false, false, 17 & 3},
		{"x|y", false, true, false, true, false, true, 17 | 3},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			out := hwsim.DriveInstance(hwlib.ALU.New(), control(d.zx, d.nx, d.zy, d.ny, d.f, d.no))
			if out["out"] != d.want {
				t.Errorf("ALU %s = %d, want %d", d.name, out["out"], d.want)
			}
			if (out["zr"] != 0) != (d.want == 0) {
				t.Errorf("ALU %s zr = %d, want reflecting out==0", d.name, out["zr"])
			}
		})
	}
}

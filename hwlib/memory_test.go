package hwlib_test

import (
	"testing"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/hwlib"
)

func TestRAM8WriteRead(t *testing.T) {
	inst := hwlib.RAM8.New()
	tick(inst, hwsim.Row{"in": 42, "load": 1, "address": 3})
	out := tick(inst, hwsim.Row{"in": 0, "load": 0, "address": 3})
	if out["out"] != 42 {
		t.Fatalf("RAM8[3] = %d, want 42", out["out"])
	}
	out = tick(inst, hwsim.Row{"in": 0, "load": 0, "address": 5})
	if out["out"] != 0 {
		t.Fatalf("RAM8[5] = %d, want 0 (untouched cell)", out["out"])
	}
}

func TestRAM64DistinctAddresses(t *testing.T) {
	inst := hwlib.RAM64.New()
	tick(inst, hwsim.Row{"in": 7, "load": 1, "address": 10})
	tick(inst, hwsim.Row{"in": 9, "load": 1, "address": 20})
	out := tick(inst, hwsim.Row{"in": 0, "load": 0, "address": 10})
	if out["out"] != 7 {
		t.Fatalf("RAM64[10] = %d, want 7", out["out"])
	}
	out = tick(inst, hwsim.Row{"in": 0, "load": 0, "address": 20})
	if out["out"] != 9 {
		t.Fatalf("RAM64[20] = %d, want 9", out["out"])
	}
}

func TestRAM512RAM4KRAM16KLoadGated(t *testing.T) {
	td := []struct {
		name string
		spec *hwsim.GateSpec
	}{
		{"RAM512", hwlib.RAM512},
		{"RAM4K", hwlib.RAM4K},
		{"RAM16K", hwlib.RAM16K},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			inst := d.spec.New()
			tick(inst, hwsim.Row{"in": 123, "load": 1, "address": 1})
			out := tick(inst, hwsim.Row{"in": 999, "load": 0, "address": 1})
			if out["out"] != 123 {
				t.Fatalf("%s[1] after load=0 = %d, want unchanged 123", d.name, out["out"])
			}
		})
	}
}

func TestScreenIsAddressableRAM(t *testing.T) {
	inst := hwlib.Screen.New()
	tick(inst, hwsim.Row{"in": 0xFFFF, "load": 1, "address": 100})
	out := tick(inst, hwsim.Row{"in": 0, "load": 0, "address": 100})
	if out["out"] != 0xFFFF {
		t.Fatalf("Screen[100] = %04x, want FFFF", out["out"])
	}
}

func TestROM32KAlwaysZero(t *testing.T) {
	out := hwsim.DriveInstance(hwlib.ROM32K.New(), hwsim.Row{"address": 12345})
	if out["out"] != 0 {
		t.Fatalf("ROM32K[12345] = %d, want 0", out["out"])
	}
}

func TestKeyboardAlwaysZero(t *testing.T) {
	out := hwsim.DriveInstance(hwlib.Keyboard.New(), hwsim.Row{})
	if out["out"] != 0 {
		t.Fatalf("Keyboard = %d, want 0", out["out"])
	}
}

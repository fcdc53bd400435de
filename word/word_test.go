package word_test

import (
	"testing"

	"github.com/n2thdl/hwsim/word"
)

func TestSliceSetSlice(t *testing.T) {
	w := word.Word(0xBEEF)
	if got := word.Slice(w, 0, 7); got != 0xEF {
		t.Fatalf("Slice(0..7) = %04X, want EF", got)
	}
	if got := word.Slice(w, 8, 15); got != 0xBE {
		t.Fatalf("Slice(8..15) = %04X, want BE", got)
	}
	got := word.SetSlice(w, 0, 7, 0x34)
	if got != 0xBE34 {
		t.Fatalf("SetSlice = %04X, want BE34", got)
	}
}

func TestMask(t *testing.T) {
	if got := word.Mask(0xFFFF, 4); got != 0xF {
		t.Fatalf("Mask(0xFFFF,4) = %X, want F", got)
	}
	if got := word.Mask(0xFFFF, 16); got != 0xFFFF {
		t.Fatalf("Mask(0xFFFF,16) = %X, want FFFF", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		w    word.Word
		base int
		size int
		want string
	}{
		{0x0001, 16, 16, "0001"},
		{0x0001, 2, 16, "0000000000000001"},
		{0xFFFF, 10, 16, "-1"},
		{0x0005, 10, 16, "5"},
	}
	for _, c := range cases {
		if got := word.Format(c.w, c.base, c.size); got != c.want {
			t.Errorf("Format(%04X, %d, %d) = %q, want %q", c.w, c.base, c.size, got, c.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, lit := range []string{"0", "1", "65535", "-1", "-32768"} {
		w, err := word.Parse(lit, 10, 16)
		if err != nil {
			t.Fatalf("Parse(%q): %v", lit, err)
		}
		got := word.Format(w, 10, 16)
		if got != lit && !(lit == "65535" && got == "-1") {
			t.Errorf("Parse/Format round trip for %q: got %q", lit, got)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, lit := range []string{"", "xyz", "99999", "2"} {
		base := 10
		if lit == "2" {
			base = 2
		}
		if _, err := word.Parse(lit, base, 1); err == nil {
			t.Errorf("Parse(%q, base %d, size 1) should fail", lit, base)
		}
	}
}

func TestSigned(t *testing.T) {
	if got := word.Signed(0xFFFF, 16); got != -1 {
		t.Fatalf("Signed(0xFFFF,16) = %d, want -1", got)
	}
	if got := word.Signed(0x0001, 16); got != 1 {
		t.Fatalf("Signed(0x0001,16) = %d, want 1", got)
	}
}

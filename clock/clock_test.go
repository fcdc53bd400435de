package clock_test

import (
	"testing"

	"github.com/n2thdl/hwsim/clock"
)

type recorder struct{ ups, downs int }

func (r *recorder) ClockUp()   { r.ups++ }
func (r *recorder) ClockDown() { r.downs++ }

func TestTickCycle(t *testing.T) {
	c := clock.New(1)
	if c.Value() != -1 {
		t.Fatalf("initial value = %d, want -1", c.Value())
	}
	r := &recorder{}
	c.Tick(r) // Low -> High
	if c.HalfPhase() != clock.High {
		t.Fatalf("expected High after first tick")
	}
	if r.ups != 1 || r.downs != 0 {
		t.Fatalf("expected 1 ClockUp, got ups=%d downs=%d", r.ups, r.downs)
	}
	c.Tick(r) // High -> Low
	if c.HalfPhase() != clock.Low {
		t.Fatalf("expected Low after second tick")
	}
	if c.Value() != 0 {
		t.Fatalf("value after full cycle = %d, want 0", c.Value())
	}
	if r.downs != 1 {
		t.Fatalf("expected 1 ClockDown, got %d", r.downs)
	}
}

func TestSetRate(t *testing.T) {
	c := clock.New(10)
	if c.GetRate() != 10 {
		t.Fatalf("GetRate() = %v, want 10", c.GetRate())
	}
	c.SetRate(60)
	if c.GetRate() != 60 {
		t.Fatalf("GetRate() = %v, want 60", c.GetRate())
	}
}

func TestReset(t *testing.T) {
	c := clock.New(1)
	c.Tick()
	c.Tick()
	c.Reset()
	if c.Value() != -1 || c.HalfPhase() != clock.Low {
		t.Fatalf("Reset did not restore initial state")
	}
}

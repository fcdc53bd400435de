// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clock implements the simulator's system clock: a monotonic tick
// counter with an explicit low/high half-phase, shared by every sequential
// built-in gate in hwlib.
package clock

import (
	"sync"

	"github.com/pkg/errors"
)

// Half is one of the two phases of a clock cycle.
type Half int

const (
	// Low is the first half of a clock cycle. The Low->High transition is
	// the rising edge: sequential gates sample their inputs on it.
	Low Half = iota
	// High is the second half of a clock cycle. The High->Low transition is
	// the falling edge: sequential gates commit their sampled state on it.
	High
)

func (h Half) String() string {
	if h == High {
		return "high"
	}
	return "low"
}

// ErrClockPhaseViolation names the error for a half-phase handler invoked
// twice in a row without the opposite phase running in between. No function
// in this module returns it: Tick always alternates the phase itself, and
// Composite.ClockUp/ClockDown do not check the order they are called in.
var ErrClockPhaseViolation = errors.New("clock: half-phase handler called out of order")

// Observer is notified of clock edges. hwsim.Composite implements it; Tick
// delivers each edge to the observers passed to that call.
type Observer interface {
	ClockUp()   // rising edge: Low -> High
	ClockDown() // falling edge: High -> Low
}

// A SystemClock is a tick counter with a configurable rate and explicit
// half-phase state. The zero value has value 0, half Low and rate 0; call
// Reset on it (New does so) to reach the unstarted state, value -1 and half
// Low. Implementations should treat a process-wide instance (see
// Default) as the norm, but tests are expected to construct their own via
// New so that clock state never leaks between cases.
type SystemClock struct {
	mu    sync.Mutex
	rate  float64
	value int64
	half  Half
}

// New returns a freshly reset SystemClock ticking at rate Hz.
func New(rate float64) *SystemClock {
	c := &SystemClock{}
	c.Reset()
	c.SetRate(rate)
	return c
}

var defaultClock = New(1)

// Default returns the process-wide shared SystemClock instance. Reads and
// writes are guarded by the clock's internal mutex; rate changes and manual
// Tick calls are expected to come only from the driver/CLI.
func Default() *SystemClock { return defaultClock }

// SetRate sets the clock rate in Hz. Panics if rate is not positive.
func (c *SystemClock) SetRate(hz float64) {
	if hz <= 0 {
		panic("clock: rate must be positive")
	}
	c.mu.Lock()
	c.rate = hz
	c.mu.Unlock()
}

// GetRate returns the current rate in Hz.
func (c *SystemClock) GetRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// Value returns the current tick index. -1 means the clock has not ticked
// yet since the last Reset.
func (c *SystemClock) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// HalfPhase returns the current half-phase.
func (c *SystemClock) HalfPhase() Half {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.half
}

// Reset returns the clock to its initial state: value -1, half Low.
func (c *SystemClock) Reset() {
	c.mu.Lock()
	c.value = -1
	c.half = Low
	c.mu.Unlock()
}

// Tick advances the clock by one half-phase and invokes the matching edge
// callback on every observer. A full cycle is Low->High->Low; value is
// incremented on the High->Low transition (the end of a full cycle).
func (c *SystemClock) Tick(observers ...Observer) {
	c.mu.Lock()
	var rising bool
	if c.half == Low {
		c.half = High
		rising = true
	} else {
		c.half = Low
		c.value++
	}
	c.mu.Unlock()

	for _, o := range observers {
		if rising {
			o.ClockUp()
		} else {
			o.ClockDown()
		}
	}
}

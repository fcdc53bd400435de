// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// GateSpec is a gate's blueprint: its name, pin interface, canonical truth
// table (for combinational primitives) and the factory that mounts a fresh
// instance. It is immutable once registered.
type GateSpec struct {
	Name        string
	Description string
	Inputs      []PinSpec
	Outputs     []PinSpec
	// TruthTable is precomputed for combinational built-ins by exhaustive
	// enumeration (see BuildTruthTable); nil for sequential gates and for
	// composites that chose not to materialize one.
	TruthTable []Row
	// New mounts a fresh instance with its own private state. Never nil.
	New func() GateInstance
}

// Sequential reports whether a fresh instance of this gate responds to
// clock edges, by mounting a throwaway instance and checking it. A linked
// composite answers this the same way a built-in does: transitively, so a
// chip that wires a DFF/Register/RAM deep inside its own parts is still
// reported sequential rather than being mistaken for purely combinational.
func (g *GateSpec) Sequential() bool {
	switch inst := g.New().(type) {
	case *Instance:
		return inst.Sequential()
	case *Composite:
		return inst.Sequential()
	default:
		return false
	}
}

// UnknownGateError is returned by Registry.Get and by the linker when a
// part name resolves to neither a registered built-in nor a file the
// Loader can find.
type UnknownGateError struct {
	Name string
}

func (e *UnknownGateError) Error() string { return "unknown gate " + e.Name }

// Registry is a name -> GateSpec table. The zero value is usable; use
// NewRegistry for one pre-seeded with nothing, or hwlib.DefaultRegistry for
// the full standard library (C3's required gate set).
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*GateSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*GateSpec)}
}

// Register adds spec under spec.Name, overwriting any previous entry of the
// same name. Panics on a nil spec or an empty name, since this is always a
// programmer error at init time, never a runtime condition.
func (r *Registry) Register(spec *GateSpec) {
	if spec == nil || spec.Name == "" {
		panic("hwsim: Register requires a named GateSpec")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.specs == nil {
		r.specs = make(map[string]*GateSpec)
	}
	r.specs[spec.Name] = spec
}

// Get looks up a gate by its case-sensitive PascalCase name.
func (r *Registry) Get(name string) (*GateSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[name]
	if !ok {
		return nil, errors.WithStack(&UnknownGateError{Name: name})
	}
	return s, nil
}

// List returns every registered gate name, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.specs))
	for n := range r.specs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

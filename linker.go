// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"fmt"

	"github.com/n2thdl/hwsim/hdl"
	"github.com/pkg/errors"
)

// argBinding is one resolved part argument: the part's own pin name on one
// side, the net (or constant) it is wired to on the other.
type argBinding struct {
	partPin string
	ref     hdl.PinRef
}

// partPlan is a part instantiation after name resolution and width
// checking, but before mounting: it is shared read-only state that every
// mount of the enclosing composite reuses, since only the GateInstance
// itself (built fresh by spec.New) carries per-mount state.
type partPlan struct {
	callName string // the part's gate name, for diagnostics
	spec     *GateSpec
	inputs   []argBinding
	outputs  []argBinding
}

// Link resolves chip's parts against reg (falling back to loader for names
// reg does not know) and, if the wiring is well-formed, returns a GateSpec
// whose New method mounts fresh Composite instances of it. This is the
// counterpart to parsing: Parse turns text into an AST, Link turns an AST
// into something Evaluate can drive.
func Link(chip *hdl.Chip, reg *Registry, loader Loader) (*GateSpec, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	if loader == nil {
		loader = NoLoader{}
	}
	return linkChip(chip, reg, loader, map[string]bool{chip.Name: true})
}

func resolvePart(name string, reg *Registry, loader Loader, building map[string]bool) (*GateSpec, error) {
	if spec, err := reg.Get(name); err == nil {
		return spec, nil
	}
	if building[name] {
		return nil, errors.Errorf("chip %s: recursively defined in terms of itself", name)
	}
	chip, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	building[name] = true
	spec, err := linkChip(chip, reg, loader, building)
	delete(building, name)
	if err != nil {
		return nil, err
	}
	reg.Register(spec)
	return spec, nil
}

func linkChip(chip *hdl.Chip, reg *Registry, loader Loader, building map[string]bool) (*GateSpec, error) {
	partSpecs := make([]*GateSpec, len(chip.Parts))
	for i, call := range chip.Parts {
		spec, err := resolvePart(call.Name, reg, loader, building)
		if err != nil {
			return nil, errors.Wrapf(err, "chip %s: part %s", chip.Name, call.Name)
		}
		partSpecs[i] = spec
	}

	sizes, err := discoverNets(chip, partSpecs)
	if err != nil {
		return nil, err
	}

	plans, deps, err := bindParts(chip, partSpecs, sizes)
	if err != nil {
		return nil, err
	}

	order, ok := topoSort(deps)
	if !ok {
		return nil, combinationalLoopError(chip, deps, order)
	}

	spec := &GateSpec{
		Name:    chip.Name,
		Inputs:  chip.Inputs,
		Outputs: chip.Outputs,
	}
	spec.New = func() GateInstance {
		return newComposite(chip.Name, chip.Inputs, chip.Outputs, sizes, plans, order)
	}
	return spec, nil
}

// lookupPartPin finds name among spec's inputs or outputs, returning its
// PinSpec and whether it was found on the output side.
func lookupPartPin(spec *GateSpec, name string) (PinSpec, bool, error) {
	for _, p := range spec.Inputs {
		if p.Name == name {
			return p, false, nil
		}
	}
	for _, p := range spec.Outputs {
		if p.Name == name {
			return p, true, nil
		}
	}
	return PinSpec{}, false, &LinkError{Kind: PinNotDeclared, Part: spec.Name, Pin: name,
		Message: fmt.Sprintf("%s has no pin named %s", spec.Name, name)}
}

// discoverNets walks every part's output-side arguments to find the set of
// internal net names a chip's PARTS section creates, sizing each net to the
// widest width any part's output argument assigns to it. Chip inputs and outputs seed
// the table since they are nets too, just externally visible ones.
func discoverNets(chip *hdl.Chip, partSpecs []*GateSpec) (map[string]int, error) {
	sizes := make(map[string]int)
	for _, p := range chip.Inputs {
		sizes[p.Name] = p.Size
	}
	for _, p := range chip.Outputs {
		sizes[p.Name] = p.Size
	}
	for i, call := range chip.Parts {
		spec := partSpecs[i]
		for _, arg := range call.Arguments {
			partPin, isOutput, err := lookupPartPin(spec, arg.Name)
			if err != nil {
				return nil, linkErrAt(chip.Name, call.Name, err, arg.Pos)
			}
			if !isOutput {
				continue
			}
			ref := arg.Value
			if ref.Kind == hdl.RefConstant {
				return nil, &LinkError{Kind: PinNotDeclared, Chip: chip.Name, Part: call.Name, Pin: arg.Name,
					Pos: arg.Pos, Message: "cannot bind an output pin to a constant"}
			}
			width := ref.Width(partPin.Size)
			if cur, ok := sizes[ref.Name]; !ok || width > cur {
				sizes[ref.Name] = width
			}
		}
	}
	return sizes, nil
}

// bindParts validates every part argument's width and slice bounds against
// the net table, and records, for every combinational part, which other
// combinational parts it depends on (deps[i] must evaluate before part i).
func bindParts(chip *hdl.Chip, partSpecs []*GateSpec, sizes map[string]int) ([]*partPlan, [][]int, error) {
	plans := make([]*partPlan, len(chip.Parts))
	writers := make(map[string][]int)

	for i, call := range chip.Parts {
		spec := partSpecs[i]
		plan := &partPlan{callName: call.Name, spec: spec}
		for _, arg := range call.Arguments {
			partPin, isOutput, err := lookupPartPin(spec, arg.Name)
			if err != nil {
				return nil, nil, linkErrAt(chip.Name, call.Name, err, arg.Pos)
			}
			ref := arg.Value
			if isOutput {
				if err := checkDestWidth(chip.Name, call.Name, arg, partPin, sizes); err != nil {
					return nil, nil, err
				}
				plan.outputs = append(plan.outputs, argBinding{partPin: arg.Name, ref: ref})
				writers[ref.Name] = append(writers[ref.Name], i)
			} else {
				if err := checkSrcWidth(chip.Name, call.Name, arg, partPin, sizes); err != nil {
					return nil, nil, err
				}
				plan.inputs = append(plan.inputs, argBinding{partPin: arg.Name, ref: ref})
			}
		}
		plans[i] = plan
	}

	deps := make([][]int, len(chip.Parts))
	for i, plan := range plans {
		if plan.spec.Sequential() {
			// A sequential part always emits its latched state regardless
			// of this pass's inputs, so it never needs to wait on a writer.
			continue
		}
		for _, in := range plan.inputs {
			if in.ref.Kind == hdl.RefConstant {
				continue
			}
			for _, j := range writers[in.ref.Name] {
				if j == i || plans[j].spec.Sequential() {
					continue
				}
				deps[i] = append(deps[i], j)
			}
		}
	}
	return plans, deps, nil
}

func checkDestWidth(chipName, partName string, arg hdl.Argument, partPin PinSpec, sizes map[string]int) error {
	ref := arg.Value
	netSize := sizes[ref.Name]
	switch ref.Kind {
	case hdl.RefSlice:
		if ref.From < 0 || ref.To < ref.From || ref.To >= netSize {
			return &LinkError{Kind: SliceOutOfRange, Chip: chipName, Part: partName, Pin: ref.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("slice %s out of range for a %d-bit net", ref.String(), netSize)}
		}
		if ref.To-ref.From+1 != partPin.Size {
			return &LinkError{Kind: WidthMismatch, Chip: chipName, Part: partName, Pin: arg.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("%s is %d bits wide, %s is %d", partPin.Name, partPin.Size, ref.String(), ref.To-ref.From+1)}
		}
	default: // RefSimple
		if netSize != partPin.Size {
			return &LinkError{Kind: WidthMismatch, Chip: chipName, Part: partName, Pin: arg.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("%s is %d bits wide, %s is %d", partPin.Name, partPin.Size, ref.Name, netSize)}
		}
	}
	return nil
}

func checkSrcWidth(chipName, partName string, arg hdl.Argument, partPin PinSpec, sizes map[string]int) error {
	ref := arg.Value
	if ref.Kind == hdl.RefConstant {
		return nil // constants auto-widen to whatever the part pin needs
	}
	netSize, ok := sizes[ref.Name]
	if !ok {
		return &LinkError{Kind: PinNotDeclared, Chip: chipName, Part: partName, Pin: ref.Name, Pos: arg.Pos,
			Message: fmt.Sprintf("%s is neither a declared pin nor an assigned net", ref.Name)}
	}
	switch ref.Kind {
	case hdl.RefSlice:
		if ref.From < 0 || ref.To < ref.From || ref.To >= netSize {
			return &LinkError{Kind: SliceOutOfRange, Chip: chipName, Part: partName, Pin: ref.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("slice %s out of range for a %d-bit net", ref.String(), netSize)}
		}
		if ref.To-ref.From+1 != partPin.Size {
			return &LinkError{Kind: WidthMismatch, Chip: chipName, Part: partName, Pin: arg.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("%s is %d bits wide, %s is %d", partPin.Name, partPin.Size, ref.String(), ref.To-ref.From+1)}
		}
	default: // RefSimple
		if netSize != partPin.Size {
			return &LinkError{Kind: WidthMismatch, Chip: chipName, Part: partName, Pin: arg.Name, Pos: arg.Pos,
				Message: fmt.Sprintf("%s is %d bits wide, %s is %d", partPin.Name, partPin.Size, ref.Name, netSize)}
		}
	}
	return nil
}

func linkErrAt(chipName, partName string, err error, pos hdl.Pos) error {
	if le, ok := err.(*LinkError); ok {
		le.Chip = chipName
		le.Part = partName
		le.Pos = pos
		return le
	}
	return err
}

// topoSort runs Kahn's algorithm over deps (deps[i] lists the indices that
// must precede i). It returns the full ordering and true if one exists, or
// a partial ordering and false if a cycle remains.
func topoSort(deps [][]int) ([]int, bool) {
	n := len(deps)
	indeg := make([]int, n)
	adj := make([][]int, n)
	for i, ds := range deps {
		indeg[i] = len(ds)
		for _, j := range ds {
			adj[j] = append(adj[j], i)
		}
	}
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}
	order := make([]int, 0, n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, nb := range adj[node] {
			indeg[nb]--
			if indeg[nb] == 0 {
				queue = append(queue, nb)
			}
		}
	}
	return order, len(order) == n
}

func combinationalLoopError(chip *hdl.Chip, deps [][]int, partial []int) error {
	done := make(map[int]bool, len(partial))
	for _, i := range partial {
		done[i] = true
	}
	var stuck []string
	for i, call := range chip.Parts {
		if !done[i] {
			stuck = append(stuck, call.Name)
		}
	}
	return &LinkError{Kind: CombinationalLoop, Chip: chip.Name,
		Message: fmt.Sprintf("parts form a cycle with no sequential break: %v", stuck)}
}

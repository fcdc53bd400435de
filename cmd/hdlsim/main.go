// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hdlsim is a thin driver over the hwsim library: enough to parse,
// link, describe and drive a gate from the command line, not a full HDL
// product CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/clock"
	"github.com/n2thdl/hwsim/hdl"
	"github.com/n2thdl/hwsim/hwlib"
	"github.com/n2thdl/hwsim/word"
)

// Exit codes, per the gate/parse/link failure split the library's error
// kinds already carry.
const (
	exitOK = iota
	exitUnknownGate
	exitParseError
	exitLinkError
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		gateFlag  = flag.String("gate", "", "built-in gate name, or a path to an .hdl file")
		parseOnly = flag.Bool("parse", false, "parse -gate's .hdl file and print it back in canonical form")
		describe  = flag.Bool("describe", false, "print the gate's pin interface and description")
		list      = flag.Bool("list", false, "list every registered built-in gate")
		execData  = flag.String("exec-on-data", "", `stimulus rows, e.g. "a=1,b=0;a=0,b=1"`)
		format    = flag.String("format", "dec", "output radix for -exec-on-data: bin, hex or dec")
		doRun     = flag.Bool("run", false, "tick the clock once per row instead of evaluating combinationally")
		clockRate = flag.Float64("clock-rate", 0, "clock rate in Hz for -run (0 leaves the rate unset)")
	)
	log.SetFlags(0)
	flag.Parse()

	reg := hwlib.DefaultRegistry()

	if *list {
		for _, name := range reg.List() {
			fmt.Println(name)
		}
		return exitOK
	}

	if *gateFlag == "" {
		log.Print("hdlsim: -gate is required unless -list is given")
		return exitUnknownGate
	}

	radix, err := parseRadix(*format)
	if err != nil {
		log.Print(err)
		return exitParseError
	}

	spec, code := loadSpec(*gateFlag, reg, *parseOnly)
	if code != exitOK {
		return code
	}
	if spec == nil {
		// -parse was given and already printed the chip; nothing left to do.
		return exitOK
	}

	if *describe || *execData == "" {
		printDescribe(spec)
		return exitOK
	}

	rows, err := parseRows(*execData, spec, radix)
	if err != nil {
		log.Print(err)
		return exitParseError
	}

	results, conflicts := driveGate(spec, rows, *doRun, *clockRate)
	for _, row := range results {
		fmt.Println(formatRow(spec, row, radix))
	}
	for _, c := range conflicts {
		fmt.Fprintln(os.Stderr, c.String())
	}
	return exitOK
}

// loadSpec resolves gate as either a registered built-in name or a path to
// an .hdl file. A nil, exitOK return means -parse already handled output.
func loadSpec(gate string, reg *hwsim.Registry, parseOnly bool) (*hwsim.GateSpec, int) {
	if !strings.HasSuffix(gate, ".hdl") {
		spec, err := reg.Get(gate)
		if err != nil {
			log.Print(err)
			return nil, exitUnknownGate
		}
		return spec, exitOK
	}

	dir, file := filepath.Split(gate)
	name := strings.TrimSuffix(file, ".hdl")
	loader := hwsim.DirLoader{Dir: dir}

	chip, err := loader.Load(name)
	if err != nil {
		log.Print(err)
		return nil, exitParseError
	}
	if parseOnly {
		fmt.Print(hdl.Print(chip))
		return nil, exitOK
	}
	spec, err := hwsim.Link(chip, reg, loader)
	if err != nil {
		log.Print(err)
		return nil, exitLinkError
	}
	return spec, exitOK
}

func printDescribe(spec *hwsim.GateSpec) {
	fmt.Printf("%s\n", spec.Name)
	if spec.Description != "" {
		fmt.Printf("  %s\n", spec.Description)
	}
	fmt.Print("  inputs: ")
	fmt.Println(pinList(spec.Inputs))
	fmt.Print("  outputs: ")
	fmt.Println(pinList(spec.Outputs))
	if spec.Sequential() {
		fmt.Println("  sequential")
	} else {
		fmt.Printf("  combinational, %d truth table row(s)\n", len(spec.TruthTable))
	}
}

func pinList(pins []hwsim.PinSpec) string {
	var b strings.Builder
	for i, p := range pins {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Size > 1 {
			fmt.Fprintf(&b, "%s[%d]", p.Name, p.Size)
		} else {
			b.WriteString(p.Name)
		}
	}
	return b.String()
}

// parseRadix maps a -format flag value to the numeric base word.Parse/Format
// use.
func parseRadix(format string) (int, error) {
	switch strings.ToLower(format) {
	case "bin":
		return 2, nil
	case "hex":
		return 16, nil
	case "dec", "":
		return 10, nil
	default:
		return 0, fmt.Errorf("hdlsim: unknown -format %q, want bin, hex or dec", format)
	}
}

// parseRows parses a ";"-separated list of "pin=value,pin=value" rows, each
// value read in radix and sized to the named pin's declared width.
func parseRows(data string, spec *hwsim.GateSpec, radix int) ([]hwsim.Row, error) {
	sizes := make(map[string]int, len(spec.Inputs))
	for _, p := range spec.Inputs {
		sizes[p.Name] = p.Size
	}

	var rows []hwsim.Row
	for _, rowSrc := range strings.Split(data, ";") {
		rowSrc = strings.TrimSpace(rowSrc)
		if rowSrc == "" {
			continue
		}
		row := make(hwsim.Row)
		for _, assign := range strings.Split(rowSrc, ",") {
			name, lit, ok := strings.Cut(assign, "=")
			if !ok {
				return nil, fmt.Errorf("hdlsim: malformed assignment %q", assign)
			}
			name, lit = strings.TrimSpace(name), strings.TrimSpace(lit)
			size, ok := sizes[name]
			if !ok {
				return nil, fmt.Errorf("hdlsim: %q is not a declared input of %s", name, spec.Name)
			}
			v, err := word.Parse(lit, radix, size)
			if err != nil {
				return nil, err
			}
			row[name] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// driveGate runs rows through spec's gate, stepping a Composite through its
// own Step/Tick API when linked from HDL, or driving a bare built-in
// instance directly one row at a time.
func driveGate(spec *hwsim.GateSpec, rows []hwsim.Row, tick bool, rate float64) ([]hwsim.Row, []hwsim.Conflict) {
	inst := spec.New()
	comp, isComposite := inst.(*hwsim.Composite)
	if !isComposite {
		results := make([]hwsim.Row, len(rows))
		for i, row := range rows {
			results[i] = hwsim.DriveInstance(inst, row)
		}
		return results, nil
	}

	results := make([]hwsim.Row, len(rows))
	var conflicts []hwsim.Conflict
	if !tick {
		for i, row := range rows {
			out, rowConflicts := comp.Step(row)
			results[i] = out
			for _, c := range rowConflicts {
				c.Row = i
				conflicts = append(conflicts, c)
			}
		}
		return results, conflicts
	}

	clk := new(clock.SystemClock)
	clk.Reset()
	if rate > 0 {
		clk.SetRate(rate)
	}
	for i, row := range rows {
		comp.SetPinValues(row)
		comp.Tick(clk)
		comp.Tick(clk)
		results[i] = comp.GetPinValues()
	}
	return results, conflicts
}

// formatRow renders row's declared inputs and outputs in radix, in
// declaration order.
func formatRow(spec *hwsim.GateSpec, row hwsim.Row, radix int) string {
	var b strings.Builder
	write := func(p hwsim.PinSpec) {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%s", p.Name, word.Format(row[p.Name], radix, p.Size))
	}
	for _, p := range spec.Inputs {
		write(p)
	}
	for _, p := range spec.Outputs {
		write(p)
	}
	return b.String()
}

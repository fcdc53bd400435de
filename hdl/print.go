// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "strings"

// Print renders c back into HDL source text in a canonical layout. It is
// the counterpart to Parse: parsing Print's output always yields an AST
// structurally equal to c, modulo the comments and whitespace Print never
// emits.
func Print(c *Chip) string {
	var b strings.Builder
	b.WriteString("CHIP ")
	b.WriteString(c.Name)
	b.WriteString(" {\n")
	if len(c.Inputs) > 0 {
		b.WriteString("    IN ")
		b.WriteString(joinPins(c.Inputs))
		b.WriteString(";\n")
	}
	if len(c.Outputs) > 0 {
		b.WriteString("    OUT ")
		b.WriteString(joinPins(c.Outputs))
		b.WriteString(";\n")
	}
	if len(c.Parts) > 0 {
		b.WriteString("    PARTS:\n")
		for _, part := range c.Parts {
			b.WriteString("    ")
			b.WriteString(part.Name)
			b.WriteRune('(')
			for i, a := range part.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.Name)
				b.WriteRune('=')
				b.WriteString(a.Value.String())
			}
			b.WriteString(");\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func joinPins(pins []PinSpec) string {
	var b strings.Builder
	for i, p := range pins {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

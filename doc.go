/*
Package hwsim simulates Nand2Tetris-style Hack hardware described in HDL.

Chips are parsed from .hdl source (package hdl) into an AST, then linked
against a Registry of built-in GateSpecs (package hwlib) into a Composite:
a part graph whose Evaluate method drives values through every pin until
the graph settles, and whose ClockUp/ClockDown let sequential parts (DFF,
Register, RAM, the Hack CPU and Computer) sample and commit state across a
clock edge.

Unlike a bit-per-wire simulator, every pin here holds a single word.Word
value; a 16-bit bus is one pin of width 16, not sixteen separate wires.
This keeps the evaluator's state proportional to the number of declared
pins rather than the number of bits, at the cost of masking every write to
its pin's declared size.

Built-in gates can also be added without hand-writing a GateSpec's New
closure, via hwlib.MakePart: a Go struct whose fields are tagged `hw:"in"`
or `hw:"out"` is wrapped into a GateSpec by reflection.
*/
package hwsim

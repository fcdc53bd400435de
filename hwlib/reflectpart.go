// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/n2thdl/hwsim"
	"github.com/n2thdl/hwsim/word"
)

// Updater is implemented by a Go struct that MakePart turns into a
// combinational GateSpec: Update reads the struct's tagged input fields
// and fills its tagged output fields.
type Updater interface {
	Update()
}

var wordType = reflect.TypeOf(word.Word(0))

// MakePart builds a combinational GateSpec from an Updater struct, letting
// a caller add a Go-native primitive without hand-writing a comb/seq
// closure. Fields of type word.Word tagged `hw:"in"` or `hw:"out"` become
// pins; the pin name defaults to the lowercased field name and can be
// overridden as `hw:"in,name"`, with a bus width as `hw:"in,name,size"`
// (size defaults to 1). Untagged fields are left alone and may be used as
// private state between calls to Update; a tagged field of any type other
// than word.Word makes MakePart panic.
func MakePart(t Updater) *hwsim.GateSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("hwlib: MakePart: unsupported type %q, want struct or *struct", k))
	}

	var inputs, outputs []hwsim.PinSpec
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		if f.Type != wordType {
			panic(errors.Errorf("hwlib: MakePart: field %q tagged %q must be of type word.Word", f.Name, tag))
		}
		isInput, pin, size := parseHWTag(f.Name, tag)
		spec := hwsim.PinSpec{Name: pin, Size: size}
		if isInput {
			inputs = append(inputs, spec)
		} else {
			outputs = append(outputs, spec)
		}
	}

	return &hwsim.GateSpec{
		Name:    typ.Name(),
		Inputs:  inputs,
		Outputs: outputs,
		New: func() hwsim.GateInstance {
			p := hwsim.NewPins(inputs, outputs)
			v := reflect.New(typ)
			upd := v.Interface().(Updater)
			e := v.Elem()
			eval := func() {
				bindFields(typ, e, p, true)
				upd.Update()
				bindFields(typ, e, p, false)
			}
			return &hwsim.Instance{P: p, EvalFn: eval}
		},
	}
}

// parseHWTag decodes a `hw:"in|out[,name[,size]]"` struct tag.
func parseHWTag(fieldName, tag string) (isInput bool, pin string, size int) {
	pin, size = strings.ToLower(fieldName), 1
	parts := strings.Split(tag, ",")
	switch parts[0] {
	case "in":
		isInput = true
	case "out":
	default:
		panic(errors.Errorf("hwlib: MakePart: unsupported hw tag %q on field %q", tag, fieldName))
	}
	if len(parts) > 1 && parts[1] != "" {
		pin = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		sz, err := strconv.Atoi(parts[2])
		if err != nil {
			panic(errors.Errorf("hwlib: MakePart: invalid bus size in hw tag %q on field %q", tag, fieldName))
		}
		size = sz
	}
	return
}

// bindFields copies pin values into v's tagged fields (toStruct true, run
// before Update) or back out to p (toStruct false, run after Update).
func bindFields(typ reflect.Type, v reflect.Value, p *hwsim.Pins, toStruct bool) {
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		isInput, pin, _ := parseHWTag(f.Name, tag)
		fv := v.Field(i)
		switch {
		case toStruct && isInput:
			fv.SetUint(uint64(p.Get(pin)))
		case !toStruct && !isInput:
			p.Set(pin, word.Word(fv.Uint()))
		}
	}
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"os"
	"path/filepath"

	"github.com/n2thdl/hwsim/hdl"
	"github.com/pkg/errors"
)

// Loader resolves a part name that the Registry does not know about into
// the HDL source of a composite chip, so Link can recurse into it. This is
// the hook a user-supplied directory of .hdl files plugs into.
type Loader interface {
	Load(name string) (*hdl.Chip, error)
}

// DirLoader loads "<Dir>/<name>.hdl" files from a single directory, the
// simplest resolution strategy and the one a command-line tool needs.
type DirLoader struct {
	Dir string
}

// Load implements Loader.
func (d DirLoader) Load(name string) (*hdl.Chip, error) {
	path := filepath.Join(d.Dir, name+".hdl")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading chip %s", name)
	}
	c, err := hdl.Parse(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if c.Name != name {
		return nil, errors.Errorf("%s: chip name %q does not match file name %q", path, c.Name, name)
	}
	return c, nil
}

// NoLoader rejects every name, for callers that only ever link against a
// fixed Registry and never descend into user-authored composites.
type NoLoader struct{}

// Load implements Loader.
func (NoLoader) Load(name string) (*hdl.Chip, error) {
	return nil, &UnknownGateError{Name: name}
}

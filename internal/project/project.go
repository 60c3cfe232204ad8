// Package project derives a default session name from the enclosing Go
// module.
package project

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod is found above the start directory.
var ErrNoModule = errors.New("no go.mod found")

var majorSuffix = regexp.MustCompile(`^v[0-9]+$`)

// FindGoMod returns the path of the nearest go.mod at or above dir.
func FindGoMod(fs afero.Fs, dir string) (string, error) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, "go.mod")
		ok, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoModule
		}
		dir = parent
	}
}

// Name returns the last element of the module path declared by the nearest
// go.mod, skipping a major version suffix: "github.com/acme/shop/v2" gives
// "shop".
func Name(fs afero.Fs, dir string) (string, error) {
	gomod, err := FindGoMod(fs, dir)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(fs, gomod)
	if err != nil {
		return "", err
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("%s declares no module path", gomod)
	}

	name := path.Base(modulePath)
	if majorSuffix.MatchString(name) {
		if parent := path.Dir(modulePath); parent != "." {
			name = path.Base(parent)
		}
	}
	return name, nil
}

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigDir is returned when the configuration directory cannot be resolved or created.
	ErrConfigDir = errors.New("cannot create configuration directory")
	// ErrSettingsFile is returned when the settings file exists but cannot be read, parsed or applied.
	ErrSettingsFile = errors.New("cannot load settings file")
)

// LoadError describes a fatal startup failure. It matches both its Kind
// sentinel and the underlying cause with errors.Is.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

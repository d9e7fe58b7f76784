package environ

import (
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidKey indicates the variable name cannot be stored in an environment.
	ErrInvalidKey = errors.New("environment variable name must be non-empty and contain no '=' or NUL")
)

// Environment provides read and write access to environment variables.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// Process is the real process environment.
type Process struct{}

// Lookup returns the value of key and whether it is set.
func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set assigns value to key in the process environment.
func (Process) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return os.Setenv(key, value)
}

// Memory keeps variables in-memory and guards access with a RWMutex.
type Memory struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMemory initialises a Memory environment with a copy of the given variables.
func NewMemory(vars map[string]string) *Memory {
	m := &Memory{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// Lookup returns the value of key and whether it is set.
func (m *Memory) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[key]
	return v, ok
}

// Set validates key and stores value under it.
func (m *Memory) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
	m.mu.Unlock()

	return nil
}

// Keys returns the sorted names of all stored variables.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.vars))
	for k := range m.vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return ErrInvalidKey
	}
	return nil
}

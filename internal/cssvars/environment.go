package cssvars

import (
	"sort"
	"sync"
)

// Environment is a flat key/value styling environment safe for concurrent use.
type Environment struct {
	mu    sync.RWMutex
	order []string
	vals  map[string]string
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vals: make(map[string]string)}
}

// Replace swaps the whole environment for vars in one step.
// Keys absent from vars are removed.
func (e *Environment) Replace(vars []Var) {
	order := make([]string, 0, len(vars))
	vals := make(map[string]string, len(vars))
	for _, v := range vars {
		if _, dup := vals[v.Name]; !dup {
			order = append(order, v.Name)
		}
		vals[v.Name] = v.Value
	}

	e.mu.Lock()
	e.order = order
	e.vals = vals
	e.mu.Unlock()
}

// Get returns the value stored under name.
func (e *Environment) Get(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vals[name]
	return v, ok
}

// Len returns the number of keys.
func (e *Environment) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.vals)
}

// Keys returns the sorted key set.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.vals))
	for k := range e.vals {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the environment as a map.
func (e *Environment) Snapshot() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]string, len(e.vals))
	for k, v := range e.vals {
		out[k] = v
	}
	return out
}

// Vars returns the environment in the order it was written.
func (e *Environment) Vars() []Var {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Var, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, Var{Name: name, Value: e.vals[name]})
	}
	return out
}

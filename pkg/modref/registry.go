package modref

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNilHandle    = errors.New("nil mod handle")
	ErrEmptyName    = errors.New("mod name is empty")
	ErrDuplicateMod = errors.New("mod already registered")
)

// Handle is a loaded mod.
type Handle interface {
	Name() string
}

// Lookup finds a loaded mod by its internal name.
type Lookup interface {
	TryGetMod(name string) (Handle, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) (Handle, bool)

func (f LookupFunc) TryGetMod(name string) (Handle, bool) {
	return f(name)
}

// Registry is an in-memory Lookup.
type Registry struct {
	mods map[string]Handle
}

func NewRegistry() *Registry {
	return &Registry{mods: make(map[string]Handle)}
}

// Register adds h under its name.
func (r *Registry) Register(h Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	name := h.Name()
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := r.mods[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMod, name)
	}
	r.mods[name] = h
	return nil
}

func (r *Registry) TryGetMod(name string) (Handle, bool) {
	h, ok := r.mods[name]
	return h, ok
}

// Names returns the registered mod names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.mods))
	for name := range r.mods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package registry

import (
	"sync"
)

// Origin classifies where a module's code comes from. The scanner's
// "scan everything" mode only picks up project-origin modules, mirroring how
// an application scans its own compiled output but not third-party packages.
type Origin int

const (
	// OriginProject marks a module compiled as part of the application
	// itself. This is the default.
	OriginProject Origin = iota

	// OriginPackage marks a module that ships as a third-party or vendored
	// package. Package-origin modules are skipped by suffix-less scans and
	// only resolved when requested by name.
	OriginPackage
)

// String returns the human-readable name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginProject:
		return "project"
	case OriginPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Module is a named, ordered collection of implementation descriptors.
// It is the unit of resolution: the scanner asks the module source for
// modules, then walks each module's descriptors in declaration order.
type Module struct {
	name        string
	origin      Origin
	descriptors []Descriptor
}

// ModuleOption configures a Module during construction.
type ModuleOption func(*Module)

// WithOrigin sets the module origin. The default is OriginProject.
func WithOrigin(o Origin) ModuleOption {
	return func(m *Module) {
		m.origin = o
	}
}

// NewModule creates an empty module with the given name.
func NewModule(name string, opts ...ModuleOption) *Module {
	m := &Module{name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Origin returns the module origin.
func (m *Module) Origin() Origin { return m.origin }

// Add appends a descriptor and returns the module for chaining.
func (m *Module) Add(d Descriptor) *Module {
	m.descriptors = append(m.descriptors, d)
	return m
}

// Describe builds a descriptor (see Describe) and appends it in one step.
func (m *Module) Describe(impl any, mk Marker, ifaces ...any) error {
	d, err := Describe(impl, mk, ifaces...)
	if err != nil {
		return err
	}
	m.Add(d)
	return nil
}

// MustDescribe is like Describe but panics on error. Intended for init-time
// declarations.
func (m *Module) MustDescribe(impl any, mk Marker, ifaces ...any) *Module {
	if err := m.Describe(impl, mk, ifaces...); err != nil {
		panic(err)
	}
	return m
}

// Descriptors returns a copy of the descriptor list in declaration order.
func (m *Module) Descriptors() []Descriptor {
	out := make([]Descriptor, len(m.descriptors))
	copy(out, m.descriptors)
	return out
}

//
// -----------------------------------------------------------------------------
// Global module registry
// -----------------------------------------------------------------------------
//

// The global registry is written from init functions, both the application's
// own and those run by plugin loading, so access is guarded even though a
// registration pass itself is single-threaded.

var global = struct {
	mu      sync.RWMutex
	byName  map[string]*Module
	ordered []*Module
}{
	byName: make(map[string]*Module),
}

// Install adds a module to the global registry. Installing two modules with
// the same name is a configuration mistake and fails with
// DuplicateModuleError.
func Install(m *Module) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.byName[m.name]; exists {
		return &DuplicateModuleError{Name: m.name}
	}
	global.byName[m.name] = m
	global.ordered = append(global.ordered, m)
	return nil
}

// MustInstall is like Install but panics on error. Intended for init-time
// declarations.
func MustInstall(m *Module) {
	if err := Install(m); err != nil {
		panic(err)
	}
}

// Lookup returns the installed module with the given name.
func Lookup(name string) (*Module, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()

	m, ok := global.byName[name]
	return m, ok
}

// Project returns all installed project-origin modules in install order.
// Package-origin modules are excluded.
func Project() []*Module {
	global.mu.RLock()
	defer global.mu.RUnlock()

	out := make([]*Module, 0, len(global.ordered))
	for _, m := range global.ordered {
		if m.origin == OriginProject {
			out = append(out, m)
		}
	}
	return out
}

// Reset clears the global registry. Test use only.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.byName = make(map[string]*Module)
	global.ordered = nil
}

package scan

import (
	"log/slog"
	"reflect"
	"strings"
	"unicode"

	"github.com/sghaida/scanreg/modsrc"
	"github.com/sghaida/scanreg/registry"
)

// Scanner runs registration passes. The zero configuration resolves modules
// through a default modsrc.PluginSource and logs one line per binding via
// slog.Default.
type Scanner struct {
	src modsrc.Source
	log *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSource overrides the module source. Tests and embedders typically pass
// a fixed-list source here.
func WithSource(src modsrc.Source) Option {
	return func(s *Scanner) {
		s.src = src
	}
}

// WithLogger overrides the logger used for the per-registration diagnostic
// line.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// NewScanner creates a Scanner.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = modsrc.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Register is the entry operation of a registration pass.
//
// It resolves the given module names through the Scanner's source (zero names
// resolves every project-origin module), then registers every marked,
// auto-registrable implementation type into sink.
//
// suffix filters auto-discovered interface contracts: when non-empty, only
// interfaces whose simple name ends with suffix (case-insensitively, after
// trimming trailing whitespace from suffix) become contracts. An empty suffix
// means no filter was supplied.
//
// The pass is fail-fast: the first configuration or load error is returned
// and stops all further registration. Bindings emitted before the failure
// remain in the sink.
func (s *Scanner) Register(sink Sink, suffix string, modules ...string) error {
	if sink == nil {
		return ErrNilSink
	}

	mods, err := s.src.Resolve(modules)
	if err != nil {
		return err
	}

	for _, m := range mods {
		for _, d := range m.Descriptors() {
			if err := s.registerType(sink, d, suffix); err != nil {
				return err
			}
		}
	}
	return nil
}

// Register runs a registration pass with a default Scanner.
func Register(sink Sink, suffix string, modules ...string) error {
	return NewScanner().Register(sink, suffix, modules...)
}

// registerType emits the bindings for one descriptor, or nothing at all when
// its contract declaration is invalid.
func (s *Scanner) registerType(sink Sink, d registry.Descriptor, suffix string) error {
	if !d.Marker.AutoRegister() {
		return nil
	}

	contracts, err := contractSet(d, suffix)
	if err != nil {
		return err
	}

	for _, contract := range contracts {
		s.bind(sink, contract, d)
	}

	if d.Marker.RegisterSelf() && !containsType(contracts, d.Type) {
		s.bind(sink, d.Type, d)
	}
	return nil
}

// contractSet computes the contract set for one descriptor. The result is a
// set (duplicates collapse); the slice keeps declaration order only so that
// emission is deterministic.
func contractSet(d registry.Descriptor, suffix string) ([]reflect.Type, error) {
	if explicit := d.Marker.Contracts(); len(explicit) > 0 {
		set := make([]reflect.Type, 0, len(explicit))
		for _, contract := range explicit {
			if !d.Implements(contract) {
				return nil, &ContractMismatchError{Impl: d.Type, Contract: contract}
			}
			if !containsType(set, contract) {
				set = append(set, contract)
			}
		}
		return set, nil
	}

	supplied := suffix != ""
	want := strings.ToLower(strings.TrimRightFunc(suffix, unicode.IsSpace))

	set := make([]reflect.Type, 0, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		if supplied && !strings.HasSuffix(strings.ToLower(iface.Name()), want) {
			continue
		}
		if !containsType(set, iface) {
			set = append(set, iface)
		}
	}

	// Fallback-to-self only applies when no suffix was supplied at all. A
	// suffix that filtered every interface out leaves the set empty.
	if len(set) == 0 && !supplied {
		set = append(set, d.Type)
	}
	return set, nil
}

// bind dispatches one binding to the sink method matching the marker's
// lifetime. Unknown lifetime values fall back to transient.
func (s *Scanner) bind(sink Sink, contract reflect.Type, d registry.Descriptor) {
	lifetime := d.Marker.Lifetime()

	switch lifetime {
	case registry.Singleton:
		sink.RegisterSingleton(contract, d.Type)
	case registry.Scoped:
		sink.RegisterScoped(contract, d.Type)
	default:
		sink.RegisterTransient(contract, d.Type)
		lifetime = registry.Transient
	}

	s.log.Info("registered service",
		"lifetime", lifetime.String(),
		"contract", shortName(contract),
		"implementation", shortName(d.Type),
	)
}

// containsType reports whether types contains t (identity comparison).
func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// shortName is the type name without package qualifier, with pointer
// indirection stripped: *mailer.SMTPMailer reads as SMTPMailer.
func shortName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

package registry

import "reflect"

// Marker is the declarative registration policy for one implementation type.
//
// A Marker carries:
//   - the lifetime the container should apply (default Transient)
//   - whether the type participates in scanning at all (default yes;
//     WithoutAutoRegister opts the type out without removing the declaration)
//   - whether the type is additionally registered as its own contract when it
//     also has interface contracts (default no)
//   - an optional explicit contract list; when present it is authoritative
//     and interface auto-discovery is bypassed
//
// Markers are immutable after construction. The zero Marker is valid and
// means: transient, auto-registered, no self-registration, no explicit
// contracts.
type Marker struct {
	lifetime     Lifetime
	optOut       bool
	registerSelf bool
	contracts    []reflect.Type

	// refErr records the first invalid contract reference passed to
	// WithContracts. It is surfaced by Describe, not here, so that option
	// application stays infallible.
	refErr error
}

// MarkerOption configures a Marker during construction.
type MarkerOption func(*Marker)

// NewMarker builds a Marker from the given options.
func NewMarker(opts ...MarkerOption) Marker {
	var m Marker
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithLifetime sets the lifetime the container should apply. The default is
// Transient.
func WithLifetime(l Lifetime) MarkerOption {
	return func(m *Marker) {
		m.lifetime = l
	}
}

// WithoutAutoRegister opts the marked type out of scanning. The declaration
// stays in place; the scanner skips the type without emitting bindings or
// errors.
func WithoutAutoRegister() MarkerOption {
	return func(m *Marker) {
		m.optOut = true
	}
}

// WithRegisterSelf additionally registers the implementation type as its own
// contract, unless the computed contract set already contains it.
func WithRegisterSelf() MarkerOption {
	return func(m *Marker) {
		m.registerSelf = true
	}
}

// WithContracts declares the explicit contract list. Each reference is either
// a nil interface pointer, e.g. (*EmailSender)(nil), or a value or pointer of
// the implementation type itself. The list is ordered and fixed at
// construction; duplicates collapse during resolution.
//
// An invalid reference is not reported here. It is recorded on the Marker and
// surfaced as an error by Describe, so a bad declaration fails loudly before
// anything is registered.
func WithContracts(refs ...any) MarkerOption {
	return func(m *Marker) {
		contracts := make([]reflect.Type, 0, len(refs))
		for i, ref := range refs {
			t, err := contractType(ref)
			if err != nil {
				m.refErr = &InvalidContractRefError{Index: i, Cause: err}
				return
			}
			contracts = append(contracts, t)
		}
		m.contracts = contracts
	}
}

// Lifetime returns the lifetime the container should apply.
func (m Marker) Lifetime() Lifetime { return m.lifetime }

// AutoRegister reports whether the marked type participates in scanning.
func (m Marker) AutoRegister() bool { return !m.optOut }

// RegisterSelf reports whether the implementation type is additionally
// registered as its own contract.
func (m Marker) RegisterSelf() bool { return m.registerSelf }

// Contracts returns a copy of the explicit contract list. Empty means
// interface auto-discovery applies.
func (m Marker) Contracts() []reflect.Type {
	if len(m.contracts) == 0 {
		return nil
	}
	out := make([]reflect.Type, len(m.contracts))
	copy(out, m.contracts)
	return out
}

// contractType resolves a contract reference to the reflect.Type it names.
//
// A nil interface pointer yields the interface type; any other non-nil value
// yields its own type (covering self-contracts expressed as (*Foo)(nil) or
// Foo{}).
func contractType(ref any) (reflect.Type, error) {
	t := reflect.TypeOf(ref)
	if t == nil {
		return nil, ErrNilContractRef
	}
	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Interface {
		return t.Elem(), nil
	}
	return t, nil
}

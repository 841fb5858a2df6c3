package registry

import "reflect"

// Descriptor is one implementation type candidate for registration: the
// concrete type, the interface set it declares, and its Marker.
type Descriptor struct {
	// Type is the concrete implementation type, usually a pointer to struct.
	Type reflect.Type

	// Interfaces is the declared interface set, possibly empty. Every entry
	// is an interface type the implementation is known to satisfy; Describe
	// enforces this.
	Interfaces []reflect.Type

	// Marker is the registration policy attached to the type.
	Marker Marker
}

// Describe builds a Descriptor for impl.
//
// impl is a value (or pointer) of the implementation type; its dynamic type
// becomes Descriptor.Type. Each entry of ifaces is a nil interface pointer
// naming one declared interface, e.g.:
//
//	registry.Describe(&SMTPMailer{}, m, (*EmailSender)(nil), (*Notifier)(nil))
//
// Describe fails when impl is nil, when an interface reference is malformed,
// when the implementation does not satisfy a declared interface, or when the
// Marker was built with an invalid explicit contract reference.
func Describe(impl any, m Marker, ifaces ...any) (Descriptor, error) {
	if impl == nil {
		return Descriptor{}, ErrNilImplementation
	}
	if m.refErr != nil {
		return Descriptor{}, m.refErr
	}

	implType := reflect.TypeOf(impl)

	declared := make([]reflect.Type, 0, len(ifaces))
	for i, ref := range ifaces {
		t := reflect.TypeOf(ref)
		if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Interface {
			got := "untyped nil"
			if t != nil {
				got = t.String()
			}
			return Descriptor{}, &InvalidInterfaceRefError{Index: i, Got: got}
		}
		ifaceType := t.Elem()
		if !implType.Implements(ifaceType) {
			return Descriptor{}, &UnimplementedInterfaceError{
				Impl:  implType.String(),
				Iface: ifaceType.String(),
			}
		}
		declared = append(declared, ifaceType)
	}

	return Descriptor{Type: implType, Interfaces: declared, Marker: m}, nil
}

// MustDescribe is like Describe but panics on error. Intended for init-time
// declarations where a bad marker is a programming mistake.
func MustDescribe(impl any, m Marker, ifaces ...any) Descriptor {
	d, err := Describe(impl, m, ifaces...)
	if err != nil {
		panic(err)
	}
	return d
}

// Implements reports whether t is one of the descriptor's declared
// interfaces or the implementation type itself.
func (d Descriptor) Implements(t reflect.Type) bool {
	if t == d.Type {
		return true
	}
	for _, iface := range d.Interfaces {
		if iface == t {
			return true
		}
	}
	return false
}

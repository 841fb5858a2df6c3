// Package registry holds the declarative side of scanreg: markers, the
// implementation descriptors they are attached to, and the process-global
// module registry the scanner reads from.
//
// A Marker is the data holder for one implementation type's registration
// policy: lifetime, opt-out flag, self-registration flag, and an optional
// explicit contract list. Markers are immutable after construction; build one
// with NewMarker and functional options:
//
//	m := registry.NewMarker(
//	    registry.WithLifetime(registry.Scoped),
//	    registry.WithRegisterSelf(),
//	)
//
// A Descriptor pairs a concrete implementation type with its declared
// interface set and its Marker. Go cannot enumerate the interfaces a type
// satisfies, so the declaration carries them explicitly using the nil
// interface pointer idiom:
//
//	desc := registry.MustDescribe(&SMTPMailer{}, m, (*EmailSender)(nil))
//
// Descriptors are grouped into named Modules, and Modules are installed into
// the global registry, typically from an init function written by hand or
// generated by cmd/scangen. Project-origin modules participate in suffix-less
// scans; modules installed with WithOrigin(OriginPackage) model third-party
// code and are only scanned when requested by name.
package registry

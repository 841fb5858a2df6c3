// Package scanreg provides declarative, marker-driven service registration
// for Go dependency-injection containers.
//
// Instead of listing every implementation type and its lifetime by hand at the
// composition root, each module declares its implementations once (a marker
// per concrete type carrying a lifetime, an optional explicit contract list,
// and a self-registration flag) and the scanner turns those declarations into
// container bindings.
//
// The repository is split into three packages:
//
//   - registry: the marker data holder, implementation descriptors, and the
//     process-global module registry descriptors are installed into
//     (usually from an init function, hand-written or generated).
//
//   - modsrc: the module source. Resolves the set of modules to scan, either
//     from the registry (all project-origin modules) or by loading named
//     plugin images from disk.
//
//   - scan: the registration resolver. Computes the contract set for every
//     marked type and emits (contract, implementation, lifetime) bindings
//     into a container-agnostic Sink.
//
// cmd/scangen generates the init-time registration code from //scanreg:register
// directives, so declarations stay next to the types they describe.
//
// Wiring stays explicit: the scanner never owns the container, it only feeds
// bindings into whatever Sink the caller passes in.
//
// Start with examples/basic for the library surface and examples/webapp for an
// end-to-end HTTP application.
package scanreg

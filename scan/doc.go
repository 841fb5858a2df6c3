// Package scan implements the registration resolver: it walks the marked
// implementation types of a set of modules, computes the contract set for
// each, and emits (contract, implementation, lifetime) bindings into a
// container-agnostic Sink.
//
// The entry point is Register:
//
//	err := scan.Register(container, "Service", "billing", "mailer")
//
// which resolves the named modules (all project-origin modules when no names
// are given), skips types marked WithoutAutoRegister, and for every other
// marked type either validates its explicit contract list or auto-discovers
// contracts from its declared interfaces, optionally filtered by the
// interface-name suffix.
//
// Contract set rules, in order:
//
//  1. A non-empty explicit contract list is authoritative. Every entry must
//     be the implementation type itself or one of its declared interfaces;
//     anything else fails the whole pass with a ContractMismatchError before
//     any binding for that type is emitted.
//
//  2. Otherwise the declared interface set applies. A supplied suffix keeps
//     only interfaces whose simple name ends with it, case-insensitively.
//
//  3. A type left with no contracts falls back to registering itself, but
//     only when no suffix was supplied. When a suffix filtered everything
//     out the type legitimately ends up with zero interface contracts. This
//     asymmetry is intentional; WithRegisterSelf still applies either way.
//
// Resolution is fail-fast with no rollback: the first error stops the pass,
// and bindings already emitted to the Sink stay emitted. Callers that need
// all-or-nothing behavior should stage bindings in a buffering Sink.
package scan

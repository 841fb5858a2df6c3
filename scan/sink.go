package scan

import "reflect"

// Sink receives the bindings a registration pass produces. It is implemented
// by (or adapted onto) the caller's DI container; the scanner never resolves
// anything, it only registers.
//
// Each method appends one binding from contract type to implementation type
// with the named lifetime. Override semantics for repeated contracts are the
// container's own concern; the scanner does not deduplicate across modules or
// passes.
type Sink interface {
	RegisterSingleton(contract, impl reflect.Type)
	RegisterScoped(contract, impl reflect.Type)
	RegisterTransient(contract, impl reflect.Type)
}

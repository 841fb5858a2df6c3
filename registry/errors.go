package registry

import (
	"errors"
	"strconv"
)

var (
	// ErrNilImplementation is returned when Describe is called with a nil
	// implementation value.
	ErrNilImplementation = errors.New("registry: nil implementation")

	// ErrNilContractRef is returned when a contract reference is an untyped
	// nil. Use a nil interface pointer such as (*EmailSender)(nil) instead.
	ErrNilContractRef = errors.New("registry: contract reference is untyped nil")
)

// InvalidContractRefError reports a contract reference that could not be
// resolved to a type. Index is the position inside the WithContracts list.
type InvalidContractRefError struct {
	Index int
	Cause error
}

// Error implements the error interface.
func (e *InvalidContractRefError) Error() string {
	// Example: registry: invalid contract reference at index 1: registry: contract reference is untyped nil
	return "registry: invalid contract reference at index " + strconv.Itoa(e.Index) + ": " + e.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *InvalidContractRefError) Unwrap() error { return e.Cause }

// InvalidInterfaceRefError reports a declared-interface reference that is not
// a nil interface pointer.
type InvalidInterfaceRefError struct {
	Index int
	Got   string
}

// Error implements the error interface.
func (e *InvalidInterfaceRefError) Error() string {
	// Example: registry: declared interface at index 0 must be a nil interface pointer, got *mailer.SMTPMailer
	return "registry: declared interface at index " + strconv.Itoa(e.Index) +
		" must be a nil interface pointer, got " + e.Got
}

// UnimplementedInterfaceError reports a declared interface the implementation
// type does not actually satisfy.
type UnimplementedInterfaceError struct {
	Impl  string
	Iface string
}

// Error implements the error interface.
func (e *UnimplementedInterfaceError) Error() string {
	// Example: registry: *mailer.SMTPMailer does not implement mailer.Notifier
	return "registry: " + e.Impl + " does not implement " + e.Iface
}

// DuplicateModuleError is returned by Install when a module with the same
// name is already installed.
type DuplicateModuleError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateModuleError) Error() string {
	// Example: registry: module "billing" already installed
	return "registry: module " + strconv.Quote(e.Name) + " already installed"
}

package modsrc

import (
	"errors"
	"strconv"
)

var (
	// ErrNotSharedObject is the cause recorded on a BadImageError when the
	// file exists but does not carry a shared-object (ELF) header.
	ErrNotSharedObject = errors.New("modsrc: not a shared object image")

	// ErrNotInstalled is the cause recorded on a LoadError when a plugin
	// image loads successfully but never installs a module under its own
	// name.
	ErrNotInstalled = errors.New("modsrc: plugin did not install a module")
)

// NotFoundError reports a requested module name that did not resolve to an
// existing file. Path is the full computed path that was checked.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	// Example: modsrc: module image "/app/billing.so" not found
	return "modsrc: module image " + strconv.Quote(e.Path) + " not found"
}

// BadImageError reports a resolved file that is not a valid loadable module
// image.
type BadImageError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *BadImageError) Error() string {
	// Example: modsrc: bad module image "/app/billing.so": modsrc: not a shared object image
	return "modsrc: bad module image " + strconv.Quote(e.Path) + ": " + e.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *BadImageError) Unwrap() error { return e.Cause }

// LoadError reports any other failure while loading a named module.
type LoadError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	// Example: modsrc: loading module "billing": plugin.Open: ...
	return "modsrc: loading module " + strconv.Quote(e.Name) + ": " + e.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *LoadError) Unwrap() error { return e.Cause }

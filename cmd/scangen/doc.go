// Command scangen generates init-time module registration from directives in
// Go source.
//
// Go cannot discover marked types at runtime the way attribute-scanning
// runtimes do, so the marker lives in a comment directive next to the type
// and scangen turns it into the registry declarations the scanner consumes.
//
// Usage
//
// Annotate concrete types in one package:
//
//	//scanreg:register lifetime=scoped implements=EmailSender,Notifier
//	type SMTPMailer struct{ ... }
//
//	//scanreg:register self
//	type Clock struct{}
//
// and add a go:generate directive anywhere in the package:
//
//	//go:generate go run github.com/sghaida/scanreg/cmd/scangen -dir . -out scanreg.gen.go
//
// Running go generate produces a single file containing one init function
// that builds a module (named after the package unless -module overrides it),
// describes every annotated type, and installs the module into the global
// registry.
//
// Directive grammar
//
// Tokens after //scanreg:register, whitespace-separated:
//
//	lifetime=transient|scoped|singleton   container lifetime (default transient)
//	self                                  also register the type as its own contract
//	skip                                  keep the declaration but opt out of scanning
//	implements=A,B                        declared interface set (in-package names)
//	contracts=A,B                         explicit contract list; each entry must
//	                                      re-appear in implements or name the type itself
//
// Unknown keys fail generation. The contracts/implements consistency check
// mirrors the resolver's own contract-mismatch validation, so a declaration
// that would fail at registration time fails at generation time instead.
//
// Flags
//
//	-dir     package directory to scan (default ".")
//	-out     output file (default <dir>/scanreg.gen.go)
//	-module  module name (default: the package name)
//	-origin  project|package (default project)
package main

// Package modsrc resolves the set of modules a registration pass scans.
//
// The Source interface is the seam between the scanner and module discovery:
//
//	type Source interface {
//	    Resolve(names []string) ([]*registry.Module, error)
//	}
//
// PluginSource is the default implementation. With zero names it returns
// every project-origin module installed in the registry, which is the Go
// analogue of scanning the running process's own compiled output. With one or
// more names it resolves each name to a plugin image under the application's
// base directory (appending ".so" when the name has no extension), verifies
// the file exists and is a shared-object image, loads it with the plugin
// package, and expects the image's init functions to install a module under
// the extension-less name.
//
// Resolution is fail-fast: the first name that cannot be resolved aborts the
// whole call with no partial result.
package modsrc

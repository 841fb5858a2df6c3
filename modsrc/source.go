package modsrc

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	"github.com/sghaida/scanreg/registry"
)

// Source resolves module names to installed modules. Zero names means "every
// module the application itself contributes"; one or more names means
// "exactly these, loading from disk where necessary".
type Source interface {
	Resolve(names []string) ([]*registry.Module, error)
}

// pluginExt is the standard extension appended to extension-less module
// names before looking on disk.
const pluginExt = ".so"

// elfMagic is the shared-object header every loadable plugin image starts
// with on supported platforms.
var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// PluginSource is the default Source. Named modules resolve against a base
// directory (the running executable's directory unless overridden) and are
// loaded as Go plugins.
type PluginSource struct {
	baseDir string
}

// Option configures a PluginSource.
type Option func(*PluginSource)

// WithBaseDir overrides the directory module images are resolved against.
// The default is the directory of the running executable.
func WithBaseDir(dir string) Option {
	return func(s *PluginSource) {
		s.baseDir = dir
	}
}

// New creates a PluginSource.
func New(opts ...Option) *PluginSource {
	s := &PluginSource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve implements Source.
//
// The first name that fails aborts the whole call; there is no partial
// result.
func (s *PluginSource) Resolve(names []string) ([]*registry.Module, error) {
	if len(names) == 0 {
		return registry.Project(), nil
	}

	modules := make([]*registry.Module, 0, len(names))
	for _, name := range names {
		m, err := s.load(name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// load resolves a single named module.
//
// A module that is already installed (compiled into the binary, or loaded by
// an earlier pass) is returned as-is: plugin images cannot be opened twice,
// and the registry is the source of truth either way.
func (s *PluginSource) load(name string) (*registry.Module, error) {
	modName := moduleName(name)
	if m, ok := registry.Lookup(modName); ok {
		return m, nil
	}

	dir, err := s.dir()
	if err != nil {
		return nil, &LoadError{Name: name, Cause: err}
	}

	file := name
	if filepath.Ext(file) == "" {
		file += pluginExt
	}
	path := filepath.Join(dir, file)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &LoadError{Name: name, Cause: err}
	}

	if err := verifyImage(path); err != nil {
		return nil, err
	}

	if _, err := plugin.Open(path); err != nil {
		return nil, &LoadError{Name: name, Cause: err}
	}

	m, ok := registry.Lookup(modName)
	if !ok {
		return nil, &LoadError{Name: name, Cause: ErrNotInstalled}
	}
	return m, nil
}

// dir returns the base directory, defaulting to the executable's directory.
func (s *PluginSource) dir() (string, error) {
	if s.baseDir != "" {
		return s.baseDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// verifyImage checks the file header before handing the path to plugin.Open,
// so "this is not a module image at all" is distinguishable from other load
// failures.
func verifyImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Name: moduleName(filepath.Base(path)), Cause: err}
	}
	defer func() { _ = f.Close() }()

	var header [4]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return &BadImageError{Path: path, Cause: err}
	}
	if !bytes.Equal(header[:], elfMagic) {
		return &BadImageError{Path: path, Cause: ErrNotSharedObject}
	}
	return nil
}

// moduleName strips the plugin extension from a requested name, yielding the
// registry key the module is expected to install itself under.
func moduleName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

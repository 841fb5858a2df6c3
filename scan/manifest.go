package scan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk description of a registration pass: the interface
// suffix filter and the module names to scan. It is the build-time companion
// to calling Register directly:
//
//	suffix: Service
//	modules:
//	  - billing
//	  - mailer.so
//
// An empty modules list scans every project-origin module, exactly like
// calling Register with no names.
type Manifest struct {
	Suffix  string   `yaml:"suffix"`
	Modules []string `yaml:"modules"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("scan: reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("scan: parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// RegisterManifest loads the manifest at path and runs the registration pass
// it describes.
func (s *Scanner) RegisterManifest(sink Sink, path string) error {
	m, err := LoadManifest(path)
	if err != nil {
		return err
	}
	return s.Register(sink, m.Suffix, m.Modules...)
}

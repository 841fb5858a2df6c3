package scan_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/scanreg/registry"
	"github.com/sghaida/scanreg/scan"
)

// writeManifest writes a manifest file under a temp dir and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scanreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

//
// -----------------------------------------------------------------------------
// LoadManifest
// -----------------------------------------------------------------------------

// TestLoadManifest_Valid verifies suffix and module list round-trip.
func TestLoadManifest_Valid(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "suffix: Service\nmodules:\n  - billing\n  - mailer.so\n")

	m, err := scan.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "Service", m.Suffix)
	assert.Equal(t, []string{"billing", "mailer.so"}, m.Modules)
}

// TestLoadManifest_Empty verifies an empty document yields the zero manifest,
// meaning "scan everything, no filter".
func TestLoadManifest_Empty(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "")

	m, err := scan.LoadManifest(path)
	require.NoError(t, err)
	assert.Empty(t, m.Suffix)
	assert.Empty(t, m.Modules)
}

// TestLoadManifest_Missing verifies a missing file is a wrapped error.
func TestLoadManifest_Missing(t *testing.T) {
	t.Parallel()

	_, err := scan.LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading manifest")
}

// TestLoadManifest_Malformed verifies broken YAML fails with the path in the
// message.
func TestLoadManifest_Malformed(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "modules: [unterminated\n")

	_, err := scan.LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
	assert.Contains(t, err.Error(), path)
}

//
// -----------------------------------------------------------------------------
// RegisterManifest
// -----------------------------------------------------------------------------

// TestRegisterManifest_AppliesSuffix verifies the manifest drives a full pass
// with its suffix applied.
func TestRegisterManifest_AppliesSuffix(t *testing.T) {
	t.Parallel()

	d := registry.MustDescribe(&AccountService{}, registry.NewMarker(),
		(*EmailService)(nil), (*UserManager)(nil),
	)

	path := writeManifest(t, "suffix: Service\n")

	sink := &recordingSink{}
	require.NoError(t, newScanner(appModule(d)).RegisterManifest(sink, path))

	require.Len(t, sink.bindings, 1)
	assert.Equal(t, ifaceOf[EmailService](), sink.bindings[0].contract)
}

// TestRegisterManifest_LoadErrorStopsPass verifies nothing registers when the
// manifest cannot be loaded.
func TestRegisterManifest_LoadErrorStopsPass(t *testing.T) {
	t.Parallel()

	s := scan.NewScanner(
		scan.WithSource(fixedSource{}),
		scan.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	sink := &recordingSink{}
	err := s.RegisterManifest(sink, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Empty(t, sink.bindings)
}

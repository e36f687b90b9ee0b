package worldbackend_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-mclib/mcserver/worldbackend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worlds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifestEmptyPathIsValid(t *testing.T) {
	manifest, err := worldbackend.LoadManifest("")
	require.NoError(t, err)
	backend := worldbackend.New(manifest)
	assert.Equal(t, "", backend.DefaultDimension())
	assert.Empty(t, backend.Dimensions())
}

func TestLoadManifestValid(t *testing.T) {
	path := writeManifest(t, `
config:
  default_dimension: overworld
worlds:
  world:
    seed: 12345
dimensions:
  overworld:
    worlds: [world]
`)

	manifest, err := worldbackend.LoadManifest(path)
	require.NoError(t, err)

	backend := worldbackend.New(manifest)
	assert.Equal(t, "overworld", backend.DefaultDimension())

	dims := backend.Dimensions()
	sort.Strings(dims)
	assert.Equal(t, []string{"overworld"}, dims)
}

func TestLoadManifestRejectsUndeclaredDefaultDimension(t *testing.T) {
	path := writeManifest(t, `
config:
  default_dimension: nether
worlds: {}
dimensions: {}
`)

	_, err := worldbackend.LoadManifest(path)
	assert.Error(t, err)
}

func TestLoadManifestRejectsUndeclaredWorldReference(t *testing.T) {
	path := writeManifest(t, `
config:
  default_dimension: overworld
worlds: {}
dimensions:
  overworld:
    worlds: [missing_world]
`)

	_, err := worldbackend.LoadManifest(path)
	assert.Error(t, err)
}

package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), p)
}

func TestLoadFromInvalidFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, Default(), p)
}

func TestSaveToLoadFromRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "engine.yaml")

	want := Default()
	want.WindowWidth = 1920
	want.ShowFPS = true
	want.SphereRadius = 2.5
	want.ModelURL = "https://example.com/model.glb"

	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDefaultBoundsAreSymmetric(t *testing.T) {
	p := Default()
	require.Equal(t, -p.BoundMax, p.BoundMin)
	require.Positive(t, p.SphereRadius)
}

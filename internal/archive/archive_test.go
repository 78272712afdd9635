package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeZip builds a zip at path with the given name→content entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range entries {
		e, err := w.Create(name)
		require.NoError(t, err)
		_, err = e.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestUnzip(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "bundle.zip")
	writeZip(t, zipPath, map[string]string{
		"model.glb":            "glb-bytes",
		"textures/diffuse.png": "png-bytes",
	})

	dest := filepath.Join(dir, "out")
	files, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	require.Len(t, files, 2)

	data, err := os.ReadFile(filepath.Join(dest, "model.glb"))
	require.NoError(t, err)
	require.Equal(t, "glb-bytes", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "textures", "diffuse.png"))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestUnzipSkipsPathEscape(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "evil.zip")
	writeZip(t, zipPath, map[string]string{
		"../escape.txt": "nope",
		"ok.txt":        "fine",
	})

	dest := filepath.Join(dir, "out")
	files, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(dest, "ok.txt"), files[0])
	require.NoFileExists(t, filepath.Join(dir, "escape.txt"))
}

func TestUnzipMissingFile(t *testing.T) {
	_, err := Unzip(filepath.Join(t.TempDir(), "missing.zip"), t.TempDir())
	require.Error(t, err)
}

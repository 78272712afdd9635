package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloadSavesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("glb-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	saved, err := Download(srv.URL+"/demo", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "demo.glb"), saved)

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, "glb-bytes", string(data))
}

func TestDownloadKeepsURLExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("zip-bytes"))
	}))
	defer srv.Close()

	saved, err := Download(srv.URL+"/bundle.zip", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "bundle.zip", filepath.Base(saved))
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Download(srv.URL+"/missing.glb", t.TempDir())
	require.ErrorContains(t, err, "HTTP 404")
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "a_b_c.glb", sanitizeFilename("a b/c.glb"))
	require.Equal(t, "download", sanitizeFilename(""))
}

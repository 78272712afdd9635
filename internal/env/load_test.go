package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nCOLLISION_LAB_TEST_URL = \"https://example.com/m.glb\"\nCOLLISION_LAB_TEST_PLAIN=value\nnot-a-pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("COLLISION_LAB_TEST_URL", "")
	t.Setenv("COLLISION_LAB_TEST_PLAIN", "")

	require.NoError(t, Load(path))
	require.Equal(t, "https://example.com/m.glb", os.Getenv("COLLISION_LAB_TEST_URL"))
	require.Equal(t, "value", os.Getenv("COLLISION_LAB_TEST_PLAIN"))
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

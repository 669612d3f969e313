package component

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupComponents creates dir/src/components/ui and populates it.
// Entries ending with "/" are created as directories containing an index file,
// all other entries are created as empty files.
func setupComponents(t *testing.T, entries ...string) (workDir, dir string) {
	t.Helper()
	workDir = t.TempDir()
	dir = filepath.Join(workDir, "src", "components", "ui")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for _, e := range entries {
		if e[len(e)-1] == '/' {
			sub := filepath.Join(dir, e[:len(e)-1])
			require.NoError(t, os.MkdirAll(sub, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(sub, "index.tsx"), []byte("export {}\n"), 0o644))
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, e), []byte("export {}\n"), 0o644))
	}

	return workDir, dir
}

func exists(t *testing.T, p string) bool {
	t.Helper()
	_, err := os.Stat(p)
	return err == nil
}

package component

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/shadcn-remover/shadcn-remover/internal/paths"
	"github.com/shadcn-remover/shadcn-remover/internal/remerr"
)

// indexName is the barrel file that re-exports components, it is never a component itself.
const indexName = "index"

// readDir is a function pointer to os.ReadDir, defined here for testing purposes.
var readDir = os.ReadDir

// List returns the identifiers of every component in dir, in directory listing order.
// A trailing .tsx suffix is removed and hidden entries as well as the index entry are skipped.
// Entries which normalize to the same identifier are returned once.
//
// A missing dir returns remerr.ErrComponentsDir, any other failure returns remerr.ErrReadComponents.
func List(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, remerr.ErrComponentsDir.Wrap(err)
		}
		return nil, remerr.ErrReadComponents.Wrap(err)
	}

	entries, err := readDir(dir)
	if err != nil {
		return nil, remerr.ErrReadComponents.Wrap(err)
	}

	seen := map[string]struct{}{}
	var names []string
	for _, entry := range entries {
		name := Normalize(entry.Name())
		if name == "" || strings.HasPrefix(name, ".") || name == indexName {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, nil
}

// Normalize converts a directory entry name into a component identifier.
func Normalize(entry string) string {
	return strings.TrimSuffix(entry, paths.ComponentSuffix)
}

package paths

import (
	"path/filepath"
)

const (
	// ComponentSuffix is the file extension of a single-file component.
	ComponentSuffix = ".tsx"
)

// ComponentsDir returns the full path to the src/components/ui directory beneath workDir.
// The location is a fixed convention and is not configurable.
func ComponentsDir(workDir string) string {
	return filepath.Join(workDir, "src", "components", "ui")
}

// Relative returns p relative to workDir.
// If no relative path can be computed, p is returned unchanged.
func Relative(workDir, p string) string {
	rel, err := filepath.Rel(workDir, p)
	if err != nil {
		return p
	}
	return rel
}

package validate

import (
	"path/filepath"
	"strings"
)

// IsComponentName reports whether s can only refer to an entry directly inside the components directory.
func IsComponentName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) || filepath.IsAbs(s) || filepath.VolumeName(s) != "" {
		return false
	}
	return true
}

package component

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	_, dir := setupComponents(t, "button.tsx", "card/", "table/", "table.tsx", "plain")

	tests := []struct {
		name        string
		component   string
		expPath     string
		expKind     Kind
		expNotFound bool
	}{
		{
			name:      "file",
			component: "button",
			expPath:   filepath.Join(dir, "button.tsx"),
			expKind:   KindFile,
		},
		{
			name:      "directory",
			component: "card",
			expPath:   filepath.Join(dir, "card"),
			expKind:   KindDirectory,
		},
		{
			name:      "directory takes precedence over file",
			component: "table",
			expPath:   filepath.Join(dir, "table"),
			expKind:   KindDirectory,
		},
		{
			name:        "missing",
			component:   "nonexistent",
			expNotFound: true,
		},
		{
			name:        "unsuffixed file is not a component",
			component:   "plain",
			expNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Locate(dir, tt.component)
			if tt.expNotFound {
				assert.ErrorIs(t, err, ErrNotFound)
				assert.Contains(t, err.Error(), fmt.Sprintf("checked for %s.tsx and directory %s", tt.component, tt.component))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Target{Name: tt.component, Path: tt.expPath, Kind: tt.expKind}, target)
		})
	}
}

func TestRemoveOne(t *testing.T) {
	tests := []struct {
		name      string
		component string
		dryRun    bool
		exp       Outcome
		gone      []string
		kept      []string
	}{
		{
			name:      "remove file",
			component: "button",
			exp: Outcome{
				Name:   "button",
				Status: StatusRemoved,
				Kind:   KindFile,
				Path:   filepath.Join("src", "components", "ui", "button.tsx"),
			},
			gone: []string{"button.tsx"},
			kept: []string{"card", "table", "table.tsx"},
		},
		{
			name:      "remove directory recursively",
			component: "card",
			exp: Outcome{
				Name:   "card",
				Status: StatusRemoved,
				Kind:   KindDirectory,
				Path:   filepath.Join("src", "components", "ui", "card"),
			},
			gone: []string{"card"},
			kept: []string{"button.tsx"},
		},
		{
			name:      "directory removed and same named file untouched",
			component: "table",
			exp: Outcome{
				Name:   "table",
				Status: StatusRemoved,
				Kind:   KindDirectory,
				Path:   filepath.Join("src", "components", "ui", "table"),
			},
			gone: []string{"table"},
			kept: []string{"table.tsx"},
		},
		{
			name:      "dry run file",
			component: "button",
			dryRun:    true,
			exp: Outcome{
				Name:   "button",
				Status: StatusSimulated,
				Kind:   KindFile,
				Path:   filepath.Join("src", "components", "ui", "button.tsx"),
			},
			kept: []string{"button.tsx", "card", "table", "table.tsx"},
		},
		{
			name:      "dry run directory",
			component: "card",
			dryRun:    true,
			exp: Outcome{
				Name:   "card",
				Status: StatusSimulated,
				Kind:   KindDirectory,
				Path:   filepath.Join("src", "components", "ui", "card"),
			},
			kept: []string{"button.tsx", "card", "card/index.tsx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir, dir := setupComponents(t, "button.tsx", "card/", "table/", "table.tsx")

			outcome := RemoveOne(context.Background(), Options{Dir: dir, WorkDir: workDir, DryRun: tt.dryRun}, tt.component)
			assert.Equal(t, tt.exp, outcome)

			for _, g := range tt.gone {
				assert.False(t, exists(t, filepath.Join(dir, g)), "%s should have been removed", g)
			}
			for _, k := range tt.kept {
				assert.True(t, exists(t, filepath.Join(dir, k)), "%s should not have been removed", k)
			}
		})
	}
}

func TestRemoveOne_NotFound(t *testing.T) {
	workDir, dir := setupComponents(t, "button.tsx")

	for _, dryRun := range []bool{false, true} {
		t.Run(fmt.Sprintf("dry run %t", dryRun), func(t *testing.T) {
			outcome := RemoveOne(context.Background(), Options{Dir: dir, WorkDir: workDir, DryRun: dryRun}, "nonexistent")

			assert.Equal(t, "nonexistent", outcome.Name)
			assert.Equal(t, StatusNotFound, outcome.Status)
			assert.False(t, outcome.Status.Succeeded())
			assert.ErrorIs(t, outcome.Err, ErrNotFound)
			assert.Empty(t, outcome.Path)
			assert.True(t, exists(t, filepath.Join(dir, "button.tsx")))
		})
	}
}

func TestRemoveOne_InvalidName(t *testing.T) {
	workDir, dir := setupComponents(t, "button.tsx")
	outside := filepath.Join(workDir, "src", "keep.tsx")
	require.NoError(t, os.WriteFile(outside, []byte("export {}"), 0o644))

	for _, name := range []string{"..", "../keep", "../../src"} {
		t.Run(name, func(t *testing.T) {
			outcome := RemoveOne(context.Background(), Options{Dir: dir, WorkDir: workDir}, name)

			assert.Equal(t, StatusError, outcome.Status)
			assert.ErrorIs(t, outcome.Err, ErrInvalidName)
		})
	}
	assert.True(t, exists(t, outside))
	assert.True(t, exists(t, filepath.Join(dir, "button.tsx")))
}

func TestRemoveOne_DeleteFailure(t *testing.T) {
	origFile, origDir := removeFile, removeDir
	t.Cleanup(func() { removeFile, removeDir = origFile, origDir })

	permission := func(name string) error {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}
	vanished := func(name string) error {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}

	tests := []struct {
		name       string
		component  string
		removeFile func(string) error
		removeDir  func(string) error
		expKind    Kind
		expErr     error
		expMsg     string
	}{
		{
			name:       "file permission denied",
			component:  "button",
			removeFile: permission,
			expKind:    KindFile,
			expErr:     fs.ErrPermission,
			expMsg:     "failed to remove file button",
		},
		{
			name:      "directory permission denied",
			component: "card",
			removeDir: permission,
			expKind:   KindDirectory,
			expErr:    fs.ErrPermission,
			expMsg:    "failed to remove directory card",
		},
		{
			name:       "file vanished after it was located",
			component:  "button",
			removeFile: vanished,
			expKind:    KindFile,
			expErr:     fs.ErrNotExist,
			expMsg:     "failed to remove file button",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir, dir := setupComponents(t, "button.tsx", "card/")
			removeFile, removeDir = origFile, origDir
			if tt.removeFile != nil {
				removeFile = tt.removeFile
			}
			if tt.removeDir != nil {
				removeDir = tt.removeDir
			}

			outcome := RemoveOne(context.Background(), Options{Dir: dir, WorkDir: workDir}, tt.component)

			assert.Equal(t, StatusError, outcome.Status)
			assert.False(t, outcome.Status.Succeeded())
			assert.Equal(t, tt.expKind, outcome.Kind)
			assert.ErrorIs(t, outcome.Err, tt.expErr)
			assert.NotErrorIs(t, outcome.Err, ErrNotFound)
			assert.Contains(t, outcome.Err.Error(), tt.expMsg)
			assert.True(t, exists(t, filepath.Join(dir, "button.tsx")))
			assert.True(t, exists(t, filepath.Join(dir, "card")))
		})
	}
}

func TestRemoveAll_DeleteFailureIsolated(t *testing.T) {
	origFile := removeFile
	t.Cleanup(func() { removeFile = origFile })
	removeFile = func(name string) error {
		if filepath.Base(name) == "button.tsx" {
			return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
		}
		return origFile(name)
	}

	workDir, dir := setupComponents(t, "button.tsx", "dialog.tsx")
	outcomes := RemoveAll(context.Background(), Options{Dir: dir, WorkDir: workDir}, []string{"button", "dialog"})

	require.Len(t, outcomes, 2)
	assert.Equal(t, StatusError, outcomes[0].Status)
	assert.ErrorIs(t, outcomes[0].Err, fs.ErrPermission)
	assert.Equal(t, StatusRemoved, outcomes[1].Status)
	assert.True(t, exists(t, filepath.Join(dir, "button.tsx")))
	assert.False(t, exists(t, filepath.Join(dir, "dialog.tsx")))
}

func TestRemoveAll(t *testing.T) {
	workDir, dir := setupComponents(t, "button.tsx", "card/", "dialog.tsx")

	names := []string{"card", "nonexistent", "button"}
	outcomes := RemoveAll(context.Background(), Options{Dir: dir, WorkDir: workDir}, names)

	require.Len(t, outcomes, len(names))
	for i, name := range names {
		assert.Equal(t, name, outcomes[i].Name, "outcomes should follow input order")
	}
	assert.Equal(t, StatusRemoved, outcomes[0].Status)
	assert.Equal(t, StatusNotFound, outcomes[1].Status)
	assert.Equal(t, StatusRemoved, outcomes[2].Status)

	assert.False(t, exists(t, filepath.Join(dir, "card")))
	assert.False(t, exists(t, filepath.Join(dir, "button.tsx")))
	assert.True(t, exists(t, filepath.Join(dir, "dialog.tsx")))
}

func TestRemoveAll_DryRunNeverMutates(t *testing.T) {
	entries := []string{"button.tsx", "card/", "table/", "table.tsx", "index.tsx", ".hidden"}
	workDir, dir := setupComponents(t, entries...)

	names := []string{"button", "card", "table", "index", ".hidden", "nonexistent"}
	outcomes := RemoveAll(context.Background(), Options{Dir: dir, WorkDir: workDir, DryRun: true}, names)

	for _, o := range outcomes {
		assert.NotEqual(t, StatusRemoved, o.Status)
	}
	for _, e := range []string{"button.tsx", "card", "card/index.tsx", "table", "table.tsx", "index.tsx", ".hidden"} {
		assert.True(t, exists(t, filepath.Join(dir, e)), "%s should not have been removed", e)
	}
}

func TestRemoveAll_Empty(t *testing.T) {
	outcomes := RemoveAll(context.Background(), Options{Dir: t.TempDir()}, nil)
	assert.Empty(t, outcomes)
}

func TestStatus_Succeeded(t *testing.T) {
	assert.True(t, StatusRemoved.Succeeded())
	assert.True(t, StatusSimulated.Succeeded())
	assert.False(t, StatusNotFound.Succeeded())
	assert.False(t, StatusError.Succeeded())
}

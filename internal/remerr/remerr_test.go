package remerr

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestError(t *testing.T) {
	f := func() error {
		return &Error{
			help: "help message",
			msg:  "error message",
		}
	}

	err := f()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("error should be of type Error")
	}

	if d := cmp.Diff("help message", e.Help()); d != "" {
		t.Errorf("help message diff:\n%s", d)
	}
	if d := cmp.Diff("error message", e.Error()); d != "" {
		t.Errorf("error message diff:\n%s", d)
	}
}

func TestError_Wrap(t *testing.T) {
	err := ErrReadComponents.Wrap(fs.ErrPermission)

	if !errors.Is(err, ErrReadComponents) {
		t.Error("wrapped error should match ErrReadComponents")
	}
	if errors.Is(err, ErrComponentsDir) {
		t.Error("wrapped error should not match ErrComponentsDir")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("wrapped error should match the underlying cause")
	}
	if d := cmp.Diff("error reading components directory: permission denied", err.Error()); d != "" {
		t.Errorf("error message diff:\n%s", d)
	}
	if d := cmp.Diff(ErrReadComponents.Help(), err.Help()); d != "" {
		t.Errorf("help message diff:\n%s", d)
	}
}

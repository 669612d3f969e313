package remerr

var _ error = (*Error)(nil)

// Error adds a user-friendly help message to specific errors.
type Error struct {
	help string
	msg  string
	err  error
}

// Help will be displayed to the user if this specific error is ever returned.
func (e *Error) Help() string {
	return e.help
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is the same kind of Error, ignoring the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.msg == t.msg
}

// Wrap returns a copy of e with err attached as the underlying cause.
// The returned error still matches e with errors.Is.
func (e *Error) Wrap(err error) *Error {
	return &Error{help: e.help, msg: e.msg, err: err}
}

var (
	// ErrComponentsDir is returned when the src/components/ui directory does not exist.
	ErrComponentsDir = &Error{
		msg: "components directory not found",
		help: `Please ensure you are running this command from the root of your project
and that the src/components/ui directory exists.`,
	}

	// ErrReadComponents is returned when the src/components/ui directory exists but cannot be read.
	ErrReadComponents = &Error{
		msg: "error reading components directory",
		help: `The src/components/ui directory exists but could not be read.
Check that it is a directory and that you have permission to read it.`,
	}
)

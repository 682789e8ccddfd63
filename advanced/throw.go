package advanced

import "github.com/pkg/errors"

var (
	// A required buffer has no backing data.
	ErrInvalidBuffer = errors.New("invalid buffer")
	// An index lies outside a buffer's declared element count.
	ErrOutOfRange = errors.New("index out of range")
	// The face cannot be (fully) triangulated: degree below three, or geometry
	// so degenerate that no valid diagonal could be found.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Internal invariant violations deep inside the diagonal walks are reported by
// panicking with a TriangulateError. The root package recovers these into
// ordinary errors; any other panic is left alone.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping err.
func fatal(err error) {
	panic(TriangulateError{err})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}

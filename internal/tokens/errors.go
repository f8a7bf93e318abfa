package tokens

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFetch is returned when the token document cannot be retrieved
	// (transport error or non-2xx response).
	ErrFetch = errors.New("fetch failure")
	// ErrParse is returned when the token document is not valid JSON or
	// does not contain the expected envelope.
	ErrParse = errors.New("parse failure")
)

// StructureError reports a node that is neither an icon leaf nor an object
// of further nodes.
type StructureError struct {
	Path   []string // Labels from the icon root down to the offending node
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid token node at %q: %s", strings.Join(e.Path, "."), e.Reason)
}

// Unwrap lets callers match structure errors with errors.Is(err, ErrParse).
func (e *StructureError) Unwrap() error {
	return ErrParse
}

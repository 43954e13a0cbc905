// internal/registry/errors.go
package registry

import "fmt"

// ErrorKind is the coarse classification of a validation failure.
type ErrorKind string

const (
	KindUnsupportedType   ErrorKind = "unsupported_type"
	KindExtraForbidden    ErrorKind = "extra_forbidden"
	KindMissingRequired   ErrorKind = "missing_required"
	KindWrongType         ErrorKind = "wrong_type"
	KindInvalid           ErrorKind = "invalid"
	KindInvalidAnnotation ErrorKind = "invalid_annotation"
)

// ValidationError is one per-field diagnostic. Path uses dotted addressing
// rooted at the caller-supplied prefix, e.g. items[2].payload.rankings.method.
type ValidationError struct {
	Path      string    `json:"path"`
	ErrorType ErrorKind `json:"error_type"`
	Message   string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Message, e.ErrorType)
}

// ErrorList accumulates diagnostics across a full validation pass instead of
// stopping at the first failure.
type ErrorList []ValidationError

// Add records one diagnostic with a formatted message.
func (l *ErrorList) Add(path string, kind ErrorKind, format string, args ...interface{}) {
	*l = append(*l, ValidationError{
		Path:      path,
		ErrorType: kind,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Merge appends other onto l.
func (l *ErrorList) Merge(other ErrorList) {
	*l = append(*l, other...)
}

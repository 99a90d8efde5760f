package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidTriple indicates a structurally invalid triple.
	ErrCodeInvalidTriple ErrorCode = "INVALID_TRIPLE"
	// ErrCodeIRIResolution indicates a relative IRI could not be resolved.
	ErrCodeIRIResolution ErrorCode = "IRI_RESOLUTION"
	// ErrCodeUnknown indicates an error this package does not classify.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrInvalidSubject indicates a subject that is neither an IRI nor a blank node.
	ErrInvalidSubject = errors.New("rdf: subject must be an IRI or blank node")
	// ErrInvalidPredicate indicates a predicate that is not a non-empty IRI.
	ErrInvalidPredicate = errors.New("rdf: predicate must be a non-empty IRI")
	// ErrInvalidObject indicates a missing object term.
	ErrInvalidObject = errors.New("rdf: object must be an IRI, blank node or literal")
	// ErrIRIResolution indicates a relative IRI reference could not be
	// resolved against a base URL. Use errors.Is to match ResolveError values.
	ErrIRIResolution = errors.New("rdf: IRI resolution failed")
)

// ResolveError reports a failed resolution of a relative IRI reference
// against a base URL. It carries the offending reference and the underlying
// cause, and matches ErrIRIResolution under errors.Is.
type ResolveError struct {
	// Reference is the IRI reference that failed to resolve.
	Reference string
	// Err is the underlying cause.
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("rdf: cannot resolve IRI reference %q: %v", e.Reference, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIRIResolution.
func (e *ResolveError) Is(target error) bool { return target == ErrIRIResolution }

// Code returns the error code for an error, or ErrCodeUnknown if the error
// does not originate in this package. Returns the empty string for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) || errors.Is(err, ErrIRIResolution) {
		return ErrCodeIRIResolution
	}
	switch {
	case errors.Is(err, ErrInvalidSubject),
		errors.Is(err, ErrInvalidPredicate),
		errors.Is(err, ErrInvalidObject):
		return ErrCodeInvalidTriple
	}
	return ErrCodeUnknown
}

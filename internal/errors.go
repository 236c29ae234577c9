package internal

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ArgumentError ErrorKind = iota + 1
	NetworkError
	ParseError
	URLError
	IOError
	SerializationError
)

func (k ErrorKind) String() string {
	switch k {
	case ArgumentError:
		return "argument error"
	case NetworkError:
		return "network error"
	case ParseError:
		return "parse error"
	case URLError:
		return "url error"
	case IOError:
		return "io error"
	case SerializationError:
		return "serialization error"
	}
	return "unknown error"
}

// StageError is the fatal error of one pipeline stage. Every error that ends
// a run passes through one of these so the user can tell which step failed.
type StageError struct {
	Kind  ErrorKind
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func NewStageError(kind ErrorKind, stage string, err error) error {
	return &StageError{Kind: kind, Stage: stage, Err: err}
}

// KindOf reports the kind of the outermost StageError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsKind is a shorthand used by callers and tests.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

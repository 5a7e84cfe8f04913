package interp

import "fmt"

// ErrorKind classifies why a command failed.
type ErrorKind int

const (
	// ParseError: a token that should be numeric is not.
	ParseError ErrorKind = iota + 1
	// ArityError: wrong number of arguments.
	ArityError
	// ValidationError: a negative dimension.
	ValidationError
	// RangeError: no shape at the given index.
	RangeError
	UnknownCommandError
	UnknownShapeKindError
	// EmptyCollectionError is informational: there is nothing to list, bound or export.
	EmptyCollectionError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case ArityError:
		return "ArityError"
	case ValidationError:
		return "ValidationError"
	case RangeError:
		return "RangeError"
	case UnknownCommandError:
		return "UnknownCommandError"
	case UnknownShapeKindError:
		return "UnknownShapeKindError"
	case EmptyCollectionError:
		return "EmptyCollectionError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a failed command. The registry is unchanged whenever one is
// returned.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, v...),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrRange) works
// regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrParse            = &Error{Kind: ParseError}
	ErrArity            = &Error{Kind: ArityError}
	ErrValidation       = &Error{Kind: ValidationError}
	ErrRange            = &Error{Kind: RangeError}
	ErrUnknownCommand   = &Error{Kind: UnknownCommandError}
	ErrUnknownShapeKind = &Error{Kind: UnknownShapeKindError}
	ErrEmptyCollection  = &Error{Kind: EmptyCollectionError}
)

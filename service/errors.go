package service

import (
	"errors"
)

// Kind classifies a prediction failure. Every kind except KindInternalFault is the client's fault.
type Kind int

const (
	KindInternalFault Kind = iota
	KindMissingField
	KindInvalidType
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "MissingField"
	case KindInvalidType:
		return "InvalidType"
	case KindOutOfRange:
		return "OutOfRange"
	default:
		return "InternalFault"
	}
}

// Error is a prediction failure of a given kind. Two errors match with errors.Is when their kinds
// are equal.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingField  = &Error{Kind: KindMissingField, Msg: "missing required field"}
	ErrInvalidType   = &Error{Kind: KindInvalidType, Msg: "input values must be numbers"}
	ErrOutOfRange    = &Error{Kind: KindOutOfRange, Msg: "input values out of range"}
	ErrInternalFault = &Error{Kind: KindInternalFault, Msg: "internal fault"}
)

// KindOf returns the kind of the first *Error in err's chain and KindInternalFault for any other
// error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternalFault
}

// IsClientError reports whether err was caused by the request rather than the service
func IsClientError(err error) bool {
	return err != nil && KindOf(err) != KindInternalFault
}

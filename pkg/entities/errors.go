package entities

import "fmt"

var ErrNotFound = fmt.Errorf("not found")
var ErrUnknownKind = fmt.Errorf("unknown entity kind")
var ErrUnknownRelationPath = fmt.Errorf("unknown relation path")
var ErrRelationNotRequested = fmt.Errorf("relation not requested")

type lookupError struct {
	msg    string
	target error
}

func (e lookupError) Error() string        { return e.msg }
func (e lookupError) Is(target error) bool { return target == e.target }

// NewNotFoundError signals that no entity with the requested id exists for
// the requested kind. This is a distinct outcome from "found with empty
// relations" and from any store failure.
func NewNotFoundError(msg string) error {
	return &lookupError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnknownKindError(msg string) error {
	return &lookupError{
		msg:    msg,
		target: ErrUnknownKind,
	}
}

// NewUnknownRelationPathError signals that a path set references a relation
// path that is not registered for the requested kind.
func NewUnknownRelationPathError(msg string) error {
	return &lookupError{
		msg:    msg,
		target: ErrUnknownRelationPath,
	}
}

// NewRelationNotRequestedError signals that a formatter was invoked against
// an entity that was resolved with a different path set. This is a caller
// contract violation, not a recoverable lookup outcome.
func NewRelationNotRequestedError(msg string) error {
	return &lookupError{
		msg:    msg,
		target: ErrRelationNotRequested,
	}
}

package validation

import (
	"errors"
	"fmt"
)

// DomainError carries one or more validation errors out of a failed pass.
type DomainError struct {
	Message string
	Errors  []Error
}

func NewDomainError(errs ...Error) *DomainError {
	e := &DomainError{Errors: errs}
	if len(errs) > 0 {
		e.Message = errs[0].Message
	}
	return e
}

// NewNotificationError turns the errors collected by h into a DomainError.
func NewNotificationError(message string, h Handler) *DomainError {
	return &DomainError{Message: message, Errors: h.Errors()}
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return "domain error"
}

// NotFoundError reports that the aggregate a request refers to does not exist.
// It is deliberately not a Notification entry.
type NotFoundError struct {
	Aggregate string
	ID        string
}

func NotFound(aggregate, id string) *NotFoundError {
	return &NotFoundError{Aggregate: aggregate, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Aggregate, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

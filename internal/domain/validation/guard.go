package validation

import (
	"errors"
	"fmt"
)

// Guard runs op and routes any failure it produces, returned or panicked,
// through h as a single Error built from the failure's message.
//
// With a *Notification the failure is recorded and Guard returns the zero
// value and a nil error, so callers must check h.HasErrors(). With Throws the
// failure comes back as a *DomainError.
func Guard[T any](h Handler, op func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = h.Append(NewError(panicMessage(r)))
		}
	}()

	v, opErr := op()
	if opErr != nil {
		var zero T
		return zero, h.Append(NewError(opErr.Error()))
	}
	return v, nil
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// AsDomainError unwraps err into a *DomainError when it is one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

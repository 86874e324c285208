package usecase

import "github.com/oksasatya/go-catalog-admin/internal/domain/validation"

// Result is the outcome of a mutating use case: either a Notification
// describing why nothing was persisted, or the output of the persisted change.
type Result[T any] struct {
	notification *validation.Notification
	value        T
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps n; a nil notification still yields a failed Result.
func Failure[T any](n *validation.Notification) Result[T] {
	if n == nil {
		n = validation.NewNotification()
	}
	return Result[T]{notification: n}
}

func (r Result[T]) IsFailure() bool {
	return r.notification != nil
}

func (r Result[T]) IsSuccess() bool {
	return r.notification == nil
}

func (r Result[T]) Notification() *validation.Notification {
	return r.notification
}

// Value is the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Get() (T, *validation.Notification) {
	return r.value, r.notification
}

// Map transforms the success value and passes failures through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.notification)
	}
	return Success(f(r.value))
}

func Fold[T, R any](r Result[T], onFailure func(*validation.Notification) R, onSuccess func(T) R) R {
	if r.IsFailure() {
		return onFailure(r.notification)
	}
	return onSuccess(r.value)
}

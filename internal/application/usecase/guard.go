package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

// Guarded performs exactly one gateway call. A failure, returned or panicked,
// becomes a single-entry Notification carrying its message, so callers see
// storage problems through the same channel as validation problems.
func Guarded[T any](logger logrus.FieldLogger, fields logrus.Fields, call func() (T, error)) Result[T] {
	n := validation.NewNotification()
	v, _ := validation.Guard[T](n, call)
	if n.HasErrors() {
		if logger != nil {
			logger.WithFields(fields).WithField("error", n.String()).Warn("gateway call failed")
		}
		return Failure[T](n)
	}
	return Success(v)
}

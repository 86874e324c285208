package usecase

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

func TestResult(t *testing.T) {
	t.Run("should carry the value on success", func(t *testing.T) {
		req := require.New(t)

		r := Success("id-1")

		req.True(r.IsSuccess())
		req.False(r.IsFailure())
		req.Nil(r.Notification())
		req.Equal("id-1", r.Value())
	})

	t.Run("should carry the notification on failure", func(t *testing.T) {
		req := require.New(t)
		n := validation.NewNotification()
		_ = n.Append(validation.NewError("bad"))

		r := Failure[string](n)

		req.True(r.IsFailure())
		req.Empty(r.Value())
		req.Same(n, r.Notification())
	})

	t.Run("should still fail with a nil notification", func(t *testing.T) {
		req := require.New(t)

		r := Failure[int](nil)

		req.True(r.IsFailure())
		req.NotNil(r.Notification())
	})

	t.Run("should map and fold", func(t *testing.T) {
		req := require.New(t)

		mapped := Map(Success(2), func(v int) int { return v * 10 })
		req.Equal(20, mapped.Value())

		failed := Map(Failure[int](validation.NotificationOf(errors.New("x"))), func(v int) int { return v * 10 })
		req.True(failed.IsFailure())

		label := Fold(failed,
			func(n *validation.Notification) string { return "failed: " + n.String() },
			func(v int) string { return "ok" },
		)
		req.Equal("failed: x", label)
	})
}

func TestGuarded(t *testing.T) {
	t.Run("should return the value without logging", func(t *testing.T) {
		req := require.New(t)
		logger, hook := test.NewNullLogger()

		r := Guarded(logger, nil, func() (int, error) { return 1, nil })

		req.True(r.IsSuccess())
		req.Equal(1, r.Value())
		req.Empty(hook.AllEntries())
	})

	t.Run("should turn an error into a single-entry failure and log it", func(t *testing.T) {
		req := require.New(t)
		logger, hook := test.NewNullLogger()

		r := Guarded(logger, logrus.Fields{"operation": "create"}, func() (int, error) {
			return 0, errors.New("duplicate key")
		})

		req.True(r.IsFailure())
		req.Equal([]string{"duplicate key"}, r.Notification().Messages())
		entry := hook.LastEntry()
		req.NotNil(entry)
		req.Equal(logrus.WarnLevel, entry.Level)
		req.Equal("create", entry.Data["operation"])
		req.Equal("duplicate key", entry.Data["error"])
	})

	t.Run("should recover a panic", func(t *testing.T) {
		req := require.New(t)

		r := Guarded(nil, nil, func() (int, error) { panic("connection reset") })

		req.True(r.IsFailure())
		req.Equal([]string{"connection reset"}, r.Notification().Messages())
	})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/events"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/search"
)

type projectorFunc func(ctx context.Context, ev events.CatalogEvent) error

func (f projectorFunc) Apply(ctx context.Context, ev events.CatalogEvent) error { return f(ctx, ev) }

type settled struct {
	acked, nacked, requeued bool
}

func (s *settled) Ack(bool) error {
	s.acked = true
	return nil
}

func (s *settled) Nack(_, requeue bool) error {
	s.nacked, s.requeued = true, requeue
	return nil
}

func TestWorker_Handle(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"type":"created","aggregate":"Category","id":"c-1","payload":{"name":"Movies"}}`)

	t.Run("acks applied events", func(t *testing.T) {
		req := require.New(t)
		logger, _ := test.NewNullLogger()
		var got events.CatalogEvent
		w := worker{logger: logger, timeout: time.Second, projector: projectorFunc(func(_ context.Context, ev events.CatalogEvent) error {
			got = ev
			return nil
		})}
		msg := &settled{}

		w.handle(ctx, body, msg)

		req.True(msg.acked)
		req.False(msg.nacked)
		req.Equal(events.Created, got.Type)
		req.Equal("c-1", got.ID)
		req.JSONEq(`{"name":"Movies"}`, string(got.Payload))
	})

	t.Run("drops malformed messages", func(t *testing.T) {
		req := require.New(t)
		logger, hook := test.NewNullLogger()
		w := worker{logger: logger, timeout: time.Second, projector: projectorFunc(func(context.Context, events.CatalogEvent) error {
			t.Fatal("projector must not be called")
			return nil
		})}
		msg := &settled{}

		w.handle(ctx, []byte(`not json`), msg)

		req.True(msg.nacked)
		req.False(msg.requeued)
		req.Equal(logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("drops unsupported events", func(t *testing.T) {
		req := require.New(t)
		logger, _ := test.NewNullLogger()
		w := worker{logger: logger, timeout: time.Second, projector: projectorFunc(func(context.Context, events.CatalogEvent) error {
			return fmt.Errorf("%w: aggregate %q", search.ErrUnsupportedEvent, "Video")
		})}
		msg := &settled{}

		w.handle(ctx, body, msg)

		req.True(msg.nacked)
		req.False(msg.requeued)
	})

	t.Run("requeues on backend failure", func(t *testing.T) {
		req := require.New(t)
		logger, hook := test.NewNullLogger()
		w := worker{logger: logger, timeout: time.Second, projector: projectorFunc(func(context.Context, events.CatalogEvent) error {
			return errors.New("es unavailable")
		})}
		msg := &settled{}

		w.handle(ctx, body, msg)

		req.True(msg.nacked)
		req.True(msg.requeued)
		req.Equal(logrus.ErrorLevel, hook.LastEntry().Level)
		req.Equal("c-1", hook.LastEntry().Data["id"])
	})
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/events"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/search"
)

type projector interface {
	Apply(ctx context.Context, ev events.CatalogEvent) error
}

// acknowledger is the part of amqp.Delivery the worker settles messages with.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type worker struct {
	projector projector
	logger    logrus.FieldLogger
	timeout   time.Duration
}

// handle applies one message. Malformed or unsupported events are dropped;
// any other failure is requeued.
func (w worker) handle(ctx context.Context, body []byte, msg acknowledger) {
	var ev events.CatalogEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		w.logger.WithError(err).Warn("bad message")
		_ = msg.Nack(false, false)
		return
	}
	log := w.logger.WithFields(logrus.Fields{"event": ev.Type, "aggregate": ev.Aggregate, "id": ev.ID})

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.projector.Apply(c, ev); err != nil {
		if errors.Is(err, search.ErrUnsupportedEvent) {
			log.WithError(err).Warn("dropping event")
			_ = msg.Nack(false, false)
			return
		}
		log.WithError(err).Error("projection failed")
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

func (w worker) run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for msg := range msgs {
		w.handle(ctx, msg.Body, msg)
	}
}

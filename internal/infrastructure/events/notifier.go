package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// notifier publishes best-effort: the change is already committed, so a
// broker failure is logged and never reported to the caller.
type notifier struct {
	publisher Publisher
	logger    logrus.FieldLogger
}

func (n notifier) publish(ctx context.Context, t Type, aggregate, id string, payload any) {
	fields := logrus.Fields{"aggregate": aggregate, "id": id, "event": string(t)}

	ev, err := newEvent(t, aggregate, id, payload)
	if err != nil {
		n.logger.WithFields(fields).WithError(err).Error("encode catalog event")
		return
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.publisher.PublishJSON(pctx, ev); err != nil {
		n.logger.WithFields(fields).WithError(err).Warn("publish catalog event failed")
		return
	}
	n.logger.WithFields(fields).Debug("catalog event published")
}

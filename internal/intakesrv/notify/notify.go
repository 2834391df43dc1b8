// Package notify delivers workflow notifications out-of-band. Delivery is
// fire-and-forget: messages are handed to a queue and the caller's request
// never waits on, or fails because of, the outcome.
package notify

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/intakesrv/config"
)

// Message is a single notification to deliver.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message. Implementations may block; the queue
// worker is the only caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// q is written only by Init/InitWithSender before the server accepts
// requests and by Shutdown after it stops serving them; Enqueue reads it
// from request handlers in between. Callers must keep that ordering.
var q *queue

// Init starts the notification queue using the configured transport. When
// notifications are disabled the queue runs with a discarding sender so
// callers never need to check.
func Init() {
	cfg := config.Config()
	var sender Sender
	if cfg.Notify.Enabled {
		sender = newMailgunSender(cfg.Notify.MailgunDomain, cfg.Notify.MailgunAPIKey)
	} else {
		sender = discardSender{}
	}
	q = newQueue(sender, cfg.Notify.QueueDepth)
}

// InitWithSender starts the queue with the given sender. Used by tests to
// observe deliveries.
func InitWithSender(sender Sender) {
	depth := 64
	if cfg := config.Config(); cfg != nil && cfg.Notify.QueueDepth > 0 {
		depth = cfg.Notify.QueueDepth
	}
	q = newQueue(sender, depth)
}

// Enqueue hands a message to the queue without blocking. A full queue drops
// the message with a log entry; dropped notifications never surface to the
// caller.
func Enqueue(ctx context.Context, msg Message) {
	if q == nil {
		log.Ctx(ctx).Error().Msg("notify queue not initialized, dropping message")
		return
	}
	q.enqueue(ctx, msg)
}

// Shutdown drains the queue and stops the worker.
func Shutdown() {
	if q != nil {
		q.stop()
		q = nil
	}
}

type discardSender struct{}

func (discardSender) Send(ctx context.Context, msg Message) error {
	log.Ctx(ctx).Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("notification delivery disabled, discarding")
	return nil
}

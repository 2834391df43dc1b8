package notify

import (
	"context"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

// queue is a buffered message channel drained by a single worker goroutine.
// Delivery failures are retried with backoff and then logged; they are never
// reported back to the producer.
type queue struct {
	ch     chan Message
	sender Sender
	wg     sync.WaitGroup
}

func newQueue(sender Sender, depth int) *queue {
	q := &queue{
		ch:     make(chan Message, depth),
		sender: sender,
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *queue) enqueue(ctx context.Context, msg Message) {
	select {
	case q.ch <- msg:
	default:
		log.Ctx(ctx).Error().Str("to", msg.To).Str("subject", msg.Subject).Msg("notification queue full, dropping message")
	}
}

func (q *queue) run() {
	defer q.wg.Done()
	for msg := range q.ch {
		q.deliver(msg)
	}
}

func (q *queue) deliver(msg Message) {
	ctx := log.Logger.WithContext(context.Background())
	err := retry.Do(
		func() error {
			return q.sender.Send(ctx, msg)
		},
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("failed to deliver notification")
	}
}

// stop closes the queue and waits for in-flight deliveries to finish.
func (q *queue) stop() {
	close(q.ch)
	q.wg.Wait()
}

package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

const defaultRetry = 5 * time.Second

// NotificationSink receives notifications in arrival order.
type NotificationSink interface {
	ApplyRemoteNotification(ctx context.Context, n domain.Notification) error
}

// Feed pumps realtime notification inserts into a sink from a single
// goroutine, so delivery order matches arrival order. A dropped
// subscription is re-established after the retry delay.
type Feed struct {
	source ports.NotificationFeed
	sink   NotificationSink
	retry  time.Duration
	log    zerolog.Logger

	wg sync.WaitGroup
}

// NewFeed creates a Feed. If retry <= 0, defaultRetry is used.
func NewFeed(source ports.NotificationFeed, sink NotificationSink, retry time.Duration, log zerolog.Logger) *Feed {
	if retry <= 0 {
		retry = defaultRetry
	}
	return &Feed{source: source, sink: sink, retry: retry, log: log}
}

// Start launches the pump. It stops when ctx is cancelled.
func (f *Feed) Start(ctx context.Context) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.run(ctx)
	}()
}

// Wait blocks until the pump has stopped.
func (f *Feed) Wait() {
	f.wg.Wait()
}

func (f *Feed) run(ctx context.Context) {
	for {
		ch, err := f.source.SubscribeInserts(ctx)
		if err != nil {
			f.log.Error().Err(err).Dur("retry", f.retry).Msg("notification subscription failed")
		} else {
			f.log.Info().Msg("notification feed subscribed")
			f.drain(ctx, ch)
		}

		if ctx.Err() != nil {
			return
		}
		f.log.Warn().Dur("retry", f.retry).Msg("notification feed closed, resubscribing")

		select {
		case <-ctx.Done():
			return
		case <-time.After(f.retry):
		}
	}
}

func (f *Feed) drain(ctx context.Context, ch <-chan domain.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := f.sink.ApplyRemoteNotification(ctx, n); err != nil {
				f.log.Error().Err(err).
					Str("notification_id", n.ID).
					Msg("notification delivery failed")
			}
		}
	}
}

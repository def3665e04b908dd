package local

import (
	"context"
	"sync"
	"time"

	"github.com/modeboutique/storefront/internal/pkg/clock"
)

const echoTTL = time.Hour

// EchoFilter is the in-process counterpart of the Redis echo filter.
type EchoFilter struct {
	mu    sync.Mutex
	clock clock.Clock
	marks map[string]time.Time
}

func NewEchoFilter(clk clock.Clock) *EchoFilter {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &EchoFilter{clock: clk, marks: make(map[string]time.Time)}
}

func (f *EchoFilter) Mark(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.clock.Now()
	for k, at := range f.marks {
		if now.Sub(at) >= echoTTL {
			delete(f.marks, k)
		}
	}
	f.marks[id] = now
	return nil
}

func (f *EchoFilter) Seen(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	at, ok := f.marks[id]
	return ok && f.clock.Now().Sub(at) < echoTTL, nil
}

// Package analytics is the in-process event sink the resolver reports to.
// Consumers subscribe per event name; publishing is synchronous.
package analytics

import (
	"fmt"
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tranvictor/contractkit/metrics"
)

const WalletProviderUsed = "Wallet Provider Used"

type Event struct {
	ID         string
	Name       string
	Properties map[string]interface{}
	At         time.Time
}

type Bus struct {
	bus     evbus.Bus
	log     *zap.Logger
	metrics *metrics.Recorder

	mu   sync.Mutex
	sent int
}

func NewBus(log *zap.Logger, m *metrics.Recorder) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{
		bus:     evbus.New(),
		log:     log.Named("analytics"),
		metrics: m,
	}
}

// Subscribe registers fn for every event published under name.
func (b *Bus) Subscribe(name string, fn func(Event)) error {
	if err := b.bus.Subscribe(name, fn); err != nil {
		return fmt.Errorf("subscribe to %q: %w", name, err)
	}
	return nil
}

func (b *Bus) Unsubscribe(name string, fn func(Event)) error {
	return b.bus.Unsubscribe(name, fn)
}

// Track publishes an event and returns it. Tracking on a nil Bus is a no-op.
func (b *Bus) Track(name string, props map[string]interface{}) Event {
	ev := Event{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: props,
		At:         time.Now(),
	}
	if b == nil {
		return ev
	}
	b.mu.Lock()
	b.sent++
	b.mu.Unlock()

	b.log.Debug("track", zap.String("event", name), zap.String("id", ev.ID), zap.Any("properties", props))
	b.metrics.AnalyticsEvent(name)
	b.bus.Publish(name, ev)
	return ev
}

func (b *Bus) Sent() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sent
}

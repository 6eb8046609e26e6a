package payments

import (
	"sync"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"
)

// PushHub fans provider capture events out to scoped subscribers. A
// subscription lives for the duration of one request detail view; Cancel is
// a deterministic unsubscribe with no delivery guarantee afterwards.
//
// Delivery is best-effort: a subscriber that is not draining its channel
// drops events rather than blocking the webhook handler. Ordering relative
// to the synchronous verify path is not guaranteed, which is why settlement
// application is idempotent rather than order-dependent.

type PushHub struct {
	mu   sync.Mutex
	subs map[*PushSubscription]struct{}
}

var _ interfaces.IPushHub = (*PushHub)(nil)

type PushSubscription struct {
	hub       *PushHub
	predicate func(entities.PaymentPushEvent) bool
	events    chan entities.PaymentPushEvent
	once      sync.Once
}

var _ interfaces.IPushSubscription = (*PushSubscription)(nil)

func NewPushHub() *PushHub {
	return &PushHub{subs: make(map[*PushSubscription]struct{})}
}

func (h *PushHub) Subscribe(predicate func(entities.PaymentPushEvent) bool) interfaces.IPushSubscription {
	sub := &PushSubscription{
		hub:       h,
		predicate: predicate,
		events:    make(chan entities.PaymentPushEvent, 16),
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *PushHub) Publish(event entities.PaymentPushEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if sub.predicate != nil && !sub.predicate(event) {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}

func (s *PushSubscription) Events() <-chan entities.PaymentPushEvent {
	return s.events
}

// Cancel unsubscribes and closes the event channel. It is idempotent.
func (s *PushSubscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()
		close(s.events)
	})
}

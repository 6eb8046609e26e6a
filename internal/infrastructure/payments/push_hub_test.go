package payments

import (
	"testing"

	"repairtrack/internal/domain/entities"
)

func captured(requestID string) entities.PaymentPushEvent {
	return entities.PaymentPushEvent{RequestID: requestID, PaymentID: "pay-1", Status: entities.PushStatusCaptured}
}

func TestPushHub_PublishSubscribe(t *testing.T) {
	t.Run("predicate scopes delivery", func(t *testing.T) {
		hub := NewPushHub()
		sub := hub.Subscribe(func(e entities.PaymentPushEvent) bool { return e.RequestID == "req-1" })
		defer sub.Cancel()

		hub.Publish(captured("req-other"))
		hub.Publish(captured("req-1"))

		select {
		case e := <-sub.Events():
			if e.RequestID != "req-1" {
				t.Fatalf("unexpected event: %+v", e)
			}
		default:
			t.Fatalf("expected a delivered event")
		}
		select {
		case e := <-sub.Events():
			t.Fatalf("unexpected second event: %+v", e)
		default:
		}
	})

	t.Run("nil predicate receives everything", func(t *testing.T) {
		hub := NewPushHub()
		sub := hub.Subscribe(nil)
		defer sub.Cancel()

		hub.Publish(captured("req-1"))
		hub.Publish(captured("req-2"))

		for _, want := range []string{"req-1", "req-2"} {
			select {
			case e := <-sub.Events():
				if e.RequestID != want {
					t.Fatalf("expected %s, got %+v", want, e)
				}
			default:
				t.Fatalf("expected event for %s", want)
			}
		}
	})

	t.Run("full subscriber drops instead of blocking", func(t *testing.T) {
		hub := NewPushHub()
		sub := hub.Subscribe(nil)
		defer sub.Cancel()

		// One past the channel buffer; Publish must return without blocking.
		for i := 0; i < 17; i++ {
			hub.Publish(captured("req-1"))
		}

		delivered := 0
		for {
			select {
			case <-sub.Events():
				delivered++
				continue
			default:
			}
			break
		}
		if delivered != 16 {
			t.Fatalf("expected 16 buffered events, got %d", delivered)
		}
	})
}

func TestPushSubscription_Cancel(t *testing.T) {
	t.Run("stops delivery and closes the channel", func(t *testing.T) {
		hub := NewPushHub()
		sub := hub.Subscribe(nil)

		sub.Cancel()
		hub.Publish(captured("req-1"))

		e, ok := <-sub.Events()
		if ok {
			t.Fatalf("expected closed channel, got %+v", e)
		}
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		hub := NewPushHub()
		sub := hub.Subscribe(nil)

		sub.Cancel()
		sub.Cancel()
	})

	t.Run("other subscribers keep receiving", func(t *testing.T) {
		hub := NewPushHub()
		cancelled := hub.Subscribe(nil)
		alive := hub.Subscribe(nil)
		defer alive.Cancel()

		cancelled.Cancel()
		hub.Publish(captured("req-1"))

		select {
		case e := <-alive.Events():
			if e.RequestID != "req-1" {
				t.Fatalf("unexpected event: %+v", e)
			}
		default:
			t.Fatalf("expected delivery to the remaining subscriber")
		}
	})
}

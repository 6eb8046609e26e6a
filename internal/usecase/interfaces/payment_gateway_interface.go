package interfaces

import (
	"context"
	"repairtrack/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado
// Pago). The amount/currency given to CreateOrder always come from the
// stored quote, never from the caller.
//
// VerifySignature checks the provider proof (payment id + signature) against
// the order reference; it must not mutate any state.

type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency string, metadata map[string]string) (orderRef string, err error)
	VerifySignature(orderRef, paymentRef, signature string) bool
}

// IPushSubscription is a handle on a provider-push subscription. Cancel is
// a deterministic unsubscribe: no delivery is guaranteed afterwards.
type IPushSubscription interface {
	Events() <-chan entities.PaymentPushEvent
	Cancel()
}

// IPushHub fans provider capture events out to scoped subscribers (one per
// open request detail view).
type IPushHub interface {
	Subscribe(predicate func(entities.PaymentPushEvent) bool) IPushSubscription
	Publish(event entities.PaymentPushEvent)
}

package interfaces

import "context"

// INotifier is the fire-and-forget notification sink. Delivery failures
// are logged by the caller and never roll back the triggering state change.

type INotifier interface {
	Notify(ctx context.Context, kind, title, message, recipient, requestID string, extra map[string]string) error
}

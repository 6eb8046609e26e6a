package notifications

import (
	"context"
	"log"

	"repairtrack/internal/usecase/interfaces"
)

// LogNotifier is the default notification sink: it writes the notification
// to the service log. Push/email transports plug in behind the same
// interface; the core treats every sink as fire-and-forget.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, kind, title, message, recipient, requestID string, extra map[string]string) error {
	log.Printf("[notify][sink] kind=%s request_id=%s recipient=%s title=%q message=%q extra=%v", kind, requestID, recipient, title, message, extra)
	return nil
}

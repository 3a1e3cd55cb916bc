// Package notify delivers formatted sure-bet alerts. Delivery failure is
// logged by callers and never rolls back the capture pipeline.
package notify

import "context"

// Sink delivers one formatted alert message.
type Sink interface {
	Send(ctx context.Context, text string) error
}

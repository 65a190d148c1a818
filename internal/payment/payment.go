package payment

import "context"

// Gateway abstracts the third-party payment provider. CreateIntent is the
// only call in the system that waits on an external service, so it is the
// only one carrying cancellation through ctx.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	VerifySignature(intentID, paymentID, signature string) error
}

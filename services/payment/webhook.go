package payment

import (
	"context"
	"encoding/json"
	"errors"

	bookingRepo "capetown/database/repository/booking"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// WebhookProcessor consumes asynchronous Stripe events and is the sole
// writer of terminal booking statuses. Stripe delivers at least once, so
// every mutation below must stay idempotent.
type WebhookProcessor struct {
	repo   bookingRepo.BookingRepository
	secret string
	logger *zap.Logger
}

// NewWebhookProcessor builds a processor bound to the shared webhook secret.
func NewWebhookProcessor(repo bookingRepo.BookingRepository, secret string, logger *zap.Logger) *WebhookProcessor {
	return &WebhookProcessor{repo: repo, secret: secret, logger: logger}
}

// Process verifies the payload signature and applies the event to the
// booking store. A *SignatureError means the payload was never trusted
// and nothing was mutated; any other error means the mutation was
// attempted and Stripe should redeliver.
func (p *WebhookProcessor) Process(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, p.secret)
	if err != nil {
		p.logger.Warn("webhook signature verification failed", zap.Error(err))
		return &SignatureError{Err: err}
	}

	p.logger.Info("received webhook event", zap.String("type", string(event.Type)))

	switch event.Type {
	case "checkout.session.completed":
		return p.handleCheckoutCompleted(ctx, event)
	case "payment_intent.payment_failed":
		return p.handlePaymentFailed(ctx, event)
	case "charge.refunded":
		return p.handleChargeRefunded(ctx, event)
	default:
		p.logger.Info("unhandled webhook event type", zap.String("type", string(event.Type)))
		return nil
	}
}

func (p *WebhookProcessor) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return err
	}

	bookingID := sess.ClientReferenceID
	if bookingID == "" {
		bookingID = sess.Metadata["bookingId"]
	}
	if bookingID == "" {
		p.logger.Warn("checkout completed without a booking reference", zap.String("sessionID", sess.ID))
		return nil
	}

	paymentIntent := ""
	if sess.PaymentIntent != nil {
		paymentIntent = sess.PaymentIntent.ID
	}

	if err := p.markBooking(ctx, bookingID, func() error {
		return p.repo.MarkPaid(ctx, bookingID, sess.ID, paymentIntent)
	}); err != nil {
		return err
	}

	p.logger.Info("booking marked paid",
		zap.String("bookingID", bookingID),
		zap.String("sessionID", sess.ID))
	return nil
}

func (p *WebhookProcessor) handlePaymentFailed(ctx context.Context, event stripe.Event) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return err
	}

	bookingID := intent.Metadata["bookingId"]
	if bookingID == "" {
		p.logger.Warn("payment failure without a booking reference", zap.String("intentID", intent.ID))
		return nil
	}

	reason := "Unknown error"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		reason = intent.LastPaymentError.Msg
	}

	if err := p.markBooking(ctx, bookingID, func() error {
		return p.repo.MarkPaymentFailed(ctx, bookingID, reason)
	}); err != nil {
		return err
	}

	p.logger.Info("booking marked payment_failed",
		zap.String("bookingID", bookingID),
		zap.String("reason", reason))
	return nil
}

func (p *WebhookProcessor) handleChargeRefunded(ctx context.Context, event stripe.Event) error {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return err
	}

	bookingID := charge.Metadata["bookingId"]
	if bookingID == "" {
		p.logger.Warn("refund without a booking reference", zap.String("chargeID", charge.ID))
		return nil
	}

	refunded := float64(charge.AmountRefunded) / 100

	if err := p.markBooking(ctx, bookingID, func() error {
		return p.repo.MarkRefunded(ctx, bookingID, refunded)
	}); err != nil {
		return err
	}

	p.logger.Info("booking marked refunded",
		zap.String("bookingID", bookingID),
		zap.Float64("refundAmount", refunded))
	return nil
}

// markBooking runs a status mutation and decides whether its failure is
// worth a redelivery. A missing booking or an illegal transition will
// not heal on retry, so those are acknowledged and only logged.
func (p *WebhookProcessor) markBooking(ctx context.Context, bookingID string, mutate func() error) error {
	err := mutate()
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingRepo.ErrNotFound) || errors.Is(err, bookingRepo.ErrInvalidTransition) {
		p.logger.Warn("webhook mutation dropped",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil
	}
	return err
}

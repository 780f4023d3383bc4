package bookingRepo

import (
	"context"
	"time"

	"capetown/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// MarkPaid records a completed checkout. Redeliveries of the same event
// are a no-op: a booking already carrying the paid status keeps its
// original payment metadata.
func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id, sessionID, paymentIntent string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":                models.BookingStatusPaid,
		"paid_at":               now,
		"stripe_session_id":     sessionID,
		"stripe_payment_intent": paymentIntent,
		"updated_at":            now,
	}}
	return r.transition(ctx, id, models.BookingStatusPaid, update)
}

// MarkPaymentFailed records a failed payment attempt with its reason.
func (r *mongoBookingRepo) MarkPaymentFailed(ctx context.Context, id, reason string) error {
	update := bson.M{"$set": bson.M{
		"status":         models.BookingStatusPaymentFailed,
		"failure_reason": reason,
		"updated_at":     time.Now(),
	}}
	return r.transition(ctx, id, models.BookingStatusPaymentFailed, update)
}

// MarkRefunded records a processed refund. Amount is in ZAR major units.
func (r *mongoBookingRepo) MarkRefunded(ctx context.Context, id string, amount float64) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":        models.BookingStatusRefunded,
		"refunded_at":   now,
		"refund_amount": amount,
		"updated_at":    now,
	}}
	return r.transition(ctx, id, models.BookingStatusRefunded, update)
}

// transition applies a guarded status update. The filter only matches
// documents whose current status may legally move to the target, so a
// racing writer can never push a booking backwards.
func (r *mongoBookingRepo) transition(ctx context.Context, id, target string, update bson.M) error {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": models.TransitionSources(target)},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: either the booking is gone, it already carries the
	// target status (redelivered event), or the transition is illegal.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == target {
		return nil
	}
	return ErrInvalidTransition
}

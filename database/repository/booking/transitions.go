package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Non-terminal statuses a cancellation may interrupt.
var activeStatuses = []string{"confirmed", "in-progress"}

// UpdateStatusIf moves the booking from expected to next in a single
// conditional update. It reports false when the document exists but its
// status no longer matches expected, so of two racing identical transitions
// exactly one observes the match.
func (r *MongoBookingRepo) UpdateStatusIf(id, expected, next string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "booking_status": expected}
	update := bson.M{"$set": bson.M{"booking_status": next, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to transition booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// CancelIfActive cancels the booking and records the reason, provided the
// booking is still in a non-terminal status. Same one-winner semantics as
// UpdateStatusIf.
func (r *MongoBookingRepo) CancelIfActive(id, reason string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "booking_status": bson.M{"$in": activeStatuses}}
	update := bson.M{"$set": bson.M{
		"booking_status":      "cancelled",
		"cancellation_reason": reason,
		"updated_at":          time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

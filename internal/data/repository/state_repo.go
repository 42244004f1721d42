package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrSlotMismatch means the read-back after a slot write returned a
// different value than was written. The design anticipates clobber bugs
// (a second tab writing concurrently), so the mismatch is surfaced instead
// of silently ignored.
var ErrSlotMismatch = errors.New("booking slot read-back mismatch")

// ErrSlotEmpty means no booking identifier is stored for the user.
var ErrSlotEmpty = errors.New("booking slot is empty")

// slotTTL bounds how long a pending booking attempt stays correlated. The
// slot is a single mutable cell per user, written once per attempt.
const slotTTL = 24 * time.Hour

// StateRepository is the durable client-state slot: the last created
// booking identifier plus its creation timestamp. It has to survive the
// full-page checkout redirect, which is why it lives in redis and not in
// process memory.
type StateRepository interface {
	SaveLastBooking(ctx context.Context, userID, bookingID string, at time.Time) error
	LastBooking(ctx context.Context, userID string) (bookingID string, at time.Time, err error)
}

type stateRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewStateRepository(rdb *redis.Client, log *zap.Logger) StateRepository {
	return &stateRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "state")),
	}
}

func bookingSlotKey(userID string) string {
	return fmt.Sprintf("storefront:last_booking:%s", userID)
}

func bookingSlotTimestampKey(userID string) string {
	return fmt.Sprintf("storefront:last_booking_ts:%s", userID)
}

// SaveLastBooking writes the slot and immediately reads it back. A
// mismatch is logged as a correctness anomaly and returned as
// ErrSlotMismatch; callers decide whether the flow continues.
func (r *stateRepository) SaveLastBooking(ctx context.Context, userID, bookingID string, at time.Time) error {
	key := bookingSlotKey(userID)

	if err := r.rdb.Set(ctx, key, bookingID, slotTTL).Err(); err != nil {
		return fmt.Errorf("write booking slot: %w", err)
	}

	if err := r.rdb.Set(ctx, bookingSlotTimestampKey(userID), at.UTC().Format(time.RFC3339), slotTTL).Err(); err != nil {
		return fmt.Errorf("write booking slot timestamp: %w", err)
	}

	readBack, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("read back booking slot: %w", err)
	}

	if readBack != bookingID {
		r.log.Error("Booking slot read-back mismatch",
			zap.String("user_id", userID),
			zap.String("expected", bookingID),
			zap.String("got", readBack),
		)
		return ErrSlotMismatch
	}

	return nil
}

func (r *stateRepository) LastBooking(ctx context.Context, userID string) (string, time.Time, error) {
	bookingID, err := r.rdb.Get(ctx, bookingSlotKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", time.Time{}, ErrSlotEmpty
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read booking slot: %w", err)
	}

	var at time.Time
	if raw, err := r.rdb.Get(ctx, bookingSlotTimestampKey(userID)).Result(); err == nil {
		if parsed, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
			at = parsed
		}
	}

	return bookingID, at, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./handoff.go -destination=../mocks/handoff_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wakens/config"
	"wakens/infras/otel"
	"wakens/internal/domains/booking/model"
	"wakens/shared"
	"wakens/shared/constant"
	"wakens/shared/logger"

	"github.com/redis/go-redis/v9"
)

const defaultHandoffTTL = 15 * time.Minute

// Handoff holds a freshly submitted booking for a single confirmation-page
// read. Claim removes the snapshot, so a second Claim for the same booking
// reports not found even before the TTL expires.
type Handoff interface {
	Put(ctx context.Context, booking model.Booking) error
	Claim(ctx context.Context, bookingID string) (model.Booking, bool, error)
}

type handoffImpl struct {
	client *redis.Client
	ttl    time.Duration
	otel   otel.Otel
}

func NewHandoff(client *redis.Client, conf *config.Config, otel otel.Otel) Handoff {
	return &handoffImpl{
		client: client,
		ttl:    handoffTTL(conf),
		otel:   otel,
	}
}

func handoffTTL(conf *config.Config) time.Duration {
	if conf.Booking.HandoffTTLSeconds <= 0 {
		return defaultHandoffTTL
	}

	return time.Duration(conf.Booking.HandoffTTLSeconds) * time.Second
}

func handoffKey(bookingID string) string {
	return shared.BuildCacheKey(model.HandoffKeyPrefix, bookingID)
}

func (repo *handoffImpl) Put(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.HandoffPut", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := json.Marshal(booking)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to marshal booking (%s): %w", model.EntityName, err)
	}

	err = repo.client.Set(ctx, handoffKey(booking.BookingID), payload, repo.ttl).Err()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to store booking handoff (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *handoffImpl) Claim(ctx context.Context, bookingID string) (booking model.Booking, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.HandoffClaim", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	// GETDEL makes the read-and-invalidate a single round trip.
	payload, err := repo.client.GetDel(ctx, handoffKey(bookingID)).Result()
	if errors.Is(err, redis.Nil) {
		return model.Booking{}, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, false, fmt.Errorf("failed to claim booking handoff (%s): %w", model.EntityName, err)
	}

	if err = json.Unmarshal([]byte(payload), &booking); err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, false, fmt.Errorf("failed to unmarshal booking handoff (%s): %w", model.EntityName, err)
	}

	return booking, true, nil
}

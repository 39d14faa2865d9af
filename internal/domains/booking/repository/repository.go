package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"wakens/infras/otel"
	"wakens/internal/domains/booking/model"
	"wakens/shared/constant"
	"wakens/shared/logger"
	"wakens/shared/timezone"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Booking persists submitted booking snapshots. Visibility after Create is
// eventually consistent; callers never rely on reading their own write.
type Booking interface {
	Create(ctx context.Context, booking model.Booking) (string, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, bool, error)
}

type repositoryImpl struct {
	collection *mongo.Collection
	otel       otel.Otel
}

func New(db *mongo.Database, otel otel.Otel) Booking {
	return &repositoryImpl{
		collection: db.Collection(model.CollectionName),
		otel:       otel,
	}
}

// Create stores the snapshot with a server-assigned identifier, creation
// time and confirmed status, regardless of what the caller filled in.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) (id string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	applyDefaults(&booking)

	if _, err = repo.collection.InsertOne(ctx, booking); err != nil {
		logger.ErrorWithStack(err)

		return constant.Empty, fmt.Errorf("failed to create booking (%s): %w", model.EntityName, err)
	}

	return booking.ID, nil
}

func (repo *repositoryImpl) List(ctx context.Context, filter model.ListFilter) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := bson.M{}

	if filter.Status != constant.Empty {
		query[model.FieldStatus] = filter.Status
	}

	if filter.Search != constant.Empty {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{model.FieldGuestName: pattern},
			{model.FieldGuestEmail: pattern},
			{model.FieldBookingID: pattern},
			{model.FieldHotelName: pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: model.FieldCreatedAt, Value: -1}})

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list bookings (%s): %w", model.EntityName, err)
	}
	defer cursor.Close(ctx)

	bookings = []model.Booking{}

	if err = cursor.All(ctx, &bookings); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to decode bookings (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

// Get resolves either the storage identifier or the user-facing booking id.
func (repo *repositoryImpl) Get(ctx context.Context, id string) (booking model.Booking, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := bson.M{"$or": []bson.M{
		{"_id": id},
		{model.FieldBookingID: id},
	}}

	err = repo.collection.FindOne(ctx, query).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return booking, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, false, fmt.Errorf("failed to get booking (%s): %w", model.EntityName, err)
	}

	return booking, true, nil
}

// applyDefaults fills the server-assigned fields. Callers never supply
// them; a snapshot coming out of the workflow already carries them.
func applyDefaults(booking *model.Booking) {
	if booking.ID == constant.Empty {
		booking.ID = uuid.NewString()
	}

	if booking.Status == constant.Empty {
		booking.Status = constant.BookingStatusConfirmed
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = timezone.Now()
	}
}

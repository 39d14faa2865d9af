package repository

//go:generate go run go.uber.org/mock/mockgen -source=./review.go -destination=../mocks/review_mock.go -package=mocks

import (
	"context"

	"wakens/infras/otel"
	"wakens/infras/postgres"
	"wakens/internal/domains/hotel/model"
	gDto "wakens/shared/dto"
	gRepo "wakens/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, review model.Review) error
	GetByHotel(ctx context.Context, hotelID string) ([]model.Review, error)
}

type reviewRepositoryImpl struct {
	gRepo.Repository[model.Review]
	otel otel.Otel
}

func NewReview(db *postgres.Connection, otel otel.Otel) Review {
	return &reviewRepositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.ReviewEntityName, model.ReviewTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *reviewRepositoryImpl) GetByHotel(ctx context.Context, hotelID string) ([]model.Review, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.ReviewTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	return repo.Repository.GetAll(ctx, params, filter)
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"wakens/infras/otel"
	"wakens/infras/postgres"
	"wakens/internal/domains/room/model"
	"wakens/shared"
	gDto "wakens/shared/dto"
	gRepo "wakens/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	GetByHotel(ctx context.Context, hotelID string) ([]model.Room, error)
}

type roomRepositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &roomRepositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *roomRepositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	return repo.Repository.GetAll(ctx, params, gDto.FilterGroup{})
}

func (repo *roomRepositoryImpl) Get(ctx context.Context, id string) (model.Room, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *roomRepositoryImpl) GetByHotel(ctx context.Context, hotelID string) ([]model.Room, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	return repo.Repository.GetAll(ctx, params, filter)
}

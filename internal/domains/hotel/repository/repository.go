package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"wakens/infras/otel"
	"wakens/infras/postgres"
	"wakens/internal/domains/hotel/model"
	"wakens/shared"
	"wakens/shared/constant"
	gDto "wakens/shared/dto"
	gRepo "wakens/shared/repository"
)

type Hotel interface {
	Insert(ctx context.Context, hotel model.Hotel) error
	GetAll(ctx context.Context) ([]model.Hotel, error)
	Get(ctx context.Context, id string) (model.Hotel, error)
	SearchByLocation(ctx context.Context, location string) ([]model.Hotel, error)
	EcoPicks(ctx context.Context) ([]model.Hotel, error)
	Count(ctx context.Context) (int, error)
}

type hotelRepositoryImpl struct {
	gRepo.Repository[model.Hotel]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &hotelRepositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *hotelRepositoryImpl) GetAll(ctx context.Context) ([]model.Hotel, error) {
	return repo.Repository.GetAll(ctx, byNameAsc(), gDto.FilterGroup{})
}

func (repo *hotelRepositoryImpl) Get(ctx context.Context, id string) (model.Hotel, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *hotelRepositoryImpl) SearchByLocation(ctx context.Context, location string) ([]model.Hotel, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	return repo.Repository.GetAll(ctx, byNameAsc(), filter)
}

// EcoPicks returns the hotels matching the "eco" search preset, best
// combined score first.
func (repo *hotelRepositoryImpl) EcoPicks(ctx context.Context) ([]model.Hotel, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEcoScore,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    constant.EcoPresetMinEcoScore,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAirQuality,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    constant.EcoPresetMinAirQuality,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s + %s", model.FieldEcoScore, model.FieldAirQuality),
		SortDir: gDto.SortDirDesc,
	}

	return repo.Repository.GetAll(ctx, params, filter)
}

func (repo *hotelRepositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{})
}

func byNameAsc() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}
}

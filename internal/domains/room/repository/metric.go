package repository

//go:generate go run go.uber.org/mock/mockgen -source=./metric.go -destination=../mocks/metric_mock.go -package=mocks

import (
	"context"

	"wakens/infras/otel"
	"wakens/infras/postgres"
	"wakens/internal/domains/room/model"
	"wakens/shared"
	gRepo "wakens/shared/repository"
)

type Metric interface {
	Insert(ctx context.Context, metric model.Metric) error
	GetByRoom(ctx context.Context, roomID string) (model.Metric, error)
}

type metricRepositoryImpl struct {
	gRepo.Repository[model.Metric]
	otel otel.Otel
}

func NewMetric(db *postgres.Connection, otel otel.Otel) Metric {
	return &metricRepositoryImpl{
		Repository: gRepo.NewRepository[model.Metric](model.MetricEntityName, model.MetricTableName, model.FieldRoomID, db, otel),
		otel:       otel,
	}
}

func (repo *metricRepositoryImpl) GetByRoom(ctx context.Context, roomID string) (model.Metric, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(roomID, model.FieldRoomID, model.MetricTableName))
}

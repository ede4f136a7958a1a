package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"chefbook/infras/otel"
	"chefbook/infras/postgres"
	"chefbook/internal/domains/chef/model"
	gDto "chefbook/shared/dto"
	gRepo "chefbook/shared/repository"
)

type Chef interface {
	Insert(ctx context.Context, model model.Chef) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Chef, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Chef, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Chef]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Chef {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Chef](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

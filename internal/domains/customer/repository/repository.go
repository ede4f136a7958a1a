package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"chefbook/infras/otel"
	"chefbook/infras/postgres"
	"chefbook/internal/domains/customer/model"
	gDto "chefbook/shared/dto"
	gRepo "chefbook/shared/repository"
)

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

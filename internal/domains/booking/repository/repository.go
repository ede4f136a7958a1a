package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"chefbook/infras/otel"
	"chefbook/infras/postgres"
	"chefbook/internal/domains/booking/model"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	gRepo "chefbook/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// StatusFilter matches a booking only while it is still in status. Updates guarded by it
// fail to apply when another writer got there first.
func StatusFilter(id, status string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldStatus, status),
	)
}

// PartyFilter selects the bookings where userID plays role, optionally narrowed to status.
func PartyFilter(role, userID, status string) gDto.FilterGroup {
	field := model.FieldCustomerID
	if role == constant.RoleChef {
		field = model.FieldChefID
	}

	filters := []any{gDto.Eq(model.TableName, field, userID)}
	if status != "" {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	return gDto.And(filters...)
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"chefbook/infras/otel"
	"chefbook/infras/postgres"
	"chefbook/internal/domains/calendar/model"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	gRepo "chefbook/shared/repository"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	Replace(ctx context.Context, chefID string, from, to time.Time, models []model.Availability) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RangeFilter selects a chef's rows with from <= date <= to.
func RangeFilter(chefID string, from, to time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldChefID, chefID),
		gDto.Between(model.TableName, model.FieldDate, from, to),
	)
}

// Replace swaps every row of the chef inside [from, to] for models in one transaction.
func (r *repositoryImpl) Replace(ctx context.Context, chefID string, from, to time.Time, models []model.Availability) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Replace")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Str("chef_id", chefID).Msg("failed to rollback availability replace")
		}
	}()

	if err = r.DeleteTx(ctx, tx, RangeFilter(chefID, from, to)); err != nil {
		return err //nolint:wrapcheck
	}

	if len(models) > 0 {
		if err = r.InsertBulkTx(ctx, tx, models); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit availability replace: %w", err)
	}

	return nil
}

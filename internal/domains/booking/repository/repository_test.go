package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"chefbook/infras/otel/mocks"
	"chefbook/infras/postgres"
	"chefbook/internal/domains/booking/model"
	"chefbook/internal/domains/booking/repository"
	"chefbook/shared/constant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	return repository.New(conn, mocks.NewOtel()), mock
}

func TestStatusFilter(t *testing.T) {
	filter := repository.StatusFilter("b-1", "pending")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"id": "b-1", "status": "pending"}, args)
}

func TestPartyFilter(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status string
		where  string
	}{
		{"customer", constant.RoleCustomer, "", "(bookings.customer_id = :customer_id)"},
		{"chef", constant.RoleChef, "", "(bookings.chef_id = :chef_id)"},
		{"chef with status", constant.RoleChef, "confirmed", "(bookings.chef_id = :chef_id AND bookings.status = :status)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.PartyFilter(tt.role, "user-1", tt.status)

			where, _ := filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
		})
	}
}

func TestUpdateAffected_GuardedByStatus(t *testing.T) {
	repo, mock := newRepo(t)

	now := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET modified_at = $1, modified_by = $2, status = $3")).
		WithArgs(now, "chef-1", "confirmed", "b-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateAffected(context.Background(), map[string]any{
		model.FieldStatus:        "confirmed",
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: "chef-1",
	}, repository.StatusFilter("b-1", "pending"))

	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

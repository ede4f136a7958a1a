package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"chefbook/config"
	"chefbook/infras/jwt"
	jwtMocks "chefbook/infras/jwt/mocks"
	"chefbook/infras/otel/mocks"
	customerMocks "chefbook/internal/domains/customer/mocks"
	"chefbook/internal/domains/customer/model"
	"chefbook/internal/domains/customer/model/dto"
	"chefbook/internal/domains/customer/service"
	"chefbook/shared/cache"
	cacheMocks "chefbook/shared/cache/mocks"
	"chefbook/shared/constant"
	"chefbook/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Customer
	repo  *customerMocks.MockCustomer
	cache *cacheMocks.MockRedisCache
	jwt   *jwtMocks.MockJWT
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  customerMocks.NewMockCustomer(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.jwt)

	return f
}

func actor(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestCustomerService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:       "ana@example.com",
		Mobile:      "+351911111111",
		Password:    "correcthorse",
		FullName:    "Ana Silva",
		DietaryTags: []string{"vegetarian"},
	}

	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.jwt.EXPECT().GenerateToken(gomock.Any(), "ana@example.com", constant.RoleCustomer).
			Return(jwt.Token{AccessToken: "tok"}, nil)

		res, err := f.svc.Register(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token.AccessToken)
		assert.Equal(t, []string{"vegetarian"}, res.Customer.DietaryTags)
		assert.True(t, res.Customer.Active)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), req)

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("concurrent signup with the same email", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (customer): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}))

		_, err := f.svc.Register(context.Background(), req)

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("missing dietary tags", func(t *testing.T) {
		f := setup(t)

		bad := req
		bad.DietaryTags = nil

		_, err := f.svc.Register(context.Background(), bad)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("insert error", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("own record", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "customer:get:cu-1", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: "cu-1", FullName: "Ana"}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Get(actor("cu-1", constant.RoleCustomer), "cu-1")

		require.NoError(t, err)
		assert.Equal(t, "Ana", res.FullName)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("someone else", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Get(actor("cu-2", constant.RoleCustomer), "cu-1")

		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		_, err := f.svc.Get(actor("admin-1", constant.RoleAdmin), "cu-1")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	t.Run("updates and drops cache", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Ana Maria", fields[model.FieldFullName])
				assert.NotContains(t, fields, model.FieldMobile)
				assert.Equal(t, "cu-1", fields[constant.FieldModifiedBy])

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), "customer:get:cu-1").Return(nil).AnyTimes()

		err := f.svc.UpdateProfile(actor("cu-1", constant.RoleCustomer), dto.UpdateProfileRequest{FullName: "Ana Maria"}, "cu-1")

		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("empty request", func(t *testing.T) {
		f := setup(t)

		err := f.svc.UpdateProfile(actor("cu-1", constant.RoleCustomer), dto.UpdateProfileRequest{}, "cu-1")

		assert.True(t, failure.IsKind(err, failure.KindBadRequest))
	})

	t.Run("chef may not edit customers", func(t *testing.T) {
		f := setup(t)

		err := f.svc.UpdateProfile(actor("cu-1", constant.RoleChef), dto.UpdateProfileRequest{FullName: "X Y"}, "cu-1")

		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})
}

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
	chefMocks "chefbook/internal/domains/chef/mocks"
	"chefbook/internal/domains/chef/model"
	"chefbook/internal/domains/chef/model/dto"
	"chefbook/internal/domains/chef/service"
	"chefbook/shared/cache"
	cacheMocks "chefbook/shared/cache/mocks"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	gModel "chefbook/shared/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Chef
	repo  *chefMocks.MockChef
	cache *cacheMocks.MockRedisCache
	jwt   *jwtMocks.MockJWT
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  chefMocks.NewMockChef(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.jwt)

	return f
}

func chefs() []model.Chef {
	at := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	return []model.Chef{
		{ID: "c1", Name: "Marco", Location: "Lisbon", Specialties: []string{"Italian"}, Rating: 4.8, ReviewCount: 10, PriceMin: 80, PriceMax: 150, EventTypes: []string{"personal"}, Metadata: gModel.NewMetadata("c1", at)},
		{ID: "c2", Name: "Aiko", Location: "Porto", Specialties: []string{"Japanese"}, Rating: 4.9, ReviewCount: 5, PriceMin: 120, PriceMax: 300, EventTypes: []string{"corporate"}, Metadata: gModel.NewMetadata("c2", at)},
		{ID: "c3", Name: "Lena", Location: "Lisbon", Specialties: []string{"Vegan"}, Rating: 4.2, ReviewCount: 50, PriceMin: 40, PriceMax: 90, EventTypes: []string{"personal"}, Metadata: gModel.NewMetadata("c3", at)},
	}
}

func TestChefService_Search(t *testing.T) {
	t.Run("filters sorts and pages", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "chef:catalog", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(chefs(), nil)
		f.cache.EXPECT().Save(gomock.Any(), "chef:catalog", gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := f.svc.Search(context.Background(), dto.SearchRequest{
			Locations: []string{"Lisbon"},
			Sort:      "price_asc",
			Limit:     1,
			Page:      2,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, res.ActiveFilters)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Chefs, 1)
		assert.Equal(t, "c1", res.Chefs[0].ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cache hit uses cached catalog", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "chef:catalog", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]model.Chef)) = chefs()

				return nil
			})

		res, err := f.svc.Search(context.Background(), dto.SearchRequest{Query: "aiko"})

		require.NoError(t, err)
		assert.Zero(t, res.ActiveFilters)
		require.Len(t, res.Chefs, 1)
		assert.Equal(t, "c2", res.Chefs[0].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]model.Chef)) = chefs()

				return nil
			})

		res, err := f.svc.Search(context.Background(), dto.SearchRequest{Page: 9, Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, res.Chefs)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("invalid sort", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{Sort: "cheapest"})

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("repository error", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{})

		assert.Error(t, err)
	})
}

func TestChefService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "chef:get:c1", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(chefs()[0], nil)
		f.cache.EXPECT().Save(gomock.Any(), "chef:get:c1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Get(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, "Marco", res.Name)
		assert.Equal(t, dto.PriceRange{Min: 80, Max: 150}, res.PriceRange)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Chef{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "marco@example.com",
		Mobile:      "+351900000000",
		Password:    "supersecret",
		Name:        "Marco",
		Location:    "Lisbon",
		Specialties: []string{"Italian"},
		PriceMin:    50,
		PriceMax:    120,
		GuestMin:    2,
		GuestMax:    12,
		Photos:      []string{"https://cdn.example.com/chef/a.jpg"},
	}
}

func TestChefService_Register(t *testing.T) {
	t.Run("creates chef and issues token", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, chef model.Chef) error {
				assert.NotEqual(t, "supersecret", chef.Password)
				assert.Equal(t, []string{"personal"}, []string(chef.EventTypes))

				return nil
			})
		f.jwt.EXPECT().GenerateToken(gomock.Any(), "marco@example.com", constant.RoleChef).
			Return(jwt.Token{AccessToken: "token", TokenType: "Bearer"}, nil)
		f.cache.EXPECT().Clear(gomock.Any(), "chef:catalog*").Return(nil).AnyTimes()

		res, err := f.svc.Register(context.Background(), registerRequest())

		require.NoError(t, err)
		assert.Equal(t, "token", res.Token.AccessToken)
		assert.Equal(t, "Marco", res.Chef.Name)
		assert.NotEmpty(t, res.Chef.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), registerRequest())

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("email taken between check and insert", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (chef): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}))

		_, err := f.svc.Register(context.Background(), registerRequest())

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("invalid guest range", func(t *testing.T) {
		f := setup(t)

		req := registerRequest()
		req.GuestMax = 1

		_, err := f.svc.Register(context.Background(), req)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})
}

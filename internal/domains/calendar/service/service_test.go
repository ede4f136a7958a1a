package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chefbook/config"
	"chefbook/infras/otel/mocks"
	calendarMocks "chefbook/internal/domains/calendar/mocks"
	"chefbook/internal/domains/calendar/model"
	"chefbook/internal/domains/calendar/model/dto"
	"chefbook/internal/domains/calendar/service"
	"chefbook/shared/cache"
	cacheMocks "chefbook/shared/cache/mocks"
	"chefbook/shared/constant"
	"chefbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Calendar, *calendarMocks.MockAvailability, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := calendarMocks.NewMockAvailability(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func chefCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleChef)
}

func TestCalendarService_MonthGrid(t *testing.T) {
	t.Run("marks stored dates available", func(t *testing.T) {
		svc, mockRepo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Availability{
			{ChefID: "chef-1", Date: time.Date(2099, time.March, 10, 0, 0, 0, 0, time.UTC), Available: true},
			{ChefID: "chef-1", Date: time.Date(2099, time.March, 11, 0, 0, 0, 0, time.UTC), Available: false},
		}, nil)

		res, err := svc.MonthGrid(context.Background(), "chef-1", dto.MonthGridRequest{
			Year: 2099, Month: 3, Mode: "single", Selected: []string{"2099-03-10"},
		})

		require.NoError(t, err)
		require.Len(t, res.Days, model.GridSize)

		available := []string{}
		selected := []string{}
		for _, d := range res.Days {
			if d.IsAvailable {
				available = append(available, d.Date)
			}
			if d.IsSelected {
				selected = append(selected, d.Date)
			}
		}

		assert.Equal(t, []string{"2099-03-10"}, available)
		assert.Equal(t, []string{"2099-03-10"}, selected)
		assert.Equal(t, dto.MonthRef{Year: 2099, Month: 4}, res.Next)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), "calendar:availability:chef-1:2099-03-01:2099-03-31", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]string)) = []string{"2099-03-15"}

				return nil
			})

		res, err := svc.MonthGrid(context.Background(), "chef-1", dto.MonthGridRequest{Year: 2099, Month: 3})

		require.NoError(t, err)
		assert.Equal(t, "multi", res.Mode)

		count := 0
		for _, d := range res.Days {
			if d.IsAvailable {
				count++
				assert.Equal(t, "2099-03-15", d.Date)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.MonthGrid(context.Background(), "chef-1", dto.MonthGridRequest{Year: 2099, Month: 13})

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.MonthGrid(context.Background(), "chef-1", dto.MonthGridRequest{Year: 2099, Month: 3})

		assert.Error(t, err)
	})
}

func TestCalendarService_SetAvailability(t *testing.T) {
	req := dto.SetAvailabilityRequest{
		From:  "2099-03-01",
		To:    "2099-03-31",
		Dates: []string{"2099-03-10", "2099-03-12"},
	}

	t.Run("chef replaces own range", func(t *testing.T) {
		svc, mockRepo, mockCache := setup(t)

		mockRepo.EXPECT().
			Replace(gomock.Any(), "chef-1", time.Date(2099, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2099, time.March, 31, 0, 0, 0, 0, time.UTC), gomock.Len(2)).
			Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "calendar:availability:chef-1:*").Return(nil).AnyTimes()

		err := svc.SetAvailability(chefCtx("chef-1"), "chef-1", req)

		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("another chef is rejected", func(t *testing.T) {
		svc, _, _ := setup(t)

		err := svc.SetAvailability(chefCtx("chef-2"), "chef-1", req)

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("customer is rejected", func(t *testing.T) {
		svc, _, _ := setup(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "chef-1")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)

		err := svc.SetAvailability(ctx, "chef-1", req)

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("date outside range", func(t *testing.T) {
		svc, _, _ := setup(t)

		bad := req
		bad.Dates = []string{"2099-04-01"}

		err := svc.SetAvailability(chefCtx("chef-1"), "chef-1", bad)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := setup(t)

		mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := svc.SetAvailability(chefCtx("chef-1"), "chef-1", req)

		assert.Error(t, err)
	})
}

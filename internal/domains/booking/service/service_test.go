package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"chefbook/config"
	otelMocks "chefbook/infras/otel/mocks"
	"chefbook/internal/domains/booking/mocks"
	"chefbook/internal/domains/booking/model"
	"chefbook/internal/domains/booking/model/dto"
	"chefbook/internal/domains/booking/model/lifecycle"
	"chefbook/internal/domains/booking/service"
	calendarModel "chefbook/internal/domains/calendar/model"
	chefDto "chefbook/internal/domains/chef/model/dto"
	notificationMocks "chefbook/internal/domains/notification/mocks"
	"chefbook/shared/cache"
	cacheMocks "chefbook/shared/cache/mocks"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	gModel "chefbook/shared/model"
	"chefbook/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Booking
	repo     *mocks.MockBooking
	chefs    *mocks.MockChefLookup
	calendar *mocks.MockAvailabilityLookup
	notifier *notificationMocks.MockDispatcher
	cache    *cacheMocks.MockRedisCache
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     mocks.NewMockBooking(ctrl),
		chefs:    mocks.NewMockChefLookup(ctrl),
		calendar: mocks.NewMockAvailabilityLookup(ctrl),
		notifier: notificationMocks.NewMockDispatcher(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.CancelCutoffHours = 24
	cfg.Booking.DefaultTimeSlot = "18:00"

	f.svc = service.New(f.repo, f.chefs, f.calendar, f.notifier, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func actor(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func day(offset int) string {
	return timezone.Now().AddDate(0, 0, offset).Format(constant.DayFormat)
}

func openDates(days ...string) calendarModel.DateSet {
	dates := make([]time.Time, len(days))
	for i, d := range days {
		dates[i], _ = time.Parse(constant.DayFormat, d)
	}

	return calendarModel.NewDateSet(dates...)
}

func chef() chefDto.ChefResponse {
	return chefDto.ChefResponse{
		ID:         "chef-1",
		Name:       "Marco",
		PriceRange: chefDto.PriceRange{Min: 50, Max: 120},
		GuestRange: &chefDto.GuestRange{Min: 2, Max: 12},
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ChefID:           "chef-1",
		ServiceType:      "private_dinner",
		MealTypes:        []string{"dinner"},
		Dates:            []string{day(12), day(10)},
		GuestCount:       4,
		Guests:           &dto.GuestBreakdown{Adults: 2, Teens: 1, Children: 1},
		CoursePreference: "three_course",
		DietaryTags:      []string{"vegetarian"},
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("creates a pending booking and notifies the chef", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Get(gomock.Any(), "chef-1").Return(chef(), nil)
		f.calendar.EXPECT().Provider(gomock.Any(), "chef-1", gomock.Any(), gomock.Any()).Return(openDates(day(10), day(12)), nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				assert.Equal(t, "cust-1", b.CustomerID)
				assert.Equal(t, string(lifecycle.StatusPending), b.Status)
				assert.Equal(t, []string{day(10), day(12)}, []string(b.Dates))
				assert.Equal(t, "18:00", b.TimeSlot)
				assert.Equal(t, 18, b.StartsAt.Hour())
				assert.InDelta(t, 400.0, b.Amount, 0.001)
				assert.Equal(t, 1, b.Children)

				return nil
			})
		f.notifier.EXPECT().Send(gomock.Any(), string(lifecycle.IntentRequested), "chef-1", gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil).AnyTimes()

		res, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
		assert.NotEmpty(t, res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chef(), nil)
		f.calendar.EXPECT().Provider(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(openDates(day(10), day(12)), nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down")).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), createRequest())

		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("chef removed before the insert lands", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chef(), nil)
		f.calendar.EXPECT().Provider(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(openDates(day(10), day(12)), nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}))

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), createRequest())

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("only customers may book", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Create(actor("chef-1", constant.RoleChef), createRequest())

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("guest breakdown must add up", func(t *testing.T) {
		f := setup(t)

		req := createRequest()
		req.Guests = &dto.GuestBreakdown{Adults: 1}

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), req)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("guest count outside chef range", func(t *testing.T) {
		f := setup(t)

		req := createRequest()
		req.GuestCount = 20
		req.Guests = nil

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chef(), nil)

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), req)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("date in the past", func(t *testing.T) {
		f := setup(t)

		req := createRequest()
		req.Dates = []string{day(-1)}

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chef(), nil)

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), req)

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("chef unavailable on a date", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chef(), nil)
		f.calendar.EXPECT().Provider(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(openDates(day(10)), nil)

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), createRequest())

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("unknown chef", func(t *testing.T) {
		f := setup(t)

		f.chefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(chefDto.ChefResponse{}, failure.NotFound("chef not found"))

		_, err := f.svc.Create(actor("cust-1", constant.RoleCustomer), createRequest())

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func stored(status lifecycle.Status, startsIn time.Duration) model.Booking {
	at := timezone.Now().Add(-time.Hour)

	return model.Booking{
		ID:         "b-1",
		CustomerID: "cust-1",
		ChefID:     "chef-1",
		Status:     string(status),
		StartsAt:   timezone.Now().Add(startsIn),
		GuestCount: 2,
		Adults:     2,
		Metadata:   gModel.NewMetadata("cust-1", at),
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("chef accepts a pending booking", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusPending, 72*time.Hour), nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, "confirmed", mod[model.FieldStatus])
				assert.Equal(t, "chef-1", mod[constant.FieldModifiedBy])

				_, args := filter.GetWhereClause()
				assert.Equal(t, "pending", args["status"])

				return 1, nil
			})
		f.notifier.EXPECT().Send(gomock.Any(), string(lifecycle.IntentConfirmed), "cust-1", gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil).AnyTimes()

		res, err := f.svc.UpdateStatus(actor("chef-1", constant.RoleChef), "b-1", dto.UpdateStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Status)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("lost race reports conflict", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusPending, 72*time.Hour), nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.UpdateStatus(actor("chef-1", constant.RoleChef), "b-1", dto.UpdateStatusRequest{Status: "confirmed"})

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusPending, 72*time.Hour), nil)

		_, err := f.svc.UpdateStatus(actor("cust-1", constant.RoleCustomer), "b-1", dto.UpdateStatusRequest{Status: "confirmed"})

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("customer cancel inside the cutoff", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusConfirmed, 2*time.Hour), nil)

		_, err := f.svc.UpdateStatus(actor("cust-1", constant.RoleCustomer), "b-1", dto.UpdateStatusRequest{Status: "cancelled"})

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("terminal booking", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusCompleted, -time.Hour), nil)

		_, err := f.svc.UpdateStatus(actor("chef-1", constant.RoleChef), "b-1", dto.UpdateStatusRequest{Status: "cancelled"})

		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusPending, 72*time.Hour), nil)

		_, err := f.svc.UpdateStatus(actor("chef-2", constant.RoleChef), "b-1", dto.UpdateStatusRequest{Status: "confirmed"})

		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.UpdateStatus(actor("chef-1", constant.RoleChef), "missing", dto.UpdateStatusRequest{Status: "confirmed"})

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("party reads the booking", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(lifecycle.StatusPending, 72*time.Hour), nil)
		f.cache.EXPECT().Save(gomock.Any(), "booking:get:b-1", gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := f.svc.Get(actor("cust-1", constant.RoleCustomer), "b-1")

		require.NoError(t, err)
		assert.Equal(t, "b-1", res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cached booking still checks the caller", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.BookingResponse).FromModel(stored(lifecycle.StatusPending, 72*time.Hour))

				return nil
			})

		_, err := f.svc.Get(actor("cust-2", constant.RoleCustomer), "b-1")

		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("chef lists own bookings", func(t *testing.T) {
		f := setup(t)

		params := gDto.QueryParams{Page: 1, Limit: 10}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "chef-1", args["chef_id"])

				return []model.Booking{stored(lifecycle.StatusPending, 72*time.Hour)}, nil
			})
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(actor("chef-1", constant.RoleChef), params, dto.ListBookingsRequest{Role: constant.RoleChef})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		require.Len(t, res.Bookings, 1)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("role must match the token", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetAll(actor("cust-1", constant.RoleCustomer), gDto.QueryParams{}, dto.ListBookingsRequest{Role: constant.RoleChef})

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}

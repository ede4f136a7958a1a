package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"chefbook/config"
	"chefbook/infras/otel"
	"chefbook/internal/domains/booking/model"
	"chefbook/internal/domains/booking/model/dto"
	"chefbook/internal/domains/booking/model/lifecycle"
	"chefbook/internal/domains/booking/repository"
	calendarModel "chefbook/internal/domains/calendar/model"
	chefDto "chefbook/internal/domains/chef/model/dto"
	notification "chefbook/internal/domains/notification/service"
	"chefbook/shared"
	"chefbook/shared/cache"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	"chefbook/shared/logger"
	"chefbook/shared/metrics"
	"chefbook/shared/timezone"
	"chefbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking  = "booking:get"
	cacheGetBookings = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	chefs    ChefLookup
	calendar AvailabilityLookup
	notifier notification.Dispatcher
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	chefs ChefLookup,
	calendar AvailabilityLookup,
	notifier notification.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		chefs:    chefs,
		calendar: calendar,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, role := shared.Actor(ctx)
	if role != constant.RoleCustomer || customerID == "" {
		return res, failure.RoleNotPermitted("only customers may request a booking") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Check(); err != nil {
		return res, err //nolint:wrapcheck
	}

	chef, err := s.chefs.Get(ctx, req.ChefID)
	if err != nil {
		return res, fmt.Errorf("failed to get chef: %w", err)
	}

	if g := chef.GuestRange; g != nil && (req.GuestCount < g.Min || req.GuestCount > g.Max) {
		return res, failure.Validation(fmt.Sprintf("%s hosts between %d and %d guests", chef.Name, g.Min, g.Max)) //nolint:wrapcheck
	}

	if err = s.checkDates(ctx, req.ChefID, req.SortedDates()); err != nil {
		return res, err
	}

	timeSlot := req.TimeSlot
	if timeSlot == "" {
		timeSlot = s.cfg.Booking.DefaultTimeSlot
	}

	startsAt, err := req.StartsAt(timeSlot)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(customerID, timeSlot, startsAt, quote(req, chef))

	if err = s.repo.Insert(ctx, booking); err != nil {
		if shared.IsForeignKeyViolation(err) {
			return res, failure.NotFound("chef or customer no longer exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()

	res.FromModel(booking)

	s.notify(ctx, lifecycle.Requested(booking.Lifecycle(), booking.CreatedAt))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBookings)
	}()

	return res, nil
}

// checkDates rejects dates in the past and dates the chef has not opened.
func (s *serviceImpl) checkDates(ctx context.Context, chefID string, dates []string) error {
	days := make([]time.Time, len(dates))

	for i, d := range dates {
		day, err := time.Parse(constant.DayFormat, d)
		if err != nil {
			return failure.Validation(fmt.Sprintf("invalid date %s", d)) //nolint:wrapcheck
		}

		days[i] = day
	}

	today := calendarModel.DateOnly(timezone.Now())

	for _, day := range days {
		if day.Before(today) {
			return failure.Validation(fmt.Sprintf("date %s is in the past", day.Format(constant.DayFormat))) //nolint:wrapcheck
		}
	}

	open, err := s.calendar.Provider(ctx, chefID, days[0], days[len(days)-1])
	if err != nil {
		return fmt.Errorf("failed to get chef availability: %w", err)
	}

	for _, day := range days {
		if !open.IsAvailable(day) {
			return failure.Validation(fmt.Sprintf("chef is not available on %s", day.Format(constant.DayFormat))) //nolint:wrapcheck
		}
	}

	return nil
}

// quote uses the client's amount when given, otherwise the chef's minimum rate per guest per day.
func quote(req dto.CreateBookingRequest, chef chefDto.ChefResponse) float64 {
	if req.Amount != nil {
		return *req.Amount
	}

	return chef.PriceRange.Min * float64(req.GuestCount) * float64(len(req.Dates))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, role := shared.Actor(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if role != constant.RoleAdmin && userID != res.CustomerID && userID != res.ChefID {
			return dto.BookingResponse{}, failure.ResourceRestrictedError //nolint:wrapcheck
		}

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if role != constant.RoleAdmin && !booking.IsParty(userID) {
		return res, failure.ResourceRestrictedError //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

// GetAll lists the caller's bookings from one side. Admins see every booking.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, role := shared.Actor(ctx)

	if role == constant.RoleAdmin {
		userID = ""

		if req.Role == "" {
			req.Role = constant.RoleCustomer
		}
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	var filter gDto.FilterGroup

	switch {
	case userID == "":
		if req.Status != "" {
			filter = gDto.And(gDto.Eq(model.TableName, model.FieldStatus, req.Status))
		}
	case role == req.Role:
		filter = repository.PartyFilter(req.Role, userID, req.Status)
	default:
		return res, failure.RoleNotPermitted(fmt.Sprintf("a %s cannot list bookings as %s", role, req.Role)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetBookings, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking to req.Status on behalf of one of its parties. The write only
// lands if the stored status is still the one the transition was computed from.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	userID, role := shared.Actor(ctx)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	actor, err := partyRole(booking, userID, role)
	if err != nil {
		return res, err
	}

	current := booking.Lifecycle()
	target := lifecycle.Status(req.Status)

	action, err := lifecycle.ActionForTarget(current.Status, target, actor)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	next, intent, err := lifecycle.Transition(current, action, actor, timezone.Now(), s.policy())

	defer func() { metrics.BookingTransitions.WithLabelValues(string(action), metrics.Result(err)).Inc() }()

	if err != nil {
		return res, err //nolint:wrapcheck
	}

	affected, err := s.repo.UpdateAffected(ctx, map[string]any{
		model.FieldStatus:        string(next.Status),
		constant.FieldModifiedAt: next.UpdatedAt,
		constant.FieldModifiedBy: userID,
	}, repository.StatusFilter(booking.ID, booking.Status))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return res, failure.Conflict("booking was changed by someone else, reload and try again") //nolint:wrapcheck
	}

	booking.Status = string(next.Status)
	booking.ModifiedAt = next.UpdatedAt
	booking.ModifiedBy = userID

	res.FromModel(booking)

	scope.SetAttributes(map[string]any{
		"booking.action": string(action),
		"booking.from":   string(current.Status),
		"booking.to":     string(next.Status),
	})

	s.notify(ctx, intent)

	go func() {
		c := context.WithoutCancel(ctx)

		logger.Swallow(s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)), "failed to drop cached booking", map[string]any{"booking_id": id})
		shared.InvalidateCaches(c, s.cache, cacheGetBookings)
	}()

	return res, nil
}

// partyRole resolves which side of the booking the caller is acting as.
func partyRole(b model.Booking, userID, role string) (lifecycle.Role, error) {
	switch {
	case role == constant.RoleChef && userID != "" && b.ChefID == userID:
		return lifecycle.RoleChef, nil
	case role == constant.RoleCustomer && userID != "" && b.CustomerID == userID:
		return lifecycle.RoleCustomer, nil
	case role == constant.RoleChef || role == constant.RoleCustomer:
		return "", failure.ResourceRestrictedError //nolint:wrapcheck
	default:
		return "", failure.RoleNotPermitted("only the customer or the chef of a booking may change it") //nolint:wrapcheck
	}
}

func (s *serviceImpl) policy() lifecycle.Policy {
	return lifecycle.Policy{CancelCutoff: time.Duration(s.cfg.Booking.CancelCutoffHours) * time.Hour}
}

// notify dispatches in the background. Delivery failures never fail the caller.
func (s *serviceImpl) notify(ctx context.Context, intent lifecycle.Intent) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.notifier.Send(c, string(intent.Kind), intent.Recipient, intent)
		logger.Swallow(err, "failed to dispatch booking notification", map[string]any{
			"booking_id": intent.BookingID,
			"kind":       string(intent.Kind),
		})
	}()
}

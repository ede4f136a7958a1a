package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chefbook/config"
	"chefbook/infras/otel"
	"chefbook/internal/domains/calendar/model"
	"chefbook/internal/domains/calendar/model/dto"
	"chefbook/internal/domains/calendar/repository"
	"chefbook/shared"
	"chefbook/shared/cache"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	"chefbook/shared/timezone"
	"chefbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheAvailability = "calendar:availability"
)

type Calendar interface {
	MonthGrid(ctx context.Context, chefID string, req dto.MonthGridRequest) (dto.MonthGridResponse, error)
	SetAvailability(ctx context.Context, chefID string, req dto.SetAvailabilityRequest) error
	Provider(ctx context.Context, chefID string, from, to time.Time) (model.DateSet, error)
}

type serviceImpl struct {
	repo  repository.Availability
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Availability, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) MonthGrid(ctx context.Context, chefID string, req dto.MonthGridRequest) (res dto.MonthGridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthGrid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	month := time.Month(req.Month)
	first := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	provider, err := s.Provider(ctx, chefID, first, last)
	if err != nil {
		return res, err
	}

	mode := req.GetMode()
	days := model.GenerateMonthGrid(req.Year, month, timezone.Now(), req.SelectedDates(), provider, mode)

	res.FromDays(chefID, req.Year, month, mode, days)

	return res, nil
}

// Provider loads the chef's open dates in [from, to]. Dates outside the range read as unavailable.
func (s *serviceImpl) Provider(ctx context.Context, chefID string, from, to time.Time) (set model.DateSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Provider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to = model.DateOnly(from), model.DateOnly(to)
	cacheKey := shared.BuildCacheKey(cacheAvailability, chefID, from.Format(constant.DayFormat), to.Format(constant.DayFormat))

	var cached []string

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return model.NewDateSet(dto.ParseDates(cached)...), nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to read availability cache")
	}

	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.RangeFilter(chefID, from, to))
	if err != nil {
		log.Error().Err(err).Str("chef_id", chefID).Msg("failed to get availability")

		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	open := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		if row.Available {
			open = append(open, row.Date)
		}
	}

	set = model.NewDateSet(open...)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, dto.FormatDates(set.Dates()), s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return set, nil
}

func (s *serviceImpl) SetAvailability(ctx context.Context, chefID string, req dto.SetAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.Actor(ctx)
	if role != constant.RoleAdmin && (role != constant.RoleChef || user != chefID) {
		return failure.RoleNotPermitted("only the chef may change their availability") //nolint:wrapcheck
	}

	models, err := req.ToModels(chefID, user)
	if err != nil {
		return err
	}

	from, to, _ := req.Range()

	if err = s.repo.Replace(ctx, chefID, from, to, models); err != nil {
		log.Error().Err(err).Str("chef_id", chefID).Msg("failed to replace availability")

		return fmt.Errorf("failed to replace availability: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheAvailability, chefID, constant.Empty))
	}()

	return nil
}

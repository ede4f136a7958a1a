package service

import (
	"context"
	"fmt"

	"chefbook/config"
	"chefbook/infras/jwt"
	"chefbook/infras/otel"
	"chefbook/internal/domains/chef/model"
	"chefbook/internal/domains/chef/model/discovery"
	"chefbook/internal/domains/chef/model/dto"
	"chefbook/internal/domains/chef/repository"
	"chefbook/shared"
	"chefbook/shared/cache"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	"chefbook/shared/password"
	"chefbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetChef = "chef:get"
	cacheCatalog = "chef:catalog"
)

type Chef interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Get(ctx context.Context, id string) (dto.ChefResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
}

type serviceImpl struct {
	repo  repository.Chef
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	jwt   jwt.JWT
}

func New(repo repository.Chef, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Chef {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		jwt:   jwt,
	}
}

// Search recomputes the visible set from the full catalog on every call.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	key, err := discovery.ParseSortKey(req.Sort)
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	chefs, err := s.catalog(ctx)
	if err != nil {
		return res, err
	}

	byID := make(map[string]model.Chef, len(chefs))
	listings := make([]discovery.Listing, len(chefs))

	for i, c := range chefs {
		byID[c.ID] = c
		listings[i] = c.ToListing()
	}

	criteria := req.ToCriteria()
	visible := discovery.Sort(discovery.Filter(listings, criteria, req.Query), key)

	params := req.QueryParams()
	start, end := params.Window(len(visible))

	page := make([]model.Chef, 0, end-start)
	for _, l := range visible[start:end] {
		page = append(page, byID[l.ID])
	}

	res.FromModels(page, discovery.ActiveFilterCount(criteria), len(visible), params.Limit)

	scope.SetAttributes(map[string]any{
		"search.active_filters": res.ActiveFilters,
		"search.total":          res.TotalData,
	})

	return res, nil
}

func (s *serviceImpl) catalog(ctx context.Context) (chefs []model.Chef, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheCatalog, &chefs); err == nil {
		log.Debug().Int("size", len(chefs)).Msg("cache hit for chef catalog")

		return chefs, nil
	}

	chefs, err = s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.PublicColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chef catalog")

		return nil, fmt.Errorf("failed to get chef catalog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCatalog, chefs, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save chef catalog to cache")
		}
	}()

	return chefs, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ChefResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetChef, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for chef")

		return res, nil
	}

	chef, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.PublicColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chef")

		return res, fmt.Errorf("failed to get chef: %w", err)
	}

	if chef.ID == "" {
		return res, failure.NotFound("chef not found") //nolint:wrapcheck
	}

	res.FromModel(chef)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save chef to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if chef exists")

		return res, fmt.Errorf("failed to check if chef exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	chef := req.ToModel(hashed)

	if err = s.repo.Insert(ctx, chef); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create chef")

		return res, fmt.Errorf("failed to create chef: %w", err)
	}

	token, err := s.jwt.GenerateToken(chef.ID, chef.Email, constant.RoleChef)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.Chef.FromModel(chef)
	res.Token = token

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCatalog)
	}()

	return res, nil
}

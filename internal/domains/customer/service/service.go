package service

import (
	"context"
	"fmt"

	"chefbook/config"
	"chefbook/infras/jwt"
	"chefbook/infras/otel"
	"chefbook/internal/domains/customer/model"
	"chefbook/internal/domains/customer/model/dto"
	"chefbook/internal/domains/customer/repository"
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
	cacheGetCustomer = "customer:get"
)

type Customer interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	jwt   jwt.JWT
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		jwt:   jwt,
	}
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
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := req.ToModel(hashed)

	if err = s.repo.Insert(ctx, customer); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	token, err := s.jwt.GenerateToken(customer.ID, customer.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.Customer.FromModel(customer)
	res.Token = token

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, id); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == "" {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, id); err != nil {
		return err
	}

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	user, _ := shared.Actor(ctx)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
			log.Error().Err(err).Msg("failed to drop customer cache")
		}
	}()

	return nil
}

// authorize lets customers touch only their own record.
func (s *serviceImpl) authorize(ctx context.Context, id string) error {
	user, role := shared.Actor(ctx)

	if role == constant.RoleAdmin || (role == constant.RoleCustomer && user == id) {
		return nil
	}

	return failure.ResourceRestrictedError
}

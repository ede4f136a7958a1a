package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"chefbook/config"
	"chefbook/infras/jwt"
	"chefbook/infras/otel"
	"chefbook/internal/domains/auth/model/dto"
	chefModel "chefbook/internal/domains/chef/model"
	chefRepo "chefbook/internal/domains/chef/repository"
	customerModel "chefbook/internal/domains/customer/model"
	customerRepo "chefbook/internal/domains/customer/repository"
	"chefbook/shared"
	"chefbook/shared/constant"
	gDto "chefbook/shared/dto"
	"chefbook/shared/failure"
	"chefbook/shared/logger"
	"chefbook/shared/password"
	"chefbook/shared/timezone"
	"chefbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	chefRepo     chefRepo.Chef
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, chefRepo chefRepo.Chef, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		chefRepo:     chefRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

// Login checks the credentials against the account table of the requested role.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	var userID, hashed string

	switch req.Role {
	case constant.RoleChef:
		userID, hashed, err = s.chefCredentials(ctx, req.Email)
	default:
		userID, hashed, err = s.customerCredentials(ctx, req.Email)
	}

	if err != nil {
		return res, err
	}

	if userID == "" {
		log.Warn().Str("email", req.Email).Str("role", req.Role).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, hashed); err != nil {
		log.Warn().Str("email", req.Email).Str("role", req.Role).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	token, err := s.jwtService.GenerateToken(userID, req.Email, req.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	if req.Role == constant.RoleCustomer {
		lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
		err := s.customerRepo.Update(ctx, shared.TransformFields(lastLogin, userID), shared.FilterByID(userID, customerModel.FieldID, customerModel.TableName))
		logger.Swallow(err, "failed to update last login", map[string]any{"user_id": userID})
	}

	res.FromToken(userID, req.Role, token)

	return res, nil
}

func (s *serviceImpl) customerCredentials(ctx context.Context, email string) (id, hashed string, err error) {
	customer, err := s.customerRepo.Get(ctx, gDto.And(gDto.Eq(customerModel.TableName, customerModel.FieldEmail, email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return "", "", fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID != "" && !customer.Active {
		return "", "", failure.Forbidden("customer account is deactivated") //nolint:wrapcheck
	}

	return customer.ID, customer.Password, nil
}

func (s *serviceImpl) chefCredentials(ctx context.Context, email string) (id, hashed string, err error) {
	chef, err := s.chefRepo.Get(ctx, gDto.And(gDto.Eq(chefModel.TableName, chefModel.FieldEmail, email)), chefModel.FieldID, chefModel.FieldPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chef")

		return "", "", fmt.Errorf("failed to get chef: %w", err)
	}

	return chef.ID, chef.Password, nil
}

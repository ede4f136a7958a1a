package customer

import (
	"net/http"

	"chefbook/infras/otel"
	"chefbook/internal/domains/customer/model/dto"
	"chefbook/internal/domains/customer/service"
	"chefbook/shared/constant"
	"chefbook/shared/validator"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterCustomer)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Patch("/{id}", handler.UpdateProfile)
	})
}

// RegisterCustomer handles customer signup.
// @Summary Register a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Customer Register Request"
// @Success 201 {object} response.Data[dto.RegisterResponse] "Registered customer"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/customers [post]
func (handler *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterCustomer")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register customer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCustomerByID returns the caller's own profile.
// @Summary Get a customer by ID
// @Tags Customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer profile"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/customers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateProfile updates the caller's own profile.
// @Summary Update a customer profile
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Message "Profile updated"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/customers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProfile(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update customer profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated for customer " + id)

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

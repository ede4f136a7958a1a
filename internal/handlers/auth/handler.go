package auth

import (
	"net/http"

	"chefbook/infras/otel"
	"chefbook/internal/domains/auth/model/dto"
	"chefbook/internal/domains/auth/service"
	"chefbook/shared/constant"
	"chefbook/shared/validator"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
	})
}

// Login handles user login
// @Summary Log in as a customer or chef
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Access token"
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("role", req.Role).Msg("failed to login")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User " + res.UserID + " logged in")

	response.WithJSON(w, http.StatusOK, res)
}

package wizard

import (
	"net/http"

	"chefbook/infras/otel"
	"chefbook/internal/domains/wizard/model/dto"
	"chefbook/internal/domains/wizard/service"
	"chefbook/shared/constant"
	"chefbook/shared/validator"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizard", func(routerGroup chi.Router) {
		routerGroup.Post("/{flow}/sessions", handler.StartSession)

		routerGroup.Route("/sessions/{id}", func(session chi.Router) {
			session.Get("/", handler.GetSession)
			session.Delete("/", handler.CancelSession)
			session.Patch("/fields", handler.UpdateFields)
			session.Post("/dates", handler.ToggleDate)
			session.Post("/next", handler.Next)
			session.Post("/back", handler.Back)
		})
	})
}

// StartSession opens a wizard session for a flow.
// @Summary Start a wizard
// @Tags Wizard
// @Accept json
// @Produce json
// @Param flow path string true "customer_signup, chef_signup or booking"
// @Param request body dto.StartRequest false "Initial data"
// @Success 201 {object} response.Data[dto.SessionResponse] "New session"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizard/{flow}/sessions [post]
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	flowName := chi.URLParam(r, constant.RequestParamFlow)

	req := dto.StartRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	session, err := handler.service.Start(ctx, flowName, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow", flowName).Msg("failed to start wizard session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard session " + session.ID + " started for " + flowName)

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSession returns the current step and data of a session.
// @Summary Get a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Router /v1/wizard/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get wizard session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// UpdateFields merges fields into the session data.
// @Summary Update wizard fields
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateFieldsRequest true "Fields; null removes a key"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/wizard/sessions/{id}/fields [patch]
func (handler *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFields")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFieldsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.UpdateFields(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update wizard fields")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// ToggleDate selects or clears a date on the booking calendar step.
// @Summary Toggle a booking date
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ToggleDateRequest true "Date and selection mode"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/wizard/sessions/{id}/dates [post]
func (handler *Handler) ToggleDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ToggleDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.ToggleDate(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("date", req.Date).Msg("failed to toggle date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Next advances the session, completing the flow on the last step.
// @Summary Advance a wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/wizard/sessions/{id}/next [post]
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Next")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Next(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to advance wizard session")

		response.WithError(w, err)

		return
	}

	if session.Completed {
		scope.AddEvent("Wizard session " + id + " completed")
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Back returns to the previous step.
// @Summary Step a wizard back
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Router /v1/wizard/sessions/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to step wizard session back")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// CancelSession discards a session and its data.
// @Summary Cancel a wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session cancelled"
// @Failure 404 {object} response.Error
// @Router /v1/wizard/sessions/{id} [delete]
func (handler *Handler) CancelSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel wizard session")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Session cancelled successfully")
}

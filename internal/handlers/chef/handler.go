package chef

import (
	"net/http"

	"chefbook/infras/otel"
	calendarDto "chefbook/internal/domains/calendar/model/dto"
	calendarService "chefbook/internal/domains/calendar/service"
	"chefbook/internal/domains/chef/model/dto"
	"chefbook/internal/domains/chef/service"
	"chefbook/shared/constant"
	"chefbook/shared/validator"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Chef
	calendar calendarService.Calendar
	otel     otel.Otel
}

func New(service service.Chef, calendar calendarService.Calendar, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		calendar: calendar,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chefs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterChef)
		routerGroup.Post("/search", handler.SearchChefs)
		routerGroup.Get("/{id}", handler.GetChefByID)
		routerGroup.Get("/{id}/calendar", handler.GetCalendar)
		routerGroup.Put("/{id}/availability", handler.SetAvailability)
	})
}

// RegisterChef creates a chef listing and account.
// @Summary Register a chef
// @Tags Chef
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Chef Register Request"
// @Success 201 {object} response.Data[dto.RegisterResponse] "Registered chef"
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/chefs [post]
func (handler *Handler) RegisterChef(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterChef")
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
		log.Error().Err(err).Msg("failed to register chef")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// SearchChefs filters, searches and sorts chef listings.
// @Summary Discover chefs
// @Description Applies every active facet, the free-text query and the sort key.
// @Tags Chef
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Filter panel payload"
// @Success 200 {object} response.Data[dto.SearchResponse] "Matching chefs"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/chefs/search [post]
func (handler *Handler) SearchChefs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchChefs")
	defer scope.End()

	req := dto.SearchRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search chefs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetChefByID returns a single chef listing.
// @Summary Get a chef by ID
// @Tags Chef
// @Produce json
// @Param id path string true "Chef ID"
// @Success 200 {object} response.Data[dto.ChefResponse] "Chef details"
// @Failure 404 {object} response.Error
// @Router /v1/chefs/{id} [get]
func (handler *Handler) GetChefByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChefByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	chef, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get chef by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chef)
}

// GetCalendar renders a chef's month grid.
// @Summary Chef availability calendar
// @Tags Chef
// @Produce json
// @Param id path string true "Chef ID"
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Param selected query string false "Comma separated YYYY-MM-DD dates"
// @Param mode query string false "single or multi"
// @Success 200 {object} response.Data[calendarDto.MonthGridResponse] "42-day grid"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/chefs/{id}/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := calendarDto.MonthGridRequest{}
	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse calendar query")

		response.WithError(w, err)

		return
	}

	grid, err := handler.calendar.MonthGrid(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("chef_id", id).Msg("failed to build month grid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, grid)
}

// SetAvailability replaces a chef's available dates in a range.
// @Summary Set chef availability
// @Tags Chef
// @Accept json
// @Produce json
// @Param id path string true "Chef ID"
// @Param request body calendarDto.SetAvailabilityRequest true "Availability"
// @Success 200 {object} response.Message "Availability updated"
// @Failure 403 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/chefs/{id}/availability [put]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := calendarDto.SetAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.calendar.SetAvailability(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("chef_id", id).Msg("failed to set availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability updated for chef " + id)

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chefbook/config"
	"chefbook/infras/otel"
	calendarModel "chefbook/internal/domains/calendar/model"
	"chefbook/internal/domains/wizard/flow"
	"chefbook/internal/domains/wizard/model"
	"chefbook/internal/domains/wizard/model/dto"
	"chefbook/shared"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/metrics"
	"chefbook/shared/timezone"
	"chefbook/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultSessionTTL = 30 * time.Minute
	sweepInterval     = time.Minute
)

// Wizard keeps in-progress sessions in memory. A session belongs to the user who started it;
// anonymous sessions are reachable by anyone holding the id.
type Wizard interface {
	Start(ctx context.Context, flowName string, req dto.StartRequest) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	UpdateFields(ctx context.Context, id string, req dto.UpdateFieldsRequest) (dto.SessionResponse, error)
	ToggleDate(ctx context.Context, id string, req dto.ToggleDateRequest) (dto.SessionResponse, error)
	Next(ctx context.Context, id string) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Cancel(ctx context.Context, id string) error
	Run(ctx context.Context)
}

// AvailabilityLookup reports which of a chef's dates are open.
type AvailabilityLookup interface {
	Provider(ctx context.Context, chefID string, from, to time.Time) (calendarModel.DateSet, error)
}

type entry struct {
	mu      sync.Mutex
	flow    flow.Name
	owner   string
	session *model.Session
	touched time.Time
}

type serviceImpl struct {
	mu       sync.Mutex
	sessions map[string]*entry
	catalog  *flow.Catalog
	calendar AvailabilityLookup
	ttl      time.Duration
	otel     otel.Otel
}

func New(catalog *flow.Catalog, calendar AvailabilityLookup, cfg *config.Config, otel otel.Otel) Wizard {
	ttl := time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &serviceImpl{
		sessions: make(map[string]*entry),
		catalog:  catalog,
		calendar: calendar,
		ttl:      ttl,
		otel:     otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, flowName string, req dto.StartRequest) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wizard.Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	def, err := s.catalog.Lookup(flowName)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	owner, role := shared.Actor(ctx)
	if !def.Permits(role) {
		return res, failure.RoleNotPermitted(fmt.Sprintf("the %s wizard is not available to you", def.Name)) //nolint:wrapcheck
	}

	session, err := model.Start(def.Steps, req.Data, def.Complete)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	id := uuid.NewString()
	e := &entry{flow: def.Name, owner: owner, session: session, touched: timezone.Now()}

	s.mu.Lock()
	s.sessions[id] = e
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.WizardSessionsActive.Set(float64(active))

	log.Debug().Str("session_id", id).Str("flow", string(def.Name)).Msg("wizard session started")

	res.FromSession(id, string(e.flow), session, e.touched.Add(s.ttl))

	return res, nil
}

// acquire returns the caller's session locked. The caller must unlock it.
func (s *serviceImpl) acquire(ctx context.Context, id string) (*entry, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok {
		return nil, failure.NotFound("wizard session not found") //nolint:wrapcheck
	}

	e.mu.Lock()

	if timezone.Now().Sub(e.touched) > s.ttl {
		e.mu.Unlock()
		s.discard(id)

		return nil, failure.NotFound("wizard session expired") //nolint:wrapcheck
	}

	if user, _ := shared.Actor(ctx); e.owner != "" && e.owner != user {
		e.mu.Unlock()

		return nil, failure.ResourceRestrictedError //nolint:wrapcheck
	}

	e.touched = timezone.Now()

	return e, nil
}

func (s *serviceImpl) discard(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.WizardSessionsActive.Set(float64(active))
}

func (s *serviceImpl) respond(id string, e *entry) dto.SessionResponse {
	var res dto.SessionResponse
	res.FromSession(id, string(e.flow), e.session, e.touched.Add(s.ttl))

	return res
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	e, err := s.acquire(ctx, id)
	if err != nil {
		return res, err
	}
	defer e.mu.Unlock()

	return s.respond(id, e), nil
}

func (s *serviceImpl) UpdateFields(ctx context.Context, id string, req dto.UpdateFieldsRequest) (res dto.SessionResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	e, err := s.acquire(ctx, id)
	if err != nil {
		return res, err
	}
	defer e.mu.Unlock()

	for key, value := range req.Fields {
		e.session.UpdateField(key, value)
	}

	return s.respond(id, e), nil
}

// ToggleDate flips a date in the session's selection, ignoring days the chef has not opened.
func (s *serviceImpl) ToggleDate(ctx context.Context, id string, req dto.ToggleDateRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wizard.ToggleDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	e, err := s.acquire(ctx, id)
	if err != nil {
		return res, err
	}
	defer e.mu.Unlock()

	data := e.session.Data()

	chefID := data.String(flow.KeyChefID)
	if chefID == "" {
		return res, failure.Validation("choose a chef before picking dates") //nolint:wrapcheck
	}

	date, _ := time.Parse(constant.DayFormat, req.Date)

	open, err := s.calendar.Provider(ctx, chefID, date, date)
	if err != nil {
		return res, fmt.Errorf("failed to get chef availability: %w", err)
	}

	available := !date.Before(calendarModel.DateOnly(timezone.Now())) && open.IsAvailable(date)

	mode := calendarModel.Mode(req.Mode)
	if !mode.Valid() {
		mode = calendarModel.ModeMulti
	}

	selected := make([]time.Time, 0)

	for _, d := range data.Strings(flow.KeyDates) {
		if t, err := time.Parse(constant.DayFormat, d); err == nil {
			selected = append(selected, t)
		}
	}

	toggled := calendarModel.ToggleDateSelection(date, selected, mode, available)

	dates := make([]string, len(toggled))
	for i, d := range toggled {
		dates[i] = d.Format(constant.DayFormat)
	}

	e.session.UpdateField(flow.KeyDates, dates)

	return s.respond(id, e), nil
}

func (s *serviceImpl) Next(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".wizard.Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	e, err := s.acquire(ctx, id)
	if err != nil {
		return res, err
	}
	defer e.mu.Unlock()

	last := e.session.CurrentIndex() == e.session.StepCount()-1

	done, err := e.session.Next(ctx)
	if last && e.session.CanAdvance() {
		metrics.WizardCompletions.WithLabelValues(string(e.flow), metrics.Result(err)).Inc()
	}

	if err != nil {
		event := log.Error()
		if failure.IsKind(err, failure.KindValidation) {
			event = log.Warn()
		}

		event.Err(err).Str("session_id", id).Str("step", e.session.CurrentStep().ID).Msg("wizard could not advance")

		return res, err //nolint:wrapcheck
	}

	res = s.respond(id, e)

	if done {
		s.discard(id)

		log.Info().Str("session_id", id).Str("flow", string(e.flow)).Msg("wizard session completed")
	}

	return res, nil
}

func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	e, err := s.acquire(ctx, id)
	if err != nil {
		return res, err
	}
	defer e.mu.Unlock()

	e.session.Back()

	return s.respond(id, e), nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	e, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}

	e.mu.Unlock()
	s.discard(id)

	return nil
}

// Run drops idle sessions until ctx is done.
func (s *serviceImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(timezone.Now()); n > 0 {
				log.Info().Int("expired", n).Msg("expired idle wizard sessions")
			}
		}
	}
}

func (s *serviceImpl) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0

	for id, e := range s.sessions {
		if !e.mu.TryLock() {
			continue
		}

		if now.Sub(e.touched) > s.ttl {
			delete(s.sessions, id)
			expired++
		}

		e.mu.Unlock()
	}

	metrics.WizardSessionsActive.Set(float64(len(s.sessions)))

	return expired
}

package dto

import (
	"time"

	"chefbook/internal/domains/wizard/model"
	"chefbook/shared/constant"
	"chefbook/shared/timezone"
)

type StartRequest struct {
	Data map[string]any `json:"data"`
}

type UpdateFieldsRequest struct {
	Fields map[string]any `json:"fields" validate:"required,min=1"`
}

type ToggleDateRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Mode string `json:"mode" validate:"omitempty,oneof=single multi"`
}

type SessionResponse struct {
	ID         string         `json:"id"`
	Flow       string         `json:"flow"`
	Step       string         `json:"step"`
	StepIndex  int            `json:"step_index"`
	StepCount  int            `json:"step_count"`
	Progress   float64        `json:"progress"`
	CanAdvance bool           `json:"can_advance"`
	Completed  bool           `json:"completed"`
	Data       map[string]any `json:"data"`
	Result     any            `json:"result,omitempty"`
	ExpiresAt  string         `json:"expires_at,omitempty"`
}

func (r *SessionResponse) FromSession(id, flow string, s *model.Session, expiresAt time.Time) {
	r.ID = id
	r.Flow = flow
	r.Step = s.CurrentStep().ID
	r.StepIndex = s.CurrentIndex()
	r.StepCount = s.StepCount()
	r.Progress = s.ProgressPercent()
	r.CanAdvance = s.CanAdvance()
	r.Completed = s.Completed()
	r.Data = s.Data()
	r.Result = s.Result()

	if !s.Completed() {
		r.ExpiresAt = timezone.Format(expiresAt, constant.DateFormat)
	}
}

package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chefbook/internal/domains/calendar/model"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	gModel "chefbook/shared/model"
	"chefbook/shared/timezone"

	"github.com/google/uuid"
)

const (
	queryParamYear     = "year"
	queryParamMonth    = "month"
	queryParamMode     = "mode"
	queryParamSelected = "selected"
)

type MonthGridRequest struct {
	Year     int      `json:"year"     validate:"gte=1970,lte=9999"`
	Month    int      `json:"month"    validate:"gte=1,lte=12"`
	Mode     string   `json:"mode"     validate:"omitempty,oneof=single multi"`
	Selected []string `json:"selected" validate:"omitempty,dive,isodate"`
}

// FromRequest reads the grid query. Year and month default to the current month.
func (m *MonthGridRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()
	now := timezone.Now()

	m.Year = now.Year()
	m.Month = int(now.Month())

	if v := query.Get(queryParamYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return failure.BadRequestFromString("invalid year parameter")
		}

		m.Year = year
	}

	if v := query.Get(queryParamMonth); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return failure.BadRequestFromString("invalid month parameter")
		}

		m.Month = month
	}

	m.Mode = query.Get(queryParamMode)
	m.Selected = nil

	for _, raw := range query[queryParamSelected] {
		for part := range strings.SplitSeq(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				m.Selected = append(m.Selected, part)
			}
		}
	}

	return nil
}

func (m MonthGridRequest) GetMode() model.Mode {
	if m.Mode == "" {
		return model.ModeMulti
	}

	return model.Mode(m.Mode)
}

// SelectedDates parses Selected; call after validation.
func (m MonthGridRequest) SelectedDates() []time.Time {
	return ParseDates(m.Selected)
}

type DayResponse struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsPast         bool   `json:"is_past"`
	IsToday        bool   `json:"is_today"`
	IsSelected     bool   `json:"is_selected"`
	IsAvailable    bool   `json:"is_available"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthGridResponse struct {
	ChefID string        `json:"chef_id"`
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Mode   string        `json:"mode"`
	Days   []DayResponse `json:"days"`
	Prev   MonthRef      `json:"prev"`
	Next   MonthRef      `json:"next"`
}

func (r *MonthGridResponse) FromDays(chefID string, year int, month time.Month, mode model.Mode, days []model.Day) {
	r.ChefID = chefID
	r.Year = year
	r.Month = int(month)
	r.Mode = string(mode)

	py, pm := model.PrevMonth(year, month)
	ny, nm := model.NextMonth(year, month)

	r.Prev = MonthRef{Year: py, Month: int(pm)}
	r.Next = MonthRef{Year: ny, Month: int(nm)}

	r.Days = make([]DayResponse, len(days))
	for i, d := range days {
		r.Days[i] = DayResponse{
			Date:           d.Date.Format(constant.DayFormat),
			IsCurrentMonth: d.IsCurrentMonth,
			IsPast:         d.IsPast,
			IsToday:        d.IsToday,
			IsSelected:     d.IsSelected,
			IsAvailable:    d.IsAvailable,
		}
	}
}

// SetAvailabilityRequest replaces every availability row in [From, To] with Dates.
type SetAvailabilityRequest struct {
	From  string   `json:"from"  validate:"required,isodate"`
	To    string   `json:"to"    validate:"required,isodate"`
	Dates []string `json:"dates" validate:"omitempty,dive,isodate"`
}

func (s SetAvailabilityRequest) Range() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DayFormat, s.From)
	if err != nil {
		return from, to, failure.Validation("from must be a date")
	}

	to, err = time.Parse(constant.DayFormat, s.To)
	if err != nil {
		return from, to, failure.Validation("to must be a date")
	}

	if to.Before(from) {
		return from, to, failure.Validation("to must not be before from")
	}

	return from, to, nil
}

func (s SetAvailabilityRequest) ToModels(chefID, user string) ([]model.Availability, error) {
	from, to, err := s.Range()
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	set := model.NewDateSet(ParseDates(s.Dates)...)
	models := make([]model.Availability, 0, len(set))

	for _, d := range set.Dates() {
		if d.Before(from) || d.After(to) {
			return nil, failure.Validation(fmt.Sprintf("date %s is outside %s..%s", d.Format(constant.DayFormat), s.From, s.To))
		}

		models = append(models, model.Availability{
			ID:        uuid.NewString(),
			ChefID:    chefID,
			Date:      d,
			Available: true,
			Metadata:  gModel.NewMetadata(user, now),
		})
	}

	return models, nil
}

// ParseDates keeps the values that parse as calendar dates.
func ParseDates(values []string) []time.Time {
	dates := make([]time.Time, 0, len(values))

	for _, v := range values {
		d, err := time.Parse(constant.DayFormat, v)
		if err != nil {
			continue
		}

		dates = append(dates, d)
	}

	return dates
}

// FormatDates is the inverse of ParseDates.
func FormatDates(dates []time.Time) []string {
	values := make([]string, len(dates))
	for i, d := range dates {
		values[i] = d.Format(constant.DayFormat)
	}

	return values
}

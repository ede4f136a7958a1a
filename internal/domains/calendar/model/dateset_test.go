package model_test

import (
	"testing"
	"time"

	"chefbook/internal/domains/calendar/model"

	"github.com/stretchr/testify/assert"
)

func TestDateSet(t *testing.T) {
	set := model.NewDateSet(
		time.Date(2025, time.October, 22, 9, 0, 0, 0, time.UTC),
		date(2025, time.October, 20),
	)

	assert.True(t, set.IsAvailable(date(2025, time.October, 20)))
	assert.True(t, set.IsAvailable(time.Date(2025, time.October, 22, 21, 0, 0, 0, time.UTC)))
	assert.False(t, set.IsAvailable(date(2025, time.October, 21)))

	assert.Equal(t, []time.Time{date(2025, time.October, 20), date(2025, time.October, 22)}, set.Dates())
}

func TestDateSet_Empty(t *testing.T) {
	var set model.DateSet

	assert.False(t, set.IsAvailable(date(2025, time.October, 20)))
	assert.Empty(t, set.Dates())
}

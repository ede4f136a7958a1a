package model_test

import (
	"encoding/json"
	"testing"

	"chefbook/internal/domains/wizard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_Readers(t *testing.T) {
	var d model.Data
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Ana",
		"guest_count": 4,
		"price_min": 12.5,
		"code": "42",
		"ratio": 1.5,
		"tags": ["vegan", "", 3, "halal"],
		"guests": {"adults": 2}
	}`), &d))

	assert.Equal(t, "Ana", d.String("name"))
	assert.Empty(t, d.String("guest_count"))

	n, ok := d.Int("guest_count")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = d.Int("ratio")
	assert.False(t, ok)

	f, ok := d.Float("price_min")
	assert.True(t, ok)
	assert.InDelta(t, 12.5, f, 0.001)

	_, ok = d.Float("code")
	assert.False(t, ok)

	_, ok = d.Float("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"vegan", "halal"}, d.Strings("tags"))
	assert.Nil(t, d.Strings("name"))

	guests, ok := d.Object("guests")
	require.True(t, ok)
	adults, _ := guests.Int("adults")
	assert.Equal(t, 2, adults)
}

func TestData_Decode(t *testing.T) {
	var out struct {
		Name  string   `json:"name"`
		Count int      `json:"guest_count"`
		Tags  []string `json:"tags"`
	}

	d := model.Data{"name": "Ana", "guest_count": 3.0, "tags": []any{"vegan"}}

	require.NoError(t, d.Decode(&out))

	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, []string{"vegan"}, out.Tags)
}

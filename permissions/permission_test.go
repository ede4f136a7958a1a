package permissions_test

import (
	"testing"

	"chefbook/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	login := data.FindPermissions("/v1/auth/login", "POST")
	assert.True(t, login.Skip)

	status := data.FindPermissions("/v1/bookings/{id}/status", "PATCH")
	assert.False(t, status.Skip)
	assert.True(t, status.Allows("chef"))
	assert.True(t, status.Allows("customer"))
	assert.False(t, status.Allows("admin"))

	create := data.FindPermissions("/v1/bookings", "POST")
	assert.False(t, create.Allows("chef"))
	assert.True(t, create.Allows("customer"))
}

func TestLookup_TrailingSlash(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	for _, path := range []string{"/v1/customers", "/v1/customers/"} {
		p, ok := data.Lookup(path, "POST")
		require.True(t, ok, path)
		assert.True(t, p.Skip, path)
	}

	session, ok := data.Lookup("/v1/wizard/sessions/{id}", "GET")
	require.True(t, ok)
	assert.True(t, session.Skip)

	_, ok = data.Lookup("/v1/customers", "DELETE")
	assert.False(t, ok)
}

func TestFindPermissions_Unknown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	p := data.FindPermissions("/v1/nowhere", "GET")

	assert.False(t, p.Skip)
	assert.True(t, p.Allows("customer"))
}

func TestLoad(t *testing.T) {
	_, err := permissions.Load([]byte(`{"endpoints":[{"path":"/a","method":"GET"},{"path":"/a/","method":"GET"}]}`))
	assert.ErrorContains(t, err, "duplicate permission for GET /a")

	_, err = permissions.Load([]byte(`{`))
	assert.Error(t, err)

	data, err := permissions.Load([]byte(`{"skip":true}`))
	require.NoError(t, err)
	assert.True(t, data.Skip)
}

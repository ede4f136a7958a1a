package jwt_test

import (
	"testing"

	"chefbook/config"
	"chefbook/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "chefbook"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("s3cret", 60)

	token, err := svc.GenerateToken("chef-1", "chef@example.com", "chef")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "chef-1", claims.UserID)
	assert.Equal(t, "chef", claims.Role)
	assert.Equal(t, "chef-1", claims.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newService("s3cret", 60)

	other, err := newService("other", 60).GenerateToken("u-1", "u@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(other.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired, err := newService("s3cret", -5).GenerateToken("u-1", "u@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"bearer", "Bearer abc.def", "abc.def", nil},
		{"missing", "", "", jwt.ErrMissingHeader},
		{"wrong scheme", "Basic abc", "", jwt.ErrMalformedToken},
		{"empty token", "Bearer ", "", jwt.ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

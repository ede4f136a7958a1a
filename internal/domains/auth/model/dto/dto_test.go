package dto_test

import (
	"testing"

	"chefbook/infras/jwt"
	"chefbook/internal/domains/auth/model/dto"
	"chefbook/shared/failure"
	"chefbook/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestLoginResponse_FromToken(t *testing.T) {
	var res dto.LoginResponse
	res.FromToken("chef-1", "chef", jwt.Token{AccessToken: "abc", TokenType: "Bearer", ExpiresIn: 3600})

	assert.Equal(t, dto.LoginResponse{UserID: "chef-1", Role: "chef", AccessToken: "abc", TokenType: "Bearer", ExpiresIn: 3600}, res)
}

func TestLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr bool
	}{
		{"customer", dto.LoginRequest{Email: "a@example.com", Password: "x", Role: "customer"}, false},
		{"chef", dto.LoginRequest{Email: "a@example.com", Password: "x", Role: "chef"}, false},
		{"admin is not a login role", dto.LoginRequest{Email: "a@example.com", Password: "x", Role: "admin"}, true},
		{"bad email", dto.LoginRequest{Email: "nope", Password: "x", Role: "chef"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindValidation))

				return
			}

			assert.NoError(t, err)
		})
	}
}

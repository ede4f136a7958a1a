package dto

import (
	"time"

	"chefbook/infras/jwt"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=customer chef"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *LoginResponse) FromToken(userID, role string, token jwt.Token) {
	l.UserID = userID
	l.Role = role
	l.AccessToken = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
}

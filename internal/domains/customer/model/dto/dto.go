package dto

import (
	"time"

	"chefbook/infras/jwt"
	"chefbook/internal/domains/customer/model"
	gDto "chefbook/shared/dto"
	gModel "chefbook/shared/model"
	"chefbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RegisterRequest is assembled by the customer signup wizard.
type RegisterRequest struct {
	Email       string   `json:"email"        validate:"required,email"`
	Mobile      string   `json:"mobile"       validate:"required,min=6,max=20"`
	Password    string   `json:"password"     validate:"required,min=8,max=72"`
	FullName    string   `json:"full_name"    validate:"required,min=2,max=100"`
	DietaryTags []string `json:"dietary_tags" validate:"required,min=1,dive,required,max=50"`
	Verified    bool     `json:"-"`
}

func (r RegisterRequest) ToModel(hashedPassword string) model.Customer {
	id := uuid.NewString()

	return model.Customer{
		ID:          id,
		Email:       r.Email,
		Mobile:      r.Mobile,
		Password:    hashedPassword,
		FullName:    r.FullName,
		DietaryTags: r.DietaryTags,
		IsVerified:  r.Verified,
		Active:      true,
		Metadata:    gModel.NewMetadata(id, timezone.Now()),
	}
}

type UpdateProfileRequest struct {
	FullName    string         `db:"full_name"    json:"full_name"    validate:"omitempty,min=2,max=100"`
	Mobile      string         `db:"mobile"       json:"mobile"       validate:"omitempty,min=6,max=20"`
	DietaryTags pq.StringArray `db:"dietary_tags" json:"dietary_tags" validate:"omitempty,dive,required,max=50"`
}

func (u UpdateProfileRequest) IsEmpty() bool {
	return u.FullName == "" && u.Mobile == "" && len(u.DietaryTags) == 0
}

type CustomerResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Mobile      string     `json:"mobile"`
	FullName    string     `json:"full_name"`
	DietaryTags []string   `json:"dietary_tags"`
	IsVerified  bool       `json:"is_verified"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	Active      bool       `json:"active"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(m model.Customer) {
	r.ID = m.ID
	r.Email = m.Email
	r.Mobile = m.Mobile
	r.FullName = m.FullName
	r.DietaryTags = m.DietaryTags
	r.IsVerified = m.IsVerified
	r.LastLogin = m.LastLogin
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type RegisterResponse struct {
	Customer CustomerResponse `json:"customer"`
	Token    jwt.Token        `json:"token"`
}

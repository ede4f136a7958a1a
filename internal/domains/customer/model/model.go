package model

import (
	"time"

	"chefbook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldMobile      = "mobile"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldDietaryTags = "dietary_tags"
	FieldIsVerified  = "is_verified"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

type Customer struct {
	ID          string         `db:"id"`
	Email       string         `db:"email"`
	Mobile      string         `db:"mobile"`
	Password    string         `db:"password"`
	FullName    string         `db:"full_name"`
	DietaryTags pq.StringArray `db:"dietary_tags"`
	IsVerified  bool           `db:"is_verified"`
	LastLogin   *time.Time     `db:"last_login"`
	Active      bool           `db:"active"`
	model.Metadata
}

package model

import (
	"time"

	"chefbook/shared/model"
)

const (
	TableName  = "chef_availability"
	EntityName = "chef_availability"

	FieldID        = "id"
	FieldChefID    = "chef_id"
	FieldDate      = "date"
	FieldAvailable = "available"
)

// Availability is one chef-declared bookable (or blocked) date.
type Availability struct {
	ID        string    `db:"id"`
	ChefID    string    `db:"chef_id"`
	Date      time.Time `db:"date"`
	Available bool      `db:"available"`
	model.Metadata
}

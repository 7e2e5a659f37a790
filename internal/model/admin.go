package model

import (
	"emptrack/internal/abstraction"
)

type AdminEntity struct {
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// AdminEntityModel ...
type AdminEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	AdminEntity

	abstraction.EntityJustCreated

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (AdminEntityModel) TableName() string {
	return "admin"
}

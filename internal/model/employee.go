package model

import (
	"emptrack/internal/abstraction"
	"time"
)

type EmployeeEntity struct {
	EmpCode       string     `json:"emp_code" gorm:"uniqueIndex"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Department    string     `json:"department"`
	Position      string     `json:"position"`
	Mobile        *string    `json:"mobile"`
	DateOfJoining *time.Time `json:"date_of_joining" gorm:"type:date"`
	Password      string     `json:"-"`
}

// EmployeeEntityModel ...
type EmployeeEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	EmployeeEntity

	abstraction.EntityJustCreated

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (EmployeeEntityModel) TableName() string {
	return "emp_details"
}

type EmployeeCountDataModel struct {
	Count int `json:"count"`
}

type EmployeeMaxCodeDataModel struct {
	MaxCode *string `json:"max_code"`
}

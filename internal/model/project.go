package model

import (
	"emptrack/internal/abstraction"
)

type ProjectEntity struct {
	ProjectName string `json:"project_name"`
}

// ProjectEntityModel ...
type ProjectEntityModel struct {
	ProjectID int `json:"project_id" param:"project_id" form:"project_id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;column:project_id"`

	// entity
	ProjectEntity

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (ProjectEntityModel) TableName() string {
	return "projects"
}

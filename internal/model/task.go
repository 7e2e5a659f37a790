package model

import (
	"emptrack/internal/abstraction"
)

type TaskEntity struct {
	EmpCode      string `json:"emp_code"`
	Project      string `json:"project"`
	Module       string `json:"module"`
	Submodule    string `json:"submodule"`
	TaskDetails  string `json:"task_details"`
	AssignedFrom string `json:"assigned_from"`
	Status       string `json:"status"`
}

// TaskEntityModel ...
type TaskEntityModel struct {
	TaskID int `json:"task_id" param:"task_id" form:"task_id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;column:task_id"`

	// entity
	TaskEntity

	abstraction.EntityJustCreated

	Employee EmployeeEntityModel `json:"employee" gorm:"foreignKey:EmpCode;references:EmpCode"`

	// context
	Context *abstraction.Context `json:"-" gorm:"-"`
}

// TableName ...
func (TaskEntityModel) TableName() string {
	return "task_details"
}

type TaskCountDataModel struct {
	Count int `json:"count"`
}

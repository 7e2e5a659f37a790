package dto

type TaskCreateRequest struct {
	EmpCode      string `json:"emp_code" form:"emp_code" validate:"required"`
	Project      string `json:"project" form:"project" validate:"required"`
	Module       string `json:"module" form:"module" validate:"required"`
	Submodule    string `json:"submodule" form:"submodule"`
	TaskDetails  string `json:"task_details" form:"task_details"`
	AssignedFrom string `json:"assigned_from" form:"assigned_from" validate:"required"`
}

type TaskFindByEmpCodeRequest struct {
	EmpCode string `param:"emp_code" validate:"required"`
}

type TaskUpdateStatusRequest struct {
	TaskID int    `param:"task_id" validate:"required"`
	Status string `json:"status" form:"status" validate:"required"`
}

type TaskDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

package dto

type EmployeeCreateRequest struct {
	Name          string  `json:"name" form:"name" validate:"required"`
	Email         string  `json:"email" form:"email" validate:"required,email"`
	Department    string  `json:"department" form:"department" validate:"required"`
	Position      string  `json:"position" form:"position" validate:"required"`
	Mobile        *string `json:"mobile" form:"mobile"`
	DateOfJoining *string `json:"date_of_joining" form:"date_of_joining"`
}

type EmployeeDeleteByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type EmployeeFindByCodeRequest struct {
	EmpCode string `param:"emp_code" validate:"required"`
}

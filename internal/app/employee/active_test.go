package employee

import (
	"testing"

	"emptrack/internal/model"
	"emptrack/pkg/constant"
)

func emp(code, name string) *model.EmployeeEntityModel {
	return &model.EmployeeEntityModel{
		EmployeeEntity: model.EmployeeEntity{EmpCode: code, Name: name},
	}
}

func tsk(code, status string) *model.TaskEntityModel {
	return &model.TaskEntityModel{
		TaskEntity: model.TaskEntity{EmpCode: code, Status: status},
	}
}

func TestActiveEmployees(t *testing.T) {
	employees := []*model.EmployeeEntityModel{
		emp("DS001", "Alice"),
		emp("DS002", "Bob"),
		emp("DS003", "Carol"),
		emp("DS004", "Dave"),
	}
	tasks := []*model.TaskEntityModel{
		tsk("DS001", constant.STATUS_COMPLETED),
		tsk("DS001", constant.STATUS_COMPLETED),
		tsk("DS002", constant.STATUS_COMPLETED),
		tsk("DS002", constant.STATUS_IN_PROGRESS),
		tsk("DS004", constant.STATUS_PENDING),
	}

	got := activeEmployees(employees, tasks)

	// only Alice has tasks and all of them completed; Carol has none,
	// Bob and Dave hold unfinished work
	if len(got) != 1 {
		t.Fatalf("got %d active employees, want 1", len(got))
	}
	if got[0].employee.EmpCode != "DS001" {
		t.Errorf("active employee = %s, want DS001", got[0].employee.EmpCode)
	}
	if got[0].taskCount != 2 {
		t.Errorf("taskCount = %d, want 2", got[0].taskCount)
	}
}

func TestActiveEmployeesZeroTasksNeverActive(t *testing.T) {
	employees := []*model.EmployeeEntityModel{emp("DS001", "Alice")}

	if got := activeEmployees(employees, nil); len(got) != 0 {
		t.Errorf("employee without tasks reported active: %v", got)
	}
}

func TestActiveEmployeesOrderPreserved(t *testing.T) {
	employees := []*model.EmployeeEntityModel{
		emp("DS003", "Carol"),
		emp("DS001", "Alice"),
	}
	tasks := []*model.TaskEntityModel{
		tsk("DS001", constant.STATUS_COMPLETED),
		tsk("DS003", constant.STATUS_COMPLETED),
	}

	got := activeEmployees(employees, tasks)
	if len(got) != 2 {
		t.Fatalf("got %d active employees, want 2", len(got))
	}
	if got[0].employee.EmpCode != "DS003" || got[1].employee.EmpCode != "DS001" {
		t.Errorf("order not preserved: %s, %s", got[0].employee.EmpCode, got[1].employee.EmpCode)
	}
}

package report

import (
	"testing"
	"time"

	"emptrack/internal/model"
)

func makeTask(id int, name, code, project, module, submodule, details, status string) *model.TaskEntityModel {
	return &model.TaskEntityModel{
		TaskID: id,
		TaskEntity: model.TaskEntity{
			EmpCode:     code,
			Project:     project,
			Module:      module,
			Submodule:   submodule,
			TaskDetails: details,
			Status:      status,
		},
		Employee: model.EmployeeEntityModel{
			EmployeeEntity: model.EmployeeEntity{EmpCode: code, Name: name},
		},
	}
}

func withCreatedAt(t *model.TaskEntityModel, at time.Time) *model.TaskEntityModel {
	t.CreatedAt = at
	return t
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleTasks() []*model.TaskEntityModel {
	return []*model.TaskEntityModel{
		withCreatedAt(
			makeTask(1, "Alice", "DS001", "Phi", "Billing", "Invoices", "monthly invoice run", "Completed"),
			time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)),
		withCreatedAt(
			makeTask(2, "Alice", "DS001", "Omega", "Auth", "", "login hardening", "Pending"),
			time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)),
		withCreatedAt(
			makeTask(3, "Bob", "DS002", "Phi", "Billing", "Refunds", "refund flow", "In Progress"),
			time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)),
		withCreatedAt(
			makeTask(4, "Bob", "DS002", "Omega", "Reports", "", "quarterly export", "Completed"),
			time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)),
	}
}

func taskIDs(tasks []*model.TaskEntityModel) []int {
	var ids []int
	for _, t := range tasks {
		ids = append(ids, t.TaskID)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterTasksByEmployeeProjectAndRange(t *testing.T) {
	tasks := sampleTasks()

	got := filterTasks(tasks, selection{
		Employee: "Alice",
		Project:  "Phi",
		From:     day(2024, 1, 1),
		To:       day(2024, 1, 31),
	})
	if !equalIDs(taskIDs(got), []int{1}) {
		t.Errorf("filtered ids = %v, want [1]", taskIDs(got))
	}
}

func TestFilterTasksSameDayRange(t *testing.T) {
	tasks := sampleTasks()

	got := filterTasks(tasks, selection{From: day(2024, 1, 20), To: day(2024, 1, 20)})
	if !equalIDs(taskIDs(got), []int{2}) {
		t.Errorf("filtered ids = %v, want [2]", taskIDs(got))
	}
}

func TestFilterTasksRangeUsesReportZoneDay(t *testing.T) {
	// 19:00 UTC is already the next calendar day at UTC+5:30
	tasks := []*model.TaskEntityModel{
		withCreatedAt(
			makeTask(1, "Alice", "DS001", "Phi", "Billing", "", "late entry", "Pending"),
			time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)),
	}

	if got := filterTasks(tasks, selection{From: day(2024, 1, 15), To: day(2024, 1, 15)}); len(got) != 0 {
		t.Errorf("task after zone boundary matched the 15th: %v", taskIDs(got))
	}
	if got := filterTasks(tasks, selection{From: day(2024, 1, 16), To: day(2024, 1, 16)}); !equalIDs(taskIDs(got), []int{1}) {
		t.Errorf("task not matched on its report-zone day: %v", taskIDs(got))
	}
}

func TestFilterTasksStatusCaseInsensitive(t *testing.T) {
	tasks := sampleTasks()

	got := filterTasks(tasks, selection{Status: "completed"})
	if !equalIDs(taskIDs(got), []int{1, 4}) {
		t.Errorf("filtered ids = %v, want [1 4]", taskIDs(got))
	}
}

func TestFilterTasksSearch(t *testing.T) {
	tasks := sampleTasks()

	cases := []struct {
		name   string
		search string
		want   []int
	}{
		{"matches details", "invoice", []int{1}},
		{"matches module case-insensitive", "BILLING", []int{1, 3}},
		{"matches submodule", "refunds", []int{3}},
		{"no match", "payroll", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := filterTasks(tasks, selection{Search: c.search})
			if !equalIDs(taskIDs(got), c.want) {
				t.Errorf("filtered ids = %v, want %v", taskIDs(got), c.want)
			}
		})
	}
}

func TestFilterOptionsFunnel(t *testing.T) {
	tasks := sampleTasks()

	opts, sel := filterOptions(tasks, selection{Employee: "Alice"})

	if len(opts.Employees) != 2 {
		t.Fatalf("employees = %v, want Alice and Bob", opts.Employees)
	}
	// projects narrow to Alice's tasks only
	if len(opts.Projects) != 2 || opts.Projects[0] != "Phi" || opts.Projects[1] != "Omega" {
		t.Errorf("projects = %v, want [Phi Omega]", opts.Projects)
	}
	if sel.Employee != "Alice" {
		t.Errorf("selection employee cleared unexpectedly: %q", sel.Employee)
	}

	opts, _ = filterOptions(tasks, selection{Employee: "Alice", Project: "Phi"})
	if len(opts.Statuses) != 1 || opts.Statuses[0] != "Completed" {
		t.Errorf("statuses = %v, want [Completed]", opts.Statuses)
	}
}

func TestFilterOptionsClearsInconsistentDownstream(t *testing.T) {
	tasks := sampleTasks()

	_, sel := filterOptions(tasks, selection{Employee: "Carol", Project: "Phi", Status: "Completed"})
	if sel.Employee != "" || sel.Project != "" || sel.Status != "" {
		t.Errorf("unknown employee did not clear the funnel: %+v", sel)
	}

	_, sel = filterOptions(tasks, selection{Employee: "Alice", Project: "Nonexistent", Status: "Pending"})
	if sel.Employee != "Alice" {
		t.Errorf("employee cleared unexpectedly: %q", sel.Employee)
	}
	if sel.Project != "" || sel.Status != "" {
		t.Errorf("inconsistent project did not clear downstream: %+v", sel)
	}

	// consistent selections survive
	_, sel = filterOptions(tasks, selection{Employee: "Alice", Project: "Omega", Status: "Pending"})
	if sel.Project != "Omega" || sel.Status != "Pending" {
		t.Errorf("consistent selection was cleared: %+v", sel)
	}
}

func TestFilterOptionsStatusCaseInsensitive(t *testing.T) {
	tasks := sampleTasks()

	_, sel := filterOptions(tasks, selection{Status: "completed"})
	if sel.Status != "completed" {
		t.Errorf("case-differing status was cleared: %q", sel.Status)
	}
}

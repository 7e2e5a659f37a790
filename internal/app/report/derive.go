package report

import (
	"strings"
	"time"

	"emptrack/internal/model"
	"emptrack/pkg/util/general"
)

// selection is the current partial filter choice on the report page.
// From and To are day-truncated dates in the report zone, nil when unset.
type selection struct {
	Employee string
	Project  string
	Status   string
	Search   string
	From     *time.Time
	To       *time.Time
}

// options holds the cascading dropdown contents. Each list narrows the next:
// projects are taken from tasks of the selected employee, statuses from tasks
// of the selected employee and project.
type options struct {
	Employees []string
	Projects  []string
	Statuses  []string
}

func filterTasks(tasks []*model.TaskEntityModel, sel selection) []*model.TaskEntityModel {
	var res []*model.TaskEntityModel
	search := strings.ToLower(strings.TrimSpace(sel.Search))
	for _, t := range tasks {
		if sel.Employee != "" && t.Employee.Name != sel.Employee {
			continue
		}
		if sel.Project != "" && t.Project != sel.Project {
			continue
		}
		if sel.Status != "" && !strings.EqualFold(t.Status, sel.Status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.TaskDetails), search) &&
			!strings.Contains(strings.ToLower(t.Module), search) &&
			!strings.Contains(strings.ToLower(t.Submodule), search) {
			continue
		}
		if sel.From != nil || sel.To != nil {
			day := general.DayInReportZone(t.CreatedAt)
			if sel.From != nil && day.Before(*sel.From) {
				continue
			}
			if sel.To != nil && day.After(*sel.To) {
				continue
			}
		}
		res = append(res, t)
	}
	return res
}

// filterOptions derives the dropdown contents from the full task set and the
// current selection. A selection that is no longer consistent with its
// upstream choice is cleared, together with everything downstream of it,
// before the narrower lists are derived. The normalized selection is returned
// alongside the options.
func filterOptions(tasks []*model.TaskEntityModel, sel selection) (options, selection) {
	var opts options

	opts.Employees = distinct(tasks, func(t *model.TaskEntityModel) string { return t.Employee.Name })
	if sel.Employee != "" && !contains(opts.Employees, sel.Employee) {
		sel.Employee = ""
		sel.Project = ""
		sel.Status = ""
	}

	byEmployee := filterTasks(tasks, selection{Employee: sel.Employee})
	opts.Projects = distinct(byEmployee, func(t *model.TaskEntityModel) string { return t.Project })
	if sel.Project != "" && !contains(opts.Projects, sel.Project) {
		sel.Project = ""
		sel.Status = ""
	}

	byProject := filterTasks(tasks, selection{Employee: sel.Employee, Project: sel.Project})
	opts.Statuses = distinct(byProject, func(t *model.TaskEntityModel) string { return t.Status })
	if sel.Status != "" && !containsFold(opts.Statuses, sel.Status) {
		sel.Status = ""
	}

	return opts, sel
}

func distinct(tasks []*model.TaskEntityModel, key func(*model.TaskEntityModel) string) []string {
	seen := make(map[string]bool)
	var res []string
	for _, t := range tasks {
		k := key(t)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, k)
	}
	return res
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

package employee

import (
	"emptrack/internal/model"
	"emptrack/pkg/constant"
)

type activeEmployee struct {
	employee  *model.EmployeeEntityModel
	taskCount int
}

// activeEmployees keeps the employees whose task set is non-empty and fully
// completed. An employee without tasks is never active. Input order is
// preserved.
func activeEmployees(employees []*model.EmployeeEntityModel, tasks []*model.TaskEntityModel) []activeEmployee {
	tasksByCode := make(map[string][]*model.TaskEntityModel)
	for _, t := range tasks {
		tasksByCode[t.EmpCode] = append(tasksByCode[t.EmpCode], t)
	}

	var res []activeEmployee
	for _, e := range employees {
		owned := tasksByCode[e.EmpCode]
		if len(owned) == 0 {
			continue
		}
		completed := true
		for _, t := range owned {
			if t.Status != constant.STATUS_COMPLETED {
				completed = false
				break
			}
		}
		if completed {
			res = append(res, activeEmployee{employee: e, taskCount: len(owned)})
		}
	}
	return res
}

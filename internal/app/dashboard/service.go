package dashboard

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/factory"
	"emptrack/internal/repository"
	"emptrack/pkg/constant"
	"emptrack/pkg/util/response"
	"net/http"

	"gorm.io/gorm"
)

type Service interface {
	Stats(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	EmployeeRepository repository.Employee
	TaskRepository     repository.Task

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		EmployeeRepository: f.EmployeeRepository,
		TaskRepository:     f.TaskRepository,

		DB: f.Db,
	}
}

func (s *service) Stats(ctx *abstraction.Context) (map[string]interface{}, error) {
	totalEmployees, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	totalTasks, err := s.TaskRepository.Count(ctx)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	pendingTasks, err := s.TaskRepository.CountByStatus(ctx, constant.STATUS_PENDING)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	return map[string]interface{}{
		"total_employees": totalEmployees,
		"total_tasks":     totalTasks,
		"pending_tasks":   pendingTasks,
	}, nil
}

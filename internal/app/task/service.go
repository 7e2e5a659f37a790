package task

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/dto"
	"emptrack/internal/factory"
	"emptrack/internal/model"
	"emptrack/internal/repository"
	"emptrack/pkg/constant"
	"emptrack/pkg/util/general"
	"emptrack/pkg/util/response"
	"emptrack/pkg/util/trxmanager"
	"net/http"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.TaskCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindByEmpCode(ctx *abstraction.Context, payload *dto.TaskFindByEmpCodeRequest) (map[string]interface{}, error)
	UpdateStatus(ctx *abstraction.Context, payload *dto.TaskUpdateStatusRequest) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.TaskDeleteByIDRequest) (map[string]interface{}, error)
}

type service struct {
	TaskRepository     repository.Task
	EmployeeRepository repository.Employee

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		TaskRepository:     f.TaskRepository,
		EmployeeRepository: f.EmployeeRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.TaskCreateRequest) (map[string]interface{}, error) {
	var created *model.TaskEntityModel

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		empData, err := s.EmployeeRepository.FindByCode(ctx, payload.EmpCode)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if empData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "employee not found")
		}

		data := &model.TaskEntityModel{
			Context: ctx,
			TaskEntity: model.TaskEntity{
				EmpCode:      payload.EmpCode,
				Project:      payload.Project,
				Module:       payload.Module,
				Submodule:    payload.Submodule,
				TaskDetails:  payload.TaskDetails,
				AssignedFrom: payload.AssignedFrom,
				// any status supplied by the caller is ignored
				Status: constant.STATUS_PENDING,
			},
		}
		data.CreatedAt = *general.NowUTC()

		if err = s.TaskRepository.Create(ctx, data).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		data.Employee = *empData
		created = data

		return nil
	}); err != nil {
		return nil, err
	}

	return shapeTask(created), nil
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.TaskRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.TaskRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, shapeTask(v))
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindByEmpCode(ctx *abstraction.Context, payload *dto.TaskFindByEmpCodeRequest) (map[string]interface{}, error) {
	data, err := s.TaskRepository.FindByEmpCode(ctx, payload.EmpCode)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, shapeTask(v))
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

func (s *service) UpdateStatus(ctx *abstraction.Context, payload *dto.TaskUpdateStatusRequest) (map[string]interface{}, error) {
	if !constant.IsValidTaskStatus(payload.Status) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "status must be one of Pending, In Progress, Completed")
	}

	var updated *model.TaskEntityModel
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		result := s.TaskRepository.UpdateStatus(ctx, payload.TaskID, payload.Status)
		if result.Error != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, result.Error, "server_error")
		}
		if result.RowsAffected == 0 {
			return response.ErrorBuilder(http.StatusNotFound, errors.New("not_found"), "Task not found")
		}

		data, err := s.TaskRepository.FindById(ctx, payload.TaskID)
		if err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		updated = data

		return nil
	}); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "Status updated successfully",
		"task":    shapeTask(updated),
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.TaskDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		result := s.TaskRepository.DeleteById(ctx, payload.ID)
		if result.Error != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, result.Error, "server_error")
		}
		if result.RowsAffected == 0 {
			return response.ErrorBuilder(http.StatusNotFound, errors.New("not_found"), "Task not found")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "Task deleted successfully",
	}, nil
}

func shapeTask(v *model.TaskEntityModel) map[string]interface{} {
	return map[string]interface{}{
		"task_id":       v.TaskID,
		"emp_code":      v.EmpCode,
		"emp_name":      v.Employee.Name,
		"project":       v.Project,
		"module":        v.Module,
		"submodule":     v.Submodule,
		"task_details":  v.TaskDetails,
		"assigned_from": v.AssignedFrom,
		"status":        v.Status,
		"created_at":    general.FormatWithZWithoutChangingTime(v.CreatedAt),
	}
}

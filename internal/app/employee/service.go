package employee

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
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.EmployeeCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindSummary(ctx *abstraction.Context) (map[string]interface{}, error)
	FindByCode(ctx *abstraction.Context, payload *dto.EmployeeFindByCodeRequest) (map[string]interface{}, error)
	FindActive(ctx *abstraction.Context) (map[string]interface{}, error)
	Delete(ctx *abstraction.Context, payload *dto.EmployeeDeleteByIDRequest) (map[string]interface{}, error)
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

func (s *service) Create(ctx *abstraction.Context, payload *dto.EmployeeCreateRequest) (map[string]interface{}, error) {
	plainPassword := general.GeneratePassword(10, 1, 1, 1, 1)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	// the next code comes from MAX(emp_code), the unique index turns a race
	// between concurrent creates into a retriable conflict. Postgres aborts
	// the whole transaction on a unique violation, so every attempt has to
	// start over on a fresh one.
	var created *model.EmployeeEntityModel
	for attempt := 0; ; attempt++ {
		trxErr := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
			maxCode, err := s.EmployeeRepository.FindMaxCode(ctx)
			if err != nil {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}

			data := &model.EmployeeEntityModel{
				Context: ctx,
				EmployeeEntity: model.EmployeeEntity{
					EmpCode:       general.NextEmpCode(maxCode),
					Name:          payload.Name,
					Email:         payload.Email,
					Department:    payload.Department,
					Position:      payload.Position,
					Mobile:        general.NormalizeMobile(payload.Mobile),
					DateOfJoining: general.ParseDateOnly(payload.DateOfJoining),
					Password:      string(hashedPassword),
				},
			}
			data.CreatedAt = *general.NowUTC()

			if err = s.EmployeeRepository.Create(ctx, data).Error; err != nil {
				return err
			}
			created = data
			return nil
		})
		if trxErr == nil {
			break
		}
		if strings.Contains(trxErr.Error(), "duplicate key") && attempt < constant.EMP_CODE_MAX_RETRY {
			continue
		}
		return nil, response.ErrorResponse(trxErr)
	}

	return map[string]interface{}{
		"id":              created.ID,
		"emp_code":        created.EmpCode,
		"name":            created.Name,
		"email":           created.Email,
		"department":      created.Department,
		"position":        created.Position,
		"mobile":          created.Mobile,
		"date_of_joining": general.FormatDateOnly(created.DateOfJoining),
		"created_at":      general.FormatWithZWithoutChangingTime(created.CreatedAt),
		// one-time credential, never readable again
		"password": plainPassword,
	}, nil
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.EmployeeRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.EmployeeRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, shapeEmployee(v))
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindSummary(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.EmployeeRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"emp_code": v.EmpCode,
			"name":     v.Name,
		})
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

func (s *service) FindByCode(ctx *abstraction.Context, payload *dto.EmployeeFindByCodeRequest) (map[string]interface{}, error) {
	data, err := s.EmployeeRepository.FindByCode(ctx, payload.EmpCode)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data == nil {
		return nil, response.ErrorBuilder(http.StatusNotFound, errors.New("not_found"), "Employee not found")
	}
	return map[string]interface{}{
		"data": shapeEmployee(data),
	}, nil
}

func (s *service) FindActive(ctx *abstraction.Context) (map[string]interface{}, error) {
	employees, err := s.EmployeeRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	tasks, err := s.TaskRepository.FindAll(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range activeEmployees(employees, tasks) {
		row := shapeEmployee(v.employee)
		row["completed_tasks"] = v.taskCount
		res = append(res, row)
	}
	return map[string]interface{}{
		"count": len(res),
		"data":  res,
	}, nil
}

func (s *service) Delete(ctx *abstraction.Context, payload *dto.EmployeeDeleteByIDRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		data, err := s.EmployeeRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if data == nil {
			return response.ErrorBuilder(http.StatusNotFound, errors.New("not_found"), "Employee not found")
		}

		// tasks first, both inside the same transaction so a failure can not
		// orphan rows
		if err = s.TaskRepository.DeleteByEmpCode(ctx, data.EmpCode).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if err = s.EmployeeRepository.DeleteById(ctx, data.ID).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "Employee deleted",
	}, nil
}

func shapeEmployee(v *model.EmployeeEntityModel) map[string]interface{} {
	return map[string]interface{}{
		"id":              v.ID,
		"emp_code":        v.EmpCode,
		"name":            v.Name,
		"email":           v.Email,
		"department":      v.Department,
		"position":        v.Position,
		"mobile":          v.Mobile,
		"date_of_joining": general.FormatDateOnly(v.DateOfJoining),
		"created_at":      general.FormatWithZWithoutChangingTime(v.CreatedAt),
	}
}

package auth

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/dto"
	"emptrack/internal/factory"
	modelToken "emptrack/internal/model/token"
	"emptrack/internal/repository"
	"emptrack/pkg/constant"
	"emptrack/pkg/util/general"
	"emptrack/pkg/util/response"
	"emptrack/pkg/util/trxmanager"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Login(ctx *abstraction.Context, payload *dto.AuthLoginRequest) (map[string]interface{}, error)
	Logout(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	AdminRepository    repository.Admin
	EmployeeRepository repository.Employee

	DB      *gorm.DB
	DbRedis *redis.Client
}

func NewService(f *factory.Factory) Service {
	return &service{
		AdminRepository:    f.AdminRepository,
		EmployeeRepository: f.EmployeeRepository,

		DB:      f.Db,
		DbRedis: f.DbRedis,
	}
}

func (s *service) Login(ctx *abstraction.Context, payload *dto.AuthLoginRequest) (map[string]interface{}, error) {
	username := strings.TrimSpace(payload.Username)
	if !general.IsValidEmpCode(username) {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "Username must start with 'DS' followed by 3 digits")
	}

	var res map[string]interface{}
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		adminData, err := s.AdminRepository.FindByUsername(ctx, username)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		if adminData != nil {
			if err = bcrypt.CompareHashAndPassword([]byte(adminData.Password), []byte(payload.Password)); err != nil {
				return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "Invalid password")
			}

			// profile fields come from emp_details, always looked up with the
			// validated username
			profile, err := s.EmployeeRepository.FindByCode(ctx, username)
			if err != nil && err.Error() != "record not found" {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}

			user := map[string]interface{}{
				"id":         adminData.ID,
				"emp_code":   adminData.Username,
				"username":   adminData.Username,
				"role":       adminData.Role,
				"created_at": general.FormatWithZWithoutChangingTime(adminData.CreatedAt),
				"name":       nil,
				"department": nil,
				"position":   nil,
			}
			if profile != nil {
				user["name"] = profile.Name
				user["department"] = profile.Department
				user["position"] = profile.Position
			}

			token, err := s.generateToken(adminData.ID, adminData.Username, adminData.Role)
			if err != nil {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}

			res = map[string]interface{}{
				"success": true,
				"role":    adminData.Role,
				"user":    user,
				"token":   token,
			}
			return nil
		}

		empData, err := s.EmployeeRepository.FindByCode(ctx, username)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if empData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "User not found")
		}

		if err = bcrypt.CompareHashAndPassword([]byte(empData.Password), []byte(payload.Password)); err != nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "Invalid password")
		}

		token, err := s.generateToken(0, empData.EmpCode, constant.ROLE_EMPLOYEE)
		if err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		res = map[string]interface{}{
			"success": true,
			"role":    constant.ROLE_EMPLOYEE,
			"user": map[string]interface{}{
				"id":         nil,
				"emp_code":   empData.EmpCode,
				"username":   empData.EmpCode,
				"role":       constant.ROLE_EMPLOYEE,
				"name":       empData.Name,
				"department": empData.Department,
				"position":   empData.Position,
				"created_at": nil,
			},
			"token": token,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *service) generateToken(id int, empCode, role string) (string, error) {
	uuidLogin := uuid.NewString()

	tokenClaims := &modelToken.TokenClaims{
		ID:        id,
		EmpCode:   empCode,
		Role:      role,
		UuidLogin: uuidLogin,
		Exp:       time.Now().Add(24 * time.Hour).Unix(),
	}
	authToken := modelToken.NewAuthToken(tokenClaims)
	token, err := authToken.Token()
	if err != nil {
		return "", err
	}

	general.AppendUUIDToRedisArray(s.DbRedis, general.GenerateRedisKeyUserLogin(empCode), uuidLogin)

	return token, nil
}

func (s *service) Logout(ctx *abstraction.Context) (map[string]interface{}, error) {
	general.RemoveUUIDFromRedisArray(s.DbRedis, general.GenerateRedisKeyUserLogin(ctx.Auth.EmpCode), ctx.Auth.UuidLogin)
	general.AppendUUIDToRedisArray(s.DbRedis, constant.REDIS_KEY_AUTO_LOGOUT, ctx.Auth.UuidLogin)

	return map[string]interface{}{
		"message": "success logout!",
	}, nil
}

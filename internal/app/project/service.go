package project

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/factory"
	"emptrack/internal/repository"
	"emptrack/pkg/util/response"
	"net/http"

	"gorm.io/gorm"
)

type Service interface {
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	ProjectRepository repository.Project

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		ProjectRepository: f.ProjectRepository,

		DB: f.Db,
	}
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.ProjectRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"project_id":   v.ProjectID,
			"project_name": v.ProjectName,
		})
	}
	return map[string]interface{}{
		"data": res,
	}, nil
}

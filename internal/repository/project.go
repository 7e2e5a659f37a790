package repository

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/model"

	"gorm.io/gorm"
)

type Project interface {
	Find(ctx *abstraction.Context) (data []*model.ProjectEntityModel, err error)
	Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB
	Count(ctx *abstraction.Context) (data *int, err error)
}

type project struct {
	abstraction.Repository
}

func NewProject(db *gorm.DB) *project {
	return &project{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *project) Find(ctx *abstraction.Context) (data []*model.ProjectEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Order("project_id ASC").
		Find(&data).
		Error
	return
}

func (r *project) Create(ctx *abstraction.Context, data *model.ProjectEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *project) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.TaskCountDataModel
	err = r.CheckTrx(ctx).
		Table("projects").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

package repository

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/model"
	"emptrack/pkg/util/general"

	"gorm.io/gorm"
)

type Task interface {
	Create(ctx *abstraction.Context, data *model.TaskEntityModel) *gorm.DB
	Find(ctx *abstraction.Context) (data []*model.TaskEntityModel, err error)
	FindAll(ctx *abstraction.Context) (data []*model.TaskEntityModel, err error)
	FindByEmpCode(ctx *abstraction.Context, empCode string) (data []*model.TaskEntityModel, err error)
	FindById(ctx *abstraction.Context, id int) (*model.TaskEntityModel, error)
	UpdateStatus(ctx *abstraction.Context, id int, status string) *gorm.DB
	DeleteById(ctx *abstraction.Context, id int) *gorm.DB
	DeleteByEmpCode(ctx *abstraction.Context, empCode string) *gorm.DB
	Count(ctx *abstraction.Context) (data *int, err error)
	CountByStatus(ctx *abstraction.Context, status string) (data *int, err error)
}

type task struct {
	abstraction.Repository
}

func NewTask(db *gorm.DB) *task {
	return &task{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *task) Create(ctx *abstraction.Context, data *model.TaskEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *task) Find(ctx *abstraction.Context) (data []*model.TaskEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "task_details", "")
	limit, offset := general.ProcessLimitOffset(ctx, true)

	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Limit(limit).
		Offset(offset).
		Order("task_id DESC").
		Preload("Employee").
		Find(&data).
		Error
	return
}

// FindAll ignores the query string, derived views need the whole task set.
func (r *task) FindAll(ctx *abstraction.Context) (data []*model.TaskEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Order("task_id DESC").
		Preload("Employee").
		Find(&data).
		Error
	return
}

func (r *task) FindByEmpCode(ctx *abstraction.Context, empCode string) (data []*model.TaskEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Where("emp_code = ?", empCode).
		Order("created_at DESC").
		Preload("Employee").
		Find(&data).
		Error
	return
}

func (r *task) FindById(ctx *abstraction.Context, id int) (*model.TaskEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.TaskEntityModel
	err := conn.
		Where("task_id = ?", id).
		Preload("Employee").
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *task) UpdateStatus(ctx *abstraction.Context, id int, status string) *gorm.DB {
	return r.CheckTrx(ctx).
		Model(&model.TaskEntityModel{}).
		Where("task_id = ?", id).
		Update("status", status)
}

func (r *task) DeleteById(ctx *abstraction.Context, id int) *gorm.DB {
	return r.CheckTrx(ctx).Where("task_id = ?", id).Delete(&model.TaskEntityModel{})
}

func (r *task) DeleteByEmpCode(ctx *abstraction.Context, empCode string) *gorm.DB {
	return r.CheckTrx(ctx).Where("emp_code = ?", empCode).Delete(&model.TaskEntityModel{})
}

func (r *task) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.TaskCountDataModel
	err = r.CheckTrx(ctx).
		Table("task_details").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

func (r *task) CountByStatus(ctx *abstraction.Context, status string) (data *int, err error) {
	var count model.TaskCountDataModel
	err = r.CheckTrx(ctx).
		Table("task_details").
		Select("COUNT(*) AS count").
		Where("status = ?", status).
		Find(&count).
		Error
	data = &count.Count
	return
}

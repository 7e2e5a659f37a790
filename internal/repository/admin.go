package repository

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/model"

	"gorm.io/gorm"
)

type Admin interface {
	FindByUsername(ctx *abstraction.Context, username string) (*model.AdminEntityModel, error)
	Create(ctx *abstraction.Context, data *model.AdminEntityModel) *gorm.DB
	Count(ctx *abstraction.Context) (data *int, err error)
}

type admin struct {
	abstraction.Repository
}

func NewAdmin(db *gorm.DB) *admin {
	return &admin{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *admin) FindByUsername(ctx *abstraction.Context, username string) (*model.AdminEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.AdminEntityModel
	err := conn.
		Where("username = ?", username).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *admin) Create(ctx *abstraction.Context, data *model.AdminEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *admin) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.EmployeeCountDataModel
	err = r.CheckTrx(ctx).
		Table("admin").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

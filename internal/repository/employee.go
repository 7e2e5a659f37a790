package repository

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/model"
	"emptrack/pkg/util/general"

	"gorm.io/gorm"
)

type Employee interface {
	Create(ctx *abstraction.Context, data *model.EmployeeEntityModel) *gorm.DB
	Find(ctx *abstraction.Context) (data []*model.EmployeeEntityModel, err error)
	FindById(ctx *abstraction.Context, id int) (*model.EmployeeEntityModel, error)
	FindByCode(ctx *abstraction.Context, empCode string) (*model.EmployeeEntityModel, error)
	DeleteById(ctx *abstraction.Context, id int) *gorm.DB
	Count(ctx *abstraction.Context) (data *int, err error)
	FindMaxCode(ctx *abstraction.Context) (data *string, err error)
}

type employee struct {
	abstraction.Repository
}

func NewEmployee(db *gorm.DB) *employee {
	return &employee{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *employee) Create(ctx *abstraction.Context, data *model.EmployeeEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(data)
}

func (r *employee) Find(ctx *abstraction.Context) (data []*model.EmployeeEntityModel, err error) {
	where, whereParam := general.ProcessWhereParam(ctx, "emp_details", "")
	limit, offset := general.ProcessLimitOffset(ctx, true)

	err = r.CheckTrx(ctx).
		Where(where, whereParam).
		Limit(limit).
		Offset(offset).
		Order("id ASC").
		Find(&data).
		Error
	return
}

func (r *employee) FindById(ctx *abstraction.Context, id int) (*model.EmployeeEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.EmployeeEntityModel
	err := conn.
		Where("id = ?", id).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *employee) FindByCode(ctx *abstraction.Context, empCode string) (*model.EmployeeEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.EmployeeEntityModel
	err := conn.
		Where("emp_code = ?", empCode).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *employee) DeleteById(ctx *abstraction.Context, id int) *gorm.DB {
	return r.CheckTrx(ctx).Where("id = ?", id).Delete(&model.EmployeeEntityModel{})
}

func (r *employee) FindMaxCode(ctx *abstraction.Context) (data *string, err error) {
	var row model.EmployeeMaxCodeDataModel
	err = r.CheckTrx(ctx).
		Table("emp_details").
		Select("MAX(emp_code) AS max_code").
		Find(&row).
		Error
	data = row.MaxCode
	return
}

func (r *employee) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.EmployeeCountDataModel
	err = r.CheckTrx(ctx).
		Table("emp_details").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

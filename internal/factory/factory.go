package factory

import (
	"emptrack/internal/repository"
	"emptrack/pkg/database"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Factory struct {
	Db *gorm.DB

	DbRedis *redis.Client

	Repository_initiated
}

type Repository_initiated struct {
	AdminRepository    repository.Admin
	EmployeeRepository repository.Employee
	TaskRepository     repository.Task
	ProjectRepository  repository.Project
}

func NewFactory() *Factory {
	f := &Factory{}
	f.SetupDb()
	f.SetupDbRedis()
	f.SetupRepository()
	return f
}

func (f *Factory) SetupDb() {
	db, err := database.Connection("POSTGRES")
	if err != nil {
		panic("Failed setup db, connection is undefined")
	}
	f.Db = db
}

func (f *Factory) SetupDbRedis() {
	dbRedis := database.InitRedis()
	f.DbRedis = dbRedis
}

func (f *Factory) SetupRepository() {
	if f.Db == nil {
		panic("Failed setup repository, db is undefined")
	}

	f.AdminRepository = repository.NewAdmin(f.Db)
	f.EmployeeRepository = repository.NewEmployee(f.Db)
	f.TaskRepository = repository.NewTask(f.Db)
	f.ProjectRepository = repository.NewProject(f.Db)
}

package database

import (
	"emptrack/internal/model"
	"emptrack/pkg/constant"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates the schema and seeds the static rows. Safe to run on every
// start.
func Migrate() {
	conn, err := Connection("POSTGRES")
	if err != nil {
		panic(err)
	}

	if err = conn.AutoMigrate(
		&model.AdminEntityModel{},
		&model.EmployeeEntityModel{},
		&model.TaskEntityModel{},
		&model.ProjectEntityModel{},
	); err != nil {
		panic(err)
	}

	seedAdmin(conn)
	seedProjects(conn)
}

func seedAdmin(conn *gorm.DB) {
	var count int64
	if err := conn.Model(&model.AdminEntityModel{}).Count(&count).Error; err != nil {
		panic(err)
	}
	if count > 0 {
		return
	}

	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		logrus.Warn("admin seed skipped, SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD not set")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	data := &model.AdminEntityModel{
		AdminEntity: model.AdminEntity{
			Username: username,
			Password: string(hashed),
			Role:     constant.ROLE_ADMIN,
		},
	}
	if err = conn.Create(data).Error; err != nil {
		panic(err)
	}
	logrus.Info("admin account seeded")
}

func seedProjects(conn *gorm.DB) {
	var count int64
	if err := conn.Model(&model.ProjectEntityModel{}).Count(&count).Error; err != nil {
		panic(err)
	}
	if count > 0 {
		return
	}

	names := []string{"Internal Tools", "Client Portal", "Mobile App", "Website Revamp"}
	for _, name := range names {
		data := &model.ProjectEntityModel{
			ProjectEntity: model.ProjectEntity{ProjectName: name},
		}
		if err := conn.Create(data).Error; err != nil {
			panic(err)
		}
	}
	logrus.Info("project reference data seeded")
}

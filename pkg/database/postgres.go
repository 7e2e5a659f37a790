package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Db interface {
	Init() (*gorm.DB, error)
}

type db struct {
	Host string
	User string
	Pass string
	Port string
	Name string
	Ssl  string
	Tz   string
}

type dbPostgres struct {
	db
}

func (c *dbPostgres) Init() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(c.dsn()), &gorm.Config{})
}

func (c *dbPostgres) dsn() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Pass, c.Name, c.Port, c.Ssl, c.Tz,
	)
}

package db

import (
	"github.com/inkwell-dev/inkwell/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultSQLitePath is used when no DATABASE_URL is configured.
// _foreign_keys=on so the driver enforces referential integrity.
const DefaultSQLitePath = "blog.db?_foreign_keys=on"

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	var dialector gorm.Dialector

	if dsn == "" {
		dialector = sqlite.Open(DefaultSQLitePath)
	} else {
		dialector = postgres.Open(dsn)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.BlogPost{},
		&models.Comment{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

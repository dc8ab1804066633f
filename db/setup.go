package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	entities := []interface{}{
		&models.Class{},
		&models.WorkItem{},
		&models.ImportantDate{},
		&models.Idea{},
		&models.Event{},
		&models.Workout{},
		&models.Exercise{},
		&models.BikeIdea{},
		&models.BikeEvent{},
	}

	migrator := gdb.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := gdb.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}

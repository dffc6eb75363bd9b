package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens the sqlite database at path and migrates the schema.
// Foreign keys are enabled so answer rows follow their assessment on delete.
func NewConnection(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Account{}, &Question{}, &Assessment{}, &Answer{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

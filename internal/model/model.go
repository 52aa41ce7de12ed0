// Package model defines database models.
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate runs the create-if-absent migration for the named model.
// gorm only issues conditional DDL, so concurrent callers racing on a
// cold start never fail or duplicate the table.
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Note":
		return db.AutoMigrate(Note{})
	}
	return nil
}

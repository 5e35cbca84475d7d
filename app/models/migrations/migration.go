package migrations

import (
	"github.com/Rakhulsr/go-restaurant/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}

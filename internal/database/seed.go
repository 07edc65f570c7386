package database

import (
	"gorm.io/gorm"

	"github.com/tostOS27/indoor-system/internal/models"
)

// SeedDemoRooms inserts a few sample rooms for local development.
// Skips entirely once any room exists.
func SeedDemoRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	lat := 52.2297
	lon := 21.0122
	rooms := []models.Room{
		{RoomNumber: "101", RoomCategoryID: 1, FloorID: 1, Latitude: &lat, Longitude: &lon},
		{RoomNumber: "102", RoomCategoryID: 1, FloorID: 1},
		{RoomNumber: "201", RoomCategoryID: 2, FloorID: 2},
	}
	return db.Create(&rooms).Error
}

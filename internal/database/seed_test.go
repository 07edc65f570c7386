package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tostOS27/indoor-system/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDemoRooms(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDemoRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var first models.Room
	require.NoError(t, db.Where("room_number = ?", "101").First(&first).Error)
	require.NotNil(t, first.Latitude)
	require.NotNil(t, first.Longitude)
	assert.Equal(t, 52.2297, *first.Latitude)

	var second models.Room
	require.NoError(t, db.Where("room_number = ?", "102").First(&second).Error)
	assert.Nil(t, second.Latitude)
	assert.Nil(t, second.Longitude)
}

func TestSeedDemoRoomsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDemoRooms(db))
	require.NoError(t, SeedDemoRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

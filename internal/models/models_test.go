package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}, &Restaurant{}, &Rating{}))
	return db
}

func TestBeforeCreateAssignsIDAndTimestamps(t *testing.T) {
	db := setupTestDB(t)

	user := &User{Name: "johan"}
	require.NoError(t, db.Create(user).Error)

	assert.Len(t, user.ID, 26, "ids are 26-character ULIDs")
	assert.Greater(t, user.CreatedAt, float64(0))
	assert.Equal(t, user.CreatedAt, user.LastUpdatedAt)
}

func TestBeforeUpdateRefreshesLastUpdatedAt(t *testing.T) {
	db := setupTestDB(t)

	restaurant := &Restaurant{Name: "Vovo Telo"}
	require.NoError(t, db.Create(restaurant).Error)
	created := restaurant.LastUpdatedAt

	time.Sleep(5 * time.Millisecond)
	restaurant.Name = "Vovo Telo Bakery"
	require.NoError(t, db.Save(restaurant).Error)

	assert.Greater(t, restaurant.LastUpdatedAt, created)
	assert.Equal(t, created, restaurant.CreatedAt, "created_at never changes")
}

func TestStarsCheckConstraint(t *testing.T) {
	db := setupTestDB(t)

	user := &User{Name: "johan"}
	restaurant := &Restaurant{Name: "Vovo Telo"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(restaurant).Error)

	bad := &Rating{UserID: user.ID, RestaurantID: restaurant.ID, Stars: 9}
	assert.Error(t, db.Create(bad).Error, "stars outside 1-5 must be rejected by the store")

	good := &Rating{UserID: user.ID, RestaurantID: restaurant.ID, Stars: 5}
	assert.NoError(t, db.Create(good).Error)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "user", User{}.TableName())
	assert.Equal(t, "restaurant", Restaurant{}.TableName())
	assert.Equal(t, "rating", Rating{}.TableName())
}

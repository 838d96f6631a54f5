package services

import (
	"testing"

	"github.com/aryan877/fit-track/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one pooled connection, or the in-memory database is not shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.WorkoutEntry{},
		&models.NutritionEntry{},
		&models.Goal{},
	)
	require.NoError(t, err)

	return db
}

func floatPtr(v float64) *float64 { return &v }

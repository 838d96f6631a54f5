package config

import (
	"fmt"
	"log"
	"os"

	"github.com/aryan877/fit-track/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment, opens the Postgres connection and runs
// migrations. The handle is returned so callers can inject it; the
// package-level DB stays set for convenience.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkoutEntry{},
		&models.NutritionEntry{},
		&models.Goal{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
	return db
}

// Close releases the underlying connection pool at process shutdown.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

// Package testutil provides the postgres harness shared by integration
// tests. Tests are skipped when no database is reachable.
package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkowalski/cycling-events-api/internal/models"
)

const defaultTestDSN = "host=localhost user=postgres password=postgres dbname=cycling_events_test port=5432 sslmode=disable TimeZone=UTC"

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping postgres integration tests: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("skipping postgres integration tests: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Bike{},
		&models.Event{},
		&models.EventParticipant{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	err = db.Exec("TRUNCATE event_participants, events, profiles, bikes, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to truncate test tables: %v", err)
	}

	return db
}

// CreateUser inserts a user with its profile, the way registration does.
func CreateUser(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Profile) {
	t.Helper()

	user := models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "Rider",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}

	profile := models.Profile{UserID: user.ID}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile for %s: %v", username, err)
	}
	return &user, &profile
}

// CreateEvent inserts an event with sensible defaults for everything but
// the name and limit.
func CreateEvent(t *testing.T, db *gorm.DB, creatorID uuid.UUID, name string, limit int) *models.Event {
	t.Helper()

	event := models.Event{
		EventName:        name,
		EventType:        models.EventTypeRace,
		Limit:            limit,
		Distance:         120,
		RouteDescription: "test route",
		Date:             time.Now().Add(48 * time.Hour),
		Start:            "Kraków",
		Finish:           "Kraków",
		Region:           models.RegionMalopolskie,
		Category:         models.CategoryRoad,
		CreatorID:        creatorID,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to create event %s: %v", name, err)
	}
	return &event
}

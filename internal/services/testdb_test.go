package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		SessionExpiry:    8760 * time.Hour,
		ResetTokenExpiry: time.Hour,
		FrontendURL:      "http://localhost:7777",
		Currency:         "usd",
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string, perms ...models.Permission) *models.User {
	t.Helper()

	if len(perms) == 0 {
		perms = []models.Permission{models.PermissionUser}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("seeded-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:          uuid.New(),
		Name:        "Test User",
		Email:       email,
		Password:    string(hash),
		Permissions: datatypes.NewJSONSlice(perms),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedItem(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string, price int64) *models.Item {
	t.Helper()

	item := &models.Item{
		ID:          uuid.New(),
		Title:       title,
		Description: "test item",
		Image:       "item.jpg",
		LargeImage:  "item-lg.jpg",
		Price:       price,
		UserID:      ownerID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// Package servicetest opens throwaway in-memory databases for service tests.
package servicetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

// OpenDB returns a migrated in-memory database scoped to the test. The shared
// cache keeps every pooled connection on the same database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.FreelancerProfile{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.Transaction{},
		&models.Job{},
		&models.Offer{},
		&models.Message{},
	))
	return db
}

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kyc-chain.backend/internal/infrastructure/models"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// TranslateError must match production so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Owner{},
		&models.Admin{},
		&models.Bank{},
		&models.Customer{},
		&models.Record{},
		&models.AccessRequest{},
		&models.Grant{},
		&models.HistoryEntry{},
	))

	return db
}

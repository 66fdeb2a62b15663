// Package testutil provides database fixtures for repository and use case tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

// AllModels lists every persisted model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&models.SystemSettingModel{},
		&models.SequenceLockModel{},
		&models.PlanModel{},
		&models.CustomerModel{},
		&models.ApplicationModel{},
		&models.LocationModel{},
		&models.SubscriberAccountModel{},
		&models.NetworkIdentityModel{},
		&models.CredentialPatternModel{},
		&models.ConnectivityEventModel{},
		&models.JobOrderModel{},
		&models.SessionStatusModel{},
		&models.LoginAccountModel{},
	}
}

// NewTestDB opens a private in-memory sqlite database with all tables migrated.
// The pool is limited to one connection, so code under test must route every
// query through the transaction carried in its context.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

// MockDB wraps a GORM database speaking the MySQL dialect over sqlmock.
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SqlDB *sql.DB
}

// NewMockDB creates a sqlmock-backed MySQL GORM connection. Expectations are
// verified on cleanup.
func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = mockDB.Close()
	})

	return &MockDB{DB: db, Mock: mock, SqlDB: mockDB}
}

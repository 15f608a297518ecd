package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	DefaultSQLitePath = "./data/insurance.db"
)

// SetupDatabase connects with retries and creates missing tables. It panics
// when no connection can be made.
func SetupDatabase() *gorm.DB {
	driver := env.GetEnv("DB_DRIVER", DriverSQLite)

	var err error
	for i := 0; i < maxRetries; i++ {
		var db *gorm.DB
		db, err = Open(driver)
		if err == nil {
			if err = AutoMigrate(db); err != nil {
				panic(err)
			}
			log.Printf("Connected to %s database", driver)
			return db
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retry in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	panic(err)
}

// Open connects to the configured database without migrating it.
func Open(driver string) (*gorm.DB, error) {
	switch driver {
	case DriverMySQL:
		// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", "quotefox"),
		)
		return gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{})
	case DriverSQLite:
		path := env.GetEnv("DB_PATH", DefaultSQLitePath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return openSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// OpenMemory opens a private in-memory SQLite database with all tables
// created. Each name gets its own database.
func OpenMemory(name string) (*gorm.DB, error) {
	db, err := openSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// single writer, avoids "database is locked"
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// AutoMigrate creates the Customers and Policies tables if they do not exist.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Policy{},
	)
}

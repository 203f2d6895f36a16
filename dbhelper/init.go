package dbhelper

import (
	"fmt"
	"time"

	"wardrobeapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB opens the documents database with the given driver ("sqlite" or
// "postgres") and migrates it.
func SetupDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Minute * 5)
	}
	if err := Migrate(db, &models.Document{}); err != nil {
		return nil, err
	}
	return db, nil
}

func SetupTestDB(path string) *gorm.DB {
	db, err := SetupDB("sqlite", path)
	if err != nil {
		panic(err)
	}
	db.Logger = db.Logger.LogMode(logger.Silent)
	return db
}

func PostgresDSN(username, password, host, port, name string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", username, password, host, port, name)
}

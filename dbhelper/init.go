package dbhelper

import (
	"fmt"

	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	for _, model := range []interface{}{
		&models.UserAccount{},
		&models.StylePreference{},
		&models.UserPushToken{},
		&models.Clothing{},
		&models.Outfit{},
	} {
		if err := Migrate(db, model); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// SetupTestDB connects to the local test database, the same one docker
// compose starts. Callers should guard with test.RequireDatabase.
func SetupTestDB() *gorm.DB {
	db, err := SetupDB(config.DatabaseConfig{
		Username:     services.GetEnv("TEST_DB_USERNAME", "fastpos"),
		Password:     services.GetEnv("TEST_DB_PASSWORD", "fastpos"),
		Host:         services.GetEnv("TEST_DB_HOST", "localhost"),
		Port:         services.GetEnv("TEST_DB_PORT", "5432"),
		Name:         services.GetEnv("TEST_DB_NAME", "fastpos"),
		MaxIdleConns: 2,
		MaxOpenConns: 10,
	})
	if err != nil {
		panic(err)
	}
	return db
}

package database

import (
	"fmt"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Models returns every entity migrated at boot, in a fixed order.
func Models() []interface{} {
	return []interface{}{
		&model.Admin{},
		&model.Contact{},
		&model.Internship{},
		&model.Notification{},
		&model.Pricing{},
		&model.Product{},
		&model.Service{},
		&model.Testimonial{},
		&model.Update{},
		&model.FAQ{},
		&model.ContactInfo{},
		&model.FooterItem{},
		&model.NavbarItem{},
		&model.ConversationNode{},
	}
}

// InitDB initializes the database connection with configuration and runs
// migrations (AutoMigrate reconciles columns on existing tables).
func InitDB(cfg *config.Config) error {
	var err error

	dsn := cfg.DB.GetDSN()

	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.DB.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// SetDB overrides the database instance; used by tests.
func SetDB(d *gorm.DB) {
	db = d
}

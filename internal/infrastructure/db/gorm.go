package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bde-backend/internal/config"
	"bde-backend/internal/domain/bde"
)

func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique-index violations as gorm.ErrDuplicatedKey on both drivers.
		TranslateError: true,
	}

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dial = mysql.Open(cfg.MySQLDSN())
	case "sqlite":
		dial = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "mysql" {
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	} else {
		// sqlite: a single writer keeps "database is locked" errors away.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// AutoMigrate creates the BDE schema; called once at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bde.Employee{},
		&bde.Machine{},
		&bde.WorkOrder{},
		&bde.Operation{},
		&bde.ActivityRecord{},
	)
}

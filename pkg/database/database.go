// Package database opens the gorm connection every service shares.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options selects the backend. Type is "postgres" (default) or "sqlite";
// Path is only read for sqlite.
type Options struct {
	Type     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
	Verbose  bool
}

func (o Options) DSN() string {
	if o.Type == "sqlite" {
		return o.Path
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		o.Host, o.User, o.Password, o.Name, o.Port)
}

// Open connects and migrates the given models. Duplicate-key and not-found
// driver errors are translated to gorm's sentinels.
func Open(o Options, models ...any) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch o.Type {
	case "", "postgres":
		dialector = postgres.Open(o.DSN())
	case "sqlite":
		if o.Path == "" {
			return nil, fmt.Errorf("database: sqlite requires DB_PATH")
		}
		if dir := filepath.Dir(o.Path); dir != "." && o.Path != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("database: create %s: %w", dir, err)
			}
		}
		dialector = sqlite.Open(o.Path)
	default:
		return nil, fmt.Errorf("database: unsupported type %q", o.Type)
	}

	logMode := gormlogger.Warn
	if o.Verbose {
		logMode = gormlogger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	if o.Type == "sqlite" {
		// every new connection to :memory: would see an empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("database: migrate: %w", err)
		}
	}
	return db, nil
}

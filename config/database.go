package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the saved reports database for driver. The memory driver
// needs no database and returns nil.
func InitDB(s Settings) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if s.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}
	cfg := &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch s.DBDriver {
	case "", "memory":
		log.Println("⚠️ DB_DRIVER=memory, saved reports are kept in process only")
		return nil, nil
	case "sqlite":
		dsn := s.DatabaseURL
		if dsn == "" {
			dsn = "asinsights.db"
			log.Println("⚠️ DATABASE_URL not set, using local sqlite file:", dsn)
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		if s.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for DB_DRIVER=postgres")
		}
		dialector = postgres.Open(s.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.DBDriver)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", s.DBDriver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Printf("✅ %s database connected (GORM)", s.DBDriver)
	return db, nil
}

func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
		log.Println("✅ Database connection closed (GORM)")
	}
}

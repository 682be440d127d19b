package databases

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
)

type Cfg struct {
	Driver     string
	SQLitePath string
	MySQLDSN   string
	MaxOpen    int
	MaxIdle    int
}

// Open connects gorm to the configured SQL backend. An empty or ":memory:"
// sqlite path gives a private in-memory database pinned to one connection.
func Open(cfg Cfg) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	}

	switch cfg.Driver {
	case DriverSQLite, "":
		path := cfg.SQLitePath
		inMemory := path == "" || path == ":memory:"
		if inMemory {
			path = ":memory:"
		} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(path), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; in-memory databases also vanish per connection
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case DriverMySQL:
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if cfg.MaxOpen > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpen)
		}
		if cfg.MaxIdle > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdle)
		}
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return db, nil
	}
	return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
}

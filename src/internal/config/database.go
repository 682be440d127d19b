package config

import (
	"context"
	"fmt"

	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/databases"
	"wallet-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewDatabaseConfig(viper *viper.Viper) databases.Cfg {
	return databases.Cfg{
		Driver:     viper.GetString("storage.driver"),
		SQLitePath: viper.GetString("storage.sqlite.path"),
		MySQLDSN:   viper.GetString("storage.mysql.dsn"),
		MaxOpen:    viper.GetInt("storage.mysql.max_open"),
		MaxIdle:    viper.GetInt("storage.mysql.max_idle"),
	}
}

// NewSnapshotStore opens the slot store selected by storage.driver.
func NewSnapshotStore(ctx context.Context, viper *viper.Viper, log log.Log) (repository.SnapshotStore, error) {
	cfg := NewDatabaseConfig(viper)

	if cfg.Driver == databases.DriverRedis {
		client, err := NewRedis(ctx, viper)
		if err != nil {
			log.Error("database init", err.Error(), "redis", "")
			return nil, err
		}
		log.Info("database init", "snapshot store ready", "redis", viper.GetString("redis.host"))
		return repository.NewRedisSnapshotRepository(client, viper.GetString("storage.redis.prefix")), nil
	}

	db, err := databases.Open(cfg)
	if err != nil {
		log.Error("database init", err.Error(), cfg.Driver, "")
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Error("database init", err.Error(), cfg.Driver, "migrate")
		return nil, err
	}
	log.Info("database init", "snapshot store ready", cfg.Driver, cfg.SQLitePath)
	return repository.NewSnapshotRepository(db), nil
}

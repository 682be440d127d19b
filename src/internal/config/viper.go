package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.yaml from ./, ./config or the file named by
// $WALLET_CONFIG. Every key can be overridden from the environment with dots
// replaced by underscores, e.g. STORAGE_DRIVER=redis.
func NewViper() *viper.Viper {
	v, err := LoadViper(os.Getenv("WALLET_CONFIG"))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	return v
}

// LoadViper is NewViper with an explicit config file; an empty path searches
// the default locations and tolerates a missing file.
func LoadViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "WALLET_SERVICE")
	v.SetDefault("app.seed_demo", true)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("web.port", 8080)
	v.SetDefault("web.prefork", false)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite.path", "data/wallet.db")
	v.SetDefault("storage.mysql.dsn", "")
	v.SetDefault("storage.mysql.max_open", 10)
	v.SetDefault("storage.mysql.max_idle", 5)
	v.SetDefault("storage.redis.prefix", "wallet")

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.use_cluster", false)
	v.SetDefault("redis.tls", false)

	v.SetDefault("kafka.producer.enabled", false)
	v.SetDefault("kafka.client_id", "wallet-service")

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.tick_spec", "@every 1m")
	v.SetDefault("scheduler.sweep_spec", "@every 10m")

	v.SetDefault("token.encoder", "base64")
	v.SetDefault("rate.default", 1000)
}

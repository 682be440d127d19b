package config

import (
	"context"

	redisModule "wallet-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper) {
	CfgRedis := &redisModule.CfgRedis{
		UseCluster:           viper.GetBool("redis.use_cluster"),
		EnableTLS:            viper.GetBool("redis.tls"),
		RedisHost:            viper.GetString("redis.host"),
		RedisPort:            viper.GetString("redis.port"),
		RedisPassword:        viper.GetString("redis.password"),
		RedisDB:              viper.GetInt("redis.db"),
		RedisClusterNode:     viper.GetString("redis.cluster.node"),
		RedisClusterPassword: viper.GetString("redis.cluster.password"),
	}
	redisModule.LoadConfig(CfgRedis)
}

// NewRedis dials the configured redis and returns the shared client.
func NewRedis(ctx context.Context, viper *viper.Viper) (redis.UniversalClient, error) {
	LoadRedisConfig(viper)
	if err := redisModule.InitConnection(ctx); err != nil {
		return nil, err
	}
	return redisModule.GetClient(), nil
}

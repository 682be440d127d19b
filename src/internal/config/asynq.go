package config

import (
	"fmt"

	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

func NewAsynqRedisOpt(v *viper.Viper) asynq.RedisClientOpt {
	host := v.GetString("redis.host")
	if host == "" {
		host = "127.0.0.1"
	}

	port := v.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func NewAsynqClient(v *viper.Viper) *asynq.Client {
	return asynq.NewClient(NewAsynqRedisOpt(v))
}

func NewAsynqServer(v *viper.Viper) *asynq.Server {
	return asynq.NewServer(NewAsynqRedisOpt(v), asynq.Config{
		Concurrency: 2,
	})
}

// NewAsynqScheduler registers the periodic accrual tick and voucher expiry sweep.
func NewAsynqScheduler(v *viper.Viper, log log.Log) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(NewAsynqRedisOpt(v), nil)
	periodic := []struct {
		spec     string
		taskType string
	}{
		{v.GetString("scheduler.tick_spec"), usecase.TypeInvestmentTick},
		{v.GetString("scheduler.sweep_spec"), usecase.TypeVoucherExpireSweep},
	}
	for _, p := range periodic {
		entryID, err := scheduler.Register(p.spec, asynq.NewTask(p.taskType, nil))
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", p.taskType, err)
		}
		log.Info("asynq-scheduler", "periodic task registered", p.taskType, fmt.Sprintf("spec=%s entry=%s", p.spec, entryID))
	}
	return scheduler, nil
}

package config

import (
	"wallet-service/src/internal/delivery/http"
	"wallet-service/src/internal/delivery/http/route"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/repository"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/kafka"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Store     repository.SnapshotStore
	App       *fiber.App
	Log       log.Log
	Validate  *validator.Validate
	Config    *viper.Viper
	Producer  kafka.Producer
	Clock     clock.Clock
	Generator token.Generator
	Async     *asynq.ServeMux
}

// UseCases is every store service, shared by the HTTP app and walletctl.
type UseCases struct {
	Wallet     *usecase.WalletUseCase
	Rate       *usecase.RateUseCase
	Identity   *usecase.IdentityUseCase
	Training   *usecase.TrainingUseCase
	Investment *usecase.InvestmentUseCase
	Leave      *usecase.LeaveUseCase
	Voucher    *usecase.VoucherUseCase
	Service    *usecase.ServiceUseCase
}

func NewUseCases(config *BootstrapConfig) (*UseCases, error) {
	enc, err := token.NewEncoder(config.Config.GetString("token.encoder"))
	if err != nil {
		return nil, err
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.System{}
	}
	gen := config.Generator
	if gen == nil {
		gen = token.NewRandomGenerator()
	}
	seedDemo := config.Config.GetBool("app.seed_demo")

	walletProducer := messaging.NewWalletProducer(config.Producer, config.Log)
	lifecycleProducer := messaging.NewLifecycleProducer(config.Producer, config.Log)

	rate := usecase.NewRateUseCase(config.Log, config.Validate, config.Store, clk, decimal.NewFromFloat(config.Config.GetFloat64("rate.default")))
	return &UseCases{
		Wallet:     usecase.NewWalletUseCase(config.Log, config.Validate, config.Store, clk, gen, rate, walletProducer, seedDemo),
		Rate:       rate,
		Identity:   usecase.NewIdentityUseCase(config.Log, config.Validate, config.Store, clk, gen, enc, lifecycleProducer),
		Training:   usecase.NewTrainingUseCase(config.Log, config.Validate, config.Store, clk, gen, enc, lifecycleProducer, seedDemo),
		Investment: usecase.NewInvestmentUseCase(config.Log, config.Validate, config.Store, clk, gen, lifecycleProducer, seedDemo),
		Leave:      usecase.NewLeaveUseCase(config.Log, config.Validate, config.Store, clk, gen, enc, lifecycleProducer, seedDemo),
		Voucher:    usecase.NewVoucherUseCase(config.Log, config.Validate, config.Store, clk, gen, enc, lifecycleProducer),
		Service:    usecase.NewServiceUseCase(config.Log, config.Validate, config.Store, clk),
	}, nil
}

func Bootstrap(config *BootstrapConfig) (*UseCases, error) {
	useCases, err := NewUseCases(config)
	if err != nil {
		return nil, err
	}

	// setup controller
	routeConfig := route.RouteConfig{
		App:                  config.App,
		Log:                  config.Log,
		WalletController:     http.NewWalletController(useCases.Wallet, config.Log),
		RateController:       http.NewRateController(useCases.Rate, config.Log),
		IdentityController:   http.NewIdentityController(useCases.Identity, config.Log),
		TrainingController:   http.NewTrainingController(useCases.Training, config.Log),
		InvestmentController: http.NewInvestmentController(useCases.Investment, config.Log),
		LeaveController:      http.NewLeaveController(useCases.Leave, config.Log),
		VoucherController:    http.NewVoucherController(useCases.Voucher, config.Log),
		ServiceController:    http.NewServiceController(useCases.Service, config.Log),
	}
	routeConfig.Setup()

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TypeInvestmentTick, useCases.Investment.HandleTick)
		config.Async.HandleFunc(usecase.TypeVoucherExpireSweep, useCases.Voucher.HandleExpireSweep)
	}
	return useCases, nil
}

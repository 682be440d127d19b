package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"wallet-service/src/internal/config"
	"wallet-service/src/internal/model"
	"wallet-service/src/pkg/kafka"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const programName = "walletctl"

var globalFlags = struct {
	configFile string
	debug      bool
	timeout    time.Duration
}{}

type ctxKey struct{}

func useCasesFrom(cmd *cobra.Command) *config.UseCases {
	useCases, _ := cmd.Context().Value(ctxKey{}).(*config.UseCases)
	return useCases
}

// printResult writes the result data as JSON, or returns its error.
func printResult(cmd *cobra.Command, result utils.Result) error {
	if result.Error != nil {
		return result.Error
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result.Data)
}

func rateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show or change the KRW per CMD exchange rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, useCasesFrom(cmd).Rate.Get(cmd.Context()))
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <krw-per-cmd>",
		Short: "Set the exchange rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[0], err)
			}
			return printResult(cmd, useCasesFrom(cmd).Rate.SetRate(cmd.Context(), &model.SetRateRequest{KRWPerCMD: rate}))
		},
	})
	return cmd
}

func sweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire printed vouchers whose departure is more than a day old",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, useCasesFrom(cmd).Voucher.ExpireSweep(cmd.Context()))
		},
	}
}

func tickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Recompute accrued returns for every holding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, useCasesFrom(cmd).Investment.Tick(cmd.Context()))
		},
	}
}

func auditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check that the wallet balance matches the transaction log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, useCasesFrom(cmd).Wallet.Audit(cmd.Context()))
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Administer the wallet service stores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().
		StringVar(&globalFlags.configFile, "config", os.Getenv("WALLET_CONFIG"), "path to config file")
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		DurationVar(&globalFlags.timeout, "timeout", 30*time.Second, "give up after this long")

	var (
		cancel   context.CancelFunc
		producer kafka.Producer
	)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.LoadViper(globalFlags.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		level := "ERROR"
		if globalFlags.debug {
			level = "DEBUG"
		}
		logger := log.New(programName, level, os.Stderr)

		ctx, c := context.WithTimeout(cmd.Context(), globalFlags.timeout)
		cancel = c
		store, err := config.NewSnapshotStore(ctx, v, logger)
		if err != nil {
			return err
		}
		producer, err = config.NewKafkaProducer(v, logger)
		if err != nil {
			return err
		}
		useCases, err := config.NewUseCases(&config.BootstrapConfig{
			Store:    store,
			Log:      logger,
			Validate: config.NewValidator(v),
			Config:   v,
			Producer: producer,
		})
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(ctx, ctxKey{}, useCases))
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if producer != nil {
			_ = producer.Close()
		}
		if cancel != nil {
			cancel()
		}
	}

	rootCmd.AddCommand(rateCommand())
	rootCmd.AddCommand(sweepCommand())
	rootCmd.AddCommand(tickCommand())
	rootCmd.AddCommand(auditCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}

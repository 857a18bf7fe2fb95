package command

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	"github.com/tidepool-org/librelinkup/config"
	"github.com/tidepool-org/librelinkup/logger"
)

var logLevel string

// Run executes a given function with dependencies supplied by the DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewFromEnv,
			newLogger,
			logger.Suggar,
			client.NewFromConfig,
		),
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewLogger(cfg.LogLevel)
}

var rootCmd = &cobra.Command{
	Use:   "llu",
	Short: "Helper tool to query the LibreLinkUp API",
	Long:  "Credentials and region are read from LIBRELINKUP_EMAIL, LIBRELINKUP_PASSWORD and LIBRELINKUP_REGION",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite the configured log level
		if cmd.Flags().Changed("log-level") {
			return os.Setenv("LIBRELINKUP_LOG_LEVEL", logLevel)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "warn", "Log Level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

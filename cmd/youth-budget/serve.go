package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/iwvelando/youth-budget/internal/server"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagServerConfig string
	flagServeAddress string
	flagServeMaxBody string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web calculator and JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&flagServeAddress, "address", "", "listen address override, e.g. :8080")
	serveCmd.Flags().StringVar(&flagServeMaxBody, "max-body-size", "", "request body limit override, e.g. 64K")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	serverConf, err := server.LoadConfig(flagServerConfig)
	if err != nil {
		return err
	}
	if flagServeAddress != "" {
		serverConf.Address = flagServeAddress
	}
	if flagServeMaxBody != "" {
		size, err := server.ParseSize(flagServeMaxBody)
		if err != nil {
			return fmt.Errorf("invalid --max-body-size: %w", err)
		}
		if err := serverConf.SetBodySizeBytes(size); err != nil {
			return fmt.Errorf("invalid --max-body-size: %w", err)
		}
	}

	// The server config's logging section wins over the estimate config.
	serveLogger := logger
	if serverConf.Logging != (config.LoggingConfig{}) {
		l, err := initializeLogger(serverConf.Logging, flagLogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize server logger: %w", err)
		}
		defer func() {
			_ = l.Sync()
		}()
		serveLogger = l
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveLogger.Info("starting youth budget server",
		zap.String("op", "main.serve"),
		zap.String("version", version),
		zap.Int64("maxBodySize", serverConf.BodySizeBytes()),
	)
	return server.Run(ctx, serveLogger, serverConf, version)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/pkg/log"
)

var (
	version = "dev"
	commit  = "none"

	rootCmd = &cobra.Command{
		Use:   "salesync",
		Short: "Outlet sales snapshot sync",
		Long: `salesync pulls POS transactions from the ERP, aggregates sales per outlet for
today, yesterday and month-to-date, writes data.json and publishes it for the dashboard.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and configures logging before anything else logs.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.WithFields(logrus.Fields{
		"version":   version,
		"level":     logrus.GetLevel().String(),
		"publisher": cfg.Publisher.Kind,
	}).Debug("configuration loaded")

	return cfg, nil
}

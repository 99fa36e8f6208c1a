package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tofu702/solarstats/internal/config"
	"github.com/tofu702/solarstats/internal/energy"
	"github.com/tofu702/solarstats/internal/logging"
)

var (
	cfgFile string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "solarstats",
	Short: "Sun position and solar energy statistics",
	Long: `solarstats reports day length, sun times and solar noon altitude for any location,
and daily and monthly energy totals from exported Tesla CSV files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory of YYYY_MM.csv files (overrides data.dir)")
}

// loadConfig loads the configuration file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return cfg, nil
}

func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newParser() (*energy.Parser, error) {
	cfg, logger, err := setup()
	if err != nil {
		return nil, err
	}
	return energy.NewParser(cfg.Data.Dir, logger), nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/teamsite/internal/config"
	"github.com/Bitlatte/teamsite/internal/logging"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teamsite",
	Short: "teamsite builds the team and marketing site",
	Long: `teamsite takes Markdown content, YAML data files (navigation lists,
team rosters, roadmaps) and HTML layouts, and outputs a static website.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	l, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		l.WithField("file", cfg.File).Info("using config file")
	} else {
		l.Info("no config file found, using defaults and environment")
	}
	appConfig = cfg
	logger = l
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tupyy/async-engine/internal/config"
)

const envPrefix = "ASYNCD"

type rootOptions struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Configuration
	undoLogger func()
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{v: viper.New()})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "asyncd",
		Short:        "Adaptive asynchronous task engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.undoLogger != nil {
				_ = zap.L().Sync()
				opts.undoLogger()
			}
		},
	}

	registerFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newDemoCommand(opts))

	return cmd
}

func registerFlags(flags *pflag.FlagSet, opts *rootOptions) {
	d := config.NewConfigurationWithOptionsAndDefaults()

	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file, watched for changes")
	flags.Int("num-threads", d.Scheduler.NumThreads, "desired pool workers, negative means one per CPU")
	flags.Int("max-threads", d.Scheduler.MaxThreads, "upper bound of the pool")
	flags.String("server-mode", d.Server.ServerMode, "server mode: dev or prod")
	flags.Int("http-port", d.Server.HTTPPort, "admin HTTP port")
	flags.String("log-format", d.LogFormat, "log format: console or json")
	flags.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	flags.String("log-file", d.LogFile, "write logs to this file with rotation")

	bindings := map[string]string{
		"scheduler.num-threads": "num-threads",
		"scheduler.max-threads": "max-threads",
		"server.mode":           "server-mode",
		"server.http-port":      "http-port",
		"log-format":            "log-format",
		"log-level":             "log-level",
		"log-file":              "log-file",
	}
	for key, flag := range bindings {
		// BindPFlag only fails on a nil flag.
		_ = opts.v.BindPFlag(key, flags.Lookup(flag))
	}
}

func (o *rootOptions) load() error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	o.v.AutomaticEnv()

	if o.configFile != "" {
		o.v.SetConfigFile(o.configFile)
		o.v.SetConfigType("yaml")
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error while reading the config file: %w", err)
		}
	}

	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := o.v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error while unmarshaling the configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	o.undoLogger = zap.ReplaceGlobals(logger)

	zap.S().Named("asyncd").Debugw("configuration loaded", "config", cfg.DebugMap())

	return nil
}

package config

import (
	"fmt"
	"runtime"

	"go.uber.org/zap/zapcore"

	srvErrors "github.com/tupyy/async-engine/pkg/errors"
	"github.com/tupyy/async-engine/pkg/scheduler"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Scheduler Server

type Configuration struct {
	Scheduler Scheduler `mapstructure:"scheduler" debugmap:"visible"`
	Server    Server    `mapstructure:"server" debugmap:"visible"`
	LogFormat string    `mapstructure:"log-format" debugmap:"visible" default:"console"`
	LogLevel  string    `mapstructure:"log-level" debugmap:"visible" default:"info"`
	LogFile   string    `mapstructure:"log-file" debugmap:"visible"`
}

type Scheduler struct {
	// NumThreads is the desired pool size. Negative means one worker per CPU.
	NumThreads int `mapstructure:"num-threads" debugmap:"visible" default:"-1"`
	MaxThreads int `mapstructure:"max-threads" debugmap:"visible" default:"64"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" debugmap:"visible" default:"dev"`
	HTTPPort   int    `mapstructure:"http-port" debugmap:"visible" default:"8000"`
}

// Workers resolves NumThreads to a concrete pool size in [0, MaxThreads].
func (s Scheduler) Workers() int {
	n := s.NumThreads
	if n < 0 {
		n = runtime.NumCPU()
	}
	return min(n, s.MaxThreads)
}

func (c *Configuration) Validate() error {
	if c.Scheduler.MaxThreads < 1 || c.Scheduler.MaxThreads > scheduler.MaxThreads {
		return srvErrors.NewInvalidConfigurationError("scheduler.max-threads",
			fmt.Sprintf("must be between 1 and %d", scheduler.MaxThreads))
	}

	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return srvErrors.NewInvalidConfigurationError("server.mode", "must be \"dev\" or \"prod\"")
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewInvalidConfigurationError("server.http-port", "must be a valid TCP port")
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return srvErrors.NewInvalidConfigurationError("log-format", "must be \"console\" or \"json\"")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewInvalidConfigurationError("log-level", err.Error())
	}

	return nil
}

package config_test

import (
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/async-engine/internal/config"
	srvErrors "github.com/tupyy/async-engine/pkg/errors"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should fill nested sections", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Scheduler.NumThreads).To(Equal(-1))
			Expect(cfg.Scheduler.MaxThreads).To(Equal(64))
			Expect(cfg.Server.ServerMode).To(Equal("dev"))
			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithScheduler(*config.NewSchedulerWithOptionsAndDefaults(config.WithNumThreads(3))),
				config.WithLogLevel("debug"),
			)

			Expect(cfg.Scheduler.NumThreads).To(Equal(3))
			Expect(cfg.Scheduler.MaxThreads).To(Equal(64))
			Expect(cfg.LogLevel).To(Equal("debug"))
		})
	})

	Context("Workers", func() {
		It("should use the number of CPUs for a negative value", func() {
			s := config.NewSchedulerWithOptionsAndDefaults()
			Expect(s.Workers()).To(Equal(min(runtime.NumCPU(), 64)))
		})

		It("should clamp to the maximum", func() {
			s := config.NewSchedulerWithOptions(config.WithNumThreads(10), config.WithMaxThreads(2))
			Expect(s.Workers()).To(Equal(2))
		})

		It("should keep zero", func() {
			s := config.NewSchedulerWithOptionsAndDefaults(config.WithNumThreads(0))
			Expect(s.Workers()).To(BeZero())
		})
	})

	DescribeTable("Validate",
		func(opt config.ConfigurationOption, field string) {
			// Arrange
			cfg := config.NewConfigurationWithOptionsAndDefaults(opt)

			// Act
			err := cfg.Validate()

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(field))
		},
		Entry("max threads too high",
			config.WithScheduler(config.Scheduler{NumThreads: 1, MaxThreads: 65}), "scheduler.max-threads"),
		Entry("max threads zero",
			config.WithScheduler(config.Scheduler{NumThreads: 1, MaxThreads: 0}), "scheduler.max-threads"),
		Entry("unknown server mode",
			config.WithServer(config.Server{ServerMode: "test", HTTPPort: 8000}), "server.mode"),
		Entry("bad port",
			config.WithServer(config.Server{ServerMode: "dev", HTTPPort: 70000}), "server.http-port"),
		Entry("unknown log format", config.WithLogFormat("xml"), "log-format"),
		Entry("unknown log level", config.WithLogLevel("loud"), "log-level"),
	)

	It("should expose every field in the debug map", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		m := cfg.DebugMap()

		Expect(m).To(HaveKey("Scheduler"))
		Expect(m).To(HaveKey("Server"))
		Expect(m).To(HaveKey("LogLevel"))
		Expect(m).To(HaveKey("LogFormat"))
		Expect(m).To(HaveKey("LogFile"))
	})
})

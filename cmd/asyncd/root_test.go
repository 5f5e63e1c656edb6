package main

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/tupyy/async-engine/internal/config"
	srvErrors "github.com/tupyy/async-engine/pkg/errors"
)

var _ = Describe("root command", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	AfterEach(func() {
		os.Unsetenv("ASYNCD_SERVER_HTTP_PORT")
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, "asyncd.yaml")
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	// Given a config file, an environment variable and a flag
	// When the configuration is loaded
	// Then flags win over the environment which wins over the file
	It("should merge file, env and flags", func() {
		// Arrange
		path := writeConfig("scheduler:\n  num-threads: 3\nserver:\n  http-port: 9000\nlog-level: warn\n")
		Expect(os.Setenv("ASYNCD_SERVER_HTTP_PORT", "9100")).To(Succeed())

		opts := &rootOptions{v: viper.New()}
		cmd := newRootCommand(opts)
		cmd.SetArgs([]string{"--config", path, "--log-level", "debug", "demo", "--long-steps", "1", "--step-duration", "1ms"})

		// Act
		Expect(cmd.Execute()).To(Succeed())

		// Assert
		loaded := opts.cfg
		Expect(loaded).NotTo(BeNil())
		Expect(loaded.Scheduler.NumThreads).To(Equal(3))
		Expect(loaded.Scheduler.MaxThreads).To(Equal(64))
		Expect(loaded.Server.HTTPPort).To(Equal(9100))
		Expect(loaded.LogLevel).To(Equal("debug"))
	})

	It("should reject an invalid configuration", func() {
		path := writeConfig("scheduler:\n  max-threads: 1000\n")

		opts := &rootOptions{v: viper.New(), configFile: path}
		err := opts.load()

		Expect(srvErrors.IsInvalidConfigurationError(err)).To(BeTrue())
	})

	It("should write logs to a rotated file", func() {
		logFile := filepath.Join(dir, "asyncd.log")
		cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithLogFile(logFile), config.WithLogFormat("json"))

		logger, err := newLogger(cfg)
		Expect(err).NotTo(HaveOccurred())
		logger.Info("hello")
		_ = logger.Sync()

		content, err := os.ReadFile(logFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring(`"msg":"hello"`))
	})
})

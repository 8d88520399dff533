package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oriys/logbook/internal/config"
	"github.com/oriys/logbook/internal/factory"
	"github.com/oriys/logbook/internal/metrics"
	"github.com/oriys/logbook/internal/registry"
	"github.com/oriys/logbook/internal/telemetry"
)

// app 是一次命令执行的进程级上下文，拥有登记簿的单例绑定
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	vocab   *factory.Vocabulary
	holder  *registry.Holder
	gather  *prometheus.Registry
	command *cobra.Command
}

// newApp 加载配置并组装日志、指标和登记簿
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := telemetry.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	vocab, err := cfg.Vocabulary.Build()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: logger, vocab: vocab, command: cmd}
	opts := []registry.Option{
		registry.WithWriter(cmd.OutOrStdout()),
		registry.WithFactory(factory.New(vocab)),
		registry.WithLogger(telemetry.ComponentLogger(logger, "registry")),
	}
	if cfg.Metrics.Enabled {
		a.gather = prometheus.NewRegistry()
		opts = append(opts, registry.WithMetrics(metrics.NewMetrics(cfg.Metrics.Namespace, a.gather)))
	}
	a.holder = registry.NewHolder(opts...)

	logger.WithFields(logrus.Fields{
		"vocabulary": vocab.Name(),
		"config":     configPath(),
	}).Debug("Initialized logbook")
	return a, nil
}

// loadConfig 读取配置文件（如果有），再叠加命令行标志
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := configPath(); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("log_level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := viper.GetString("log_format"); v != "" {
		cfg.Logging.Format = v
	}
	if v := viper.GetString("vocabulary"); v != "" {
		cfg.Vocabulary.Preset = v
	}
	if viper.GetBool("metrics") {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// close 销毁登记簿，并在启用时输出指标
func (a *app) close() {
	a.holder.Destroy()
	if a.gather == nil {
		return
	}
	if err := metrics.WriteText(a.command.ErrOrStderr(), a.gather); err != nil {
		a.log.WithError(err).Warn("Failed to write metrics")
	}
}

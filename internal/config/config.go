// Package config 提供了日志登记簿的配置管理功能。
// 该包负责从 YAML 配置文件加载配置，并支持通过环境变量覆盖部分配置项。
// 未提供任何配置时，默认值与内置演示的行为一致。
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oriys/logbook/internal/factory"
)

// Config 是应用程序的主配置结构体。
type Config struct {
	// Logging 诊断日志配置
	Logging LoggingConfig `yaml:"logging"`
	// Vocabulary 类别标签词汇表配置
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	// Metrics 指标配置
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig 日志配置结构体。
// 诊断日志始终写到 stderr，stdout 只用于输出登记簿内容。
type LoggingConfig struct {
	// Level 日志级别，可选值：debug、info、warn、error
	// 默认值：warn
	Level string `yaml:"level"`
	// Format 日志格式，可选值：json、text
	// 默认值：text
	Format string `yaml:"format"`
}

// VocabularyConfig 词汇表配置结构体。
type VocabularyConfig struct {
	// Preset 内置词汇表名称：en（info/warn/err）或 pl（info/ostrzezenie/blad）
	// 默认值：en
	Preset string `yaml:"preset"`
	// Aliases 额外的标签，键为标签，值为类别名称（info、warning、error）
	Aliases map[string]string `yaml:"aliases,omitempty"`
	// CaseInsensitive 标签匹配是否忽略大小写
	CaseInsensitive bool `yaml:"case_insensitive"`
}

// MetricsConfig 指标配置结构体。
type MetricsConfig struct {
	// Enabled 是否在命令结束时把指标写到 stderr
	Enabled bool `yaml:"enabled"`
	// Namespace 指标命名空间前缀
	// 默认值：logbook
	Namespace string `yaml:"namespace"`
}

// Default 返回只包含默认值的配置。
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load 从指定路径加载配置文件。
// 读取 YAML 后依次应用默认值和环境变量覆盖，最后校验。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv 返回默认配置叠加环境变量覆盖后的结果。
func FromEnv() (*Config, error) {
	cfg := &Config{}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides 应用环境变量覆盖。
// 支持 LOGBOOK_LOG_LEVEL、LOGBOOK_LOG_FORMAT、LOGBOOK_VOCABULARY。
func (c *Config) applyEnvOverrides() {
	if v := readEnv("LOGBOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := readEnv("LOGBOOK_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := readEnv("LOGBOOK_VOCABULARY"); v != "" {
		c.Vocabulary.Preset = v
	}
}

func readEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// applyDefaults 为未设置的配置项填充默认值。
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Vocabulary.Preset == "" {
		c.Vocabulary.Preset = factory.PresetEnglish
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "logbook"
	}
}

// Validate 校验配置项取值。
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging.format %q: must be json or text", c.Logging.Format)
	}
	if _, err := c.Vocabulary.Build(); err != nil {
		return err
	}
	return nil
}

// Build 根据配置构造词汇表。
func (v VocabularyConfig) Build() (*factory.Vocabulary, error) {
	var opts []factory.VocabularyOption
	if len(v.Aliases) > 0 {
		opts = append(opts, factory.WithAliases(v.Aliases))
	}
	if v.CaseInsensitive {
		opts = append(opts, factory.WithCaseFold())
	}
	return factory.Preset(v.Preset, opts...)
}

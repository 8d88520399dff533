// Package telemetry 提供诊断日志的封装。
// 所有诊断日志写到 stderr 等非 stdout 目标，stdout 保留给登记簿输出。
package telemetry

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oriys/logbook/internal/config"
)

// NewLogger 根据日志配置创建 Logrus Logger。
//
// 参数：
//   - cfg: 日志级别与格式
//   - w: 输出目标，通常为 os.Stderr
//
// 返回：
//   - *logrus.Logger: 配置好的 Logger
//   - error: 级别或格式无效时返回错误
func NewLogger(cfg config.LoggingConfig, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return logger, nil
}

// ComponentLogger 返回带 component 字段的日志条目。
func ComponentLogger(logger logrus.FieldLogger, component string) *logrus.Entry {
	return logger.WithField("component", component)
}

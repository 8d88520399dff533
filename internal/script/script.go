// Package script 描述并执行一组有序的日志追加步骤。
// 脚本可以来自 YAML 文件，也可以使用内置的演示场景。
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oriys/logbook/internal/domain"
)

// Step 是一次追加：类别标签加消息。
type Step struct {
	Category string `yaml:"category"`
	Message  string `yaml:"message"`
}

// Script 是按顺序执行的步骤列表。
type Script struct {
	Entries []Step `yaml:"entries"`
}

// Appender 是脚本执行所需的最小接口，*registry.Registry 满足该接口。
type Appender interface {
	Append(tag, message string) error
}

// Demo 返回内置的演示场景。
func Demo() Script {
	return Script{Entries: []Step{
		{Category: "info", Message: "Application started"},
		{Category: "warn", Message: "Low memory"},
		{Category: "err", Message: "File not found"},
	}}
}

// Load 从 YAML 文件读取脚本。
//
// 文件格式：
//
//	entries:
//	  - category: info
//	    message: Application started
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return Parse(data)
}

// Parse 解析 YAML 脚本内容。
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("%w: %v", domain.ErrInvalidScript, err)
	}
	for i, step := range s.Entries {
		if step.Category == "" {
			return Script{}, fmt.Errorf("%w: entry %d has no category", domain.ErrInvalidScript, i)
		}
	}
	return s, nil
}

// Run 依次执行全部步骤，遇到第一个错误即停止。
// 返回成功执行的步骤数。
func (s Script) Run(a Appender) (int, error) {
	for i, step := range s.Entries {
		if err := a.Append(step.Category, step.Message); err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return len(s.Entries), nil
}

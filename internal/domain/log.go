// Package domain 定义了日志登记簿的核心领域模型。
package domain

import "strings"

// Category 表示日志条目的类别。
// 类别集合是封闭的：只有 Info、Warning、Error 三种。
type Category int

const (
	// CategoryInfo 信息类日志
	CategoryInfo Category = iota + 1
	// CategoryWarning 警告类日志
	CategoryWarning
	// CategoryError 错误类日志
	CategoryError
)

// Categories 按固定顺序返回全部类别。
func Categories() []Category {
	return []Category{CategoryInfo, CategoryWarning, CategoryError}
}

// Valid 判断类别是否属于封闭集合。
func (c Category) Valid() bool {
	return c >= CategoryInfo && c <= CategoryError
}

// String 返回类别的规范名称（info、warning、error）。
func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "info"
	case CategoryWarning:
		return "warning"
	case CategoryError:
		return "error"
	default:
		return "unknown"
	}
}

// Label 返回类别的人类可读标签，用作条目文本前缀。
func (c Category) Label() string {
	return strings.ToUpper(c.String())
}

// ParseCategory 将规范名称解析为类别，忽略大小写。
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(name, c.String()) {
			return c, true
		}
	}
	return 0, false
}

// LogEntry 表示一条已构造完成的日志条目。
// Text 在构造时已带上类别标签前缀，例如 "WARNING: Low memory"。
// 条目创建后不可修改，只按值比较。
type LogEntry struct {
	Category Category `json:"category" yaml:"category"`
	Text     string   `json:"text" yaml:"text"`
}

// NewLogEntry 根据类别和原始消息构造条目。
func NewLogEntry(c Category, message string) LogEntry {
	return LogEntry{Category: c, Text: c.Label() + ": " + message}
}

// String 返回条目的完整文本。
func (e LogEntry) String() string {
	return e.Text
}

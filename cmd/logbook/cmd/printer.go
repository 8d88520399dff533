// Package cmd 提供 logbook 命令行工具的所有子命令实现。
// 本文件实现输出格式化打印功能，支持多种输出格式。
//
// Printer 支持以下输出格式：
//   - table: 表格格式（默认），适合人类阅读
//   - json:  JSON 格式，适合程序处理
//   - yaml:  YAML 格式，适合配置文件
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oriys/logbook/internal/factory"
)

// Printer 是格式化输出的处理器。
type Printer struct {
	format string    // 输出格式：table、json 或 yaml
	writer io.Writer // 输出目标
}

// NewPrinter 创建一个新的 Printer 实例。
// 从 viper 配置中读取 output 格式，如果未配置则默认使用 table 格式。
func NewPrinter(w io.Writer) *Printer {
	format := viper.GetString("output")
	if format == "" {
		format = "table"
	}
	return &Printer{format: format, writer: w}
}

// vocabularyView 是词汇表的序列化视图
type vocabularyView struct {
	Vocabulary string            `json:"vocabulary" yaml:"vocabulary"`
	Tags       []factory.Binding `json:"tags" yaml:"tags"`
}

// PrintBindings 打印词汇表中的标签绑定。
func (p *Printer) PrintBindings(name string, bindings []factory.Binding) error {
	switch p.format {
	case "json":
		return p.printJSON(vocabularyView{Vocabulary: name, Tags: bindings})
	case "yaml":
		return p.printYAML(vocabularyView{Vocabulary: name, Tags: bindings})
	default:
		return p.printBindingsTable(bindings)
	}
}

func (p *Printer) printBindingsTable(bindings []factory.Binding) error {
	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tCATEGORY\tLABEL")
	for _, b := range bindings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Tag, b.Category, b.Label)
	}
	return w.Flush()
}

// printJSON 以缩进 JSON 输出任意值
func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printYAML 以 YAML 输出任意值
func (p *Printer) printYAML(v interface{}) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

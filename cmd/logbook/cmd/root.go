// Package cmd 包含 logbook CLI 工具的所有命令实现
// 使用 cobra 框架构建命令行接口
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// 全局命令行标志变量
var (
	cfgFile    string // 配置文件路径
	logLevel   string // 日志级别
	logFormat  string // 日志格式
	vocabulary string // 词汇表名称
	withStats  bool   // 结束时输出指标
	outputFmt  string // 输出格式（table/json/yaml）
)

// rootCmd 是 CLI 的根命令
// 不带子命令运行时执行内置演示
var rootCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Logbook - log entry factory and shared log registry",
	Long: `logbook 演示两个经典模式：按类别构造日志条目的工厂，以及按插入顺序保存条目的进程级登记簿。

使用示例:
  # 运行内置演示
  logbook

  # 使用波兰语标签
  logbook --vocabulary pl log blad "Nie znaleziono pliku."

  # 执行脚本文件
  logbook replay steps.yaml

  # 查看当前词汇表
  logbook categories -o yaml`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runDemo,
}

// Execute 执行根命令
// 这是 CLI 的入口函数，由 main 包调用
func Execute() error {
	return rootCmd.Execute()
}

// init 注册全局标志和配置初始化函数
func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "配置文件路径（默认为 ./.logbook.yaml 或 $HOME/.logbook.yaml）")
	flags.StringVar(&logLevel, "log-level", "", "日志级别（debug、info、warn、error）")
	flags.StringVar(&logFormat, "log-format", "", "日志格式（text、json）")
	flags.StringVar(&vocabulary, "vocabulary", "", "类别标签词汇表（en、pl）")
	flags.BoolVar(&withStats, "metrics", false, "结束时将指标写到 stderr")
	flags.StringVarP(&outputFmt, "output", "o", "table", "输出格式（table、json、yaml）")

	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
	viper.BindPFlag("vocabulary", flags.Lookup("vocabulary"))
	viper.BindPFlag("metrics", flags.Lookup("metrics"))
	viper.BindPFlag("output", flags.Lookup("output"))
}

// initConfig 配置 viper 的环境变量映射
// 优先级：命令行标志 > 环境变量 > 配置文件 > 默认值
func initConfig() {
	// 环境变量格式：LOGBOOK_<KEY>，如 LOGBOOK_LOG_LEVEL
	viper.SetEnvPrefix("LOGBOOK")
	viper.AutomaticEnv()
	_ = viper.BindEnv("config", "LOGBOOK_CONFIG")
}

// configPath 返回要加载的配置文件路径
// 依次检查 --config、LOGBOOK_CONFIG、./.logbook.yaml、$HOME/.logbook.yaml，未找到时为空
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if v := viper.GetString("config"); v != "" {
		return v
	}
	candidates := []string{".logbook.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".logbook.yaml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

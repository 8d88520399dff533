// Package main 是 logbook 命令行工具的入口点
// logbook 演示日志条目工厂与进程级日志登记簿
package main

import (
	"os"

	"github.com/oriys/logbook/cmd/logbook/cmd"
)

// main 调用 cmd 包的 Execute 函数来解析和执行用户命令
// 任何未处理的错误（例如无法识别的日志类别）都以退出码 1 结束
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oriys/logbook/internal/script"
)

// replayCmd 执行 YAML 脚本文件中的追加步骤并输出全部条目
var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Append entries from a YAML script and dump them",
	Long: `从 YAML 脚本读取条目并按顺序追加，最后输出全部条目。

脚本格式:
  entries:
    - category: info
      message: Application started
    - category: warn
      message: Low memory

遇到无法识别的类别时立即停止，已追加的条目不会输出。`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	reg := a.holder.Instance()
	n, err := s.Run(reg)
	if err != nil {
		a.log.WithError(err).WithField("appended", n).Error("Replay aborted")
		return err
	}
	return reg.DumpAll()
}

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// logCmd 追加一条条目并输出
var logCmd = &cobra.Command{
	Use:   "log CATEGORY MESSAGE...",
	Short: "Append a single entry and dump it",
	Example: `  logbook log info "Application started"
  logbook --vocabulary pl log ostrzezenie Niski poziom pamieci.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	reg := a.holder.Instance()
	if err := reg.Append(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	return reg.DumpAll()
}

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/oriys/logbook/internal/script"
)

// demoCmd 运行内置演示：三条不同类别的条目，按顺序输出
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in three-entry demo",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo 两次获取登记簿并确认是同一实例，然后执行演示脚本并输出
func runDemo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	first := a.holder.Instance()
	second := a.holder.Instance()
	if first != second {
		return errors.New("registry: more than one live instance")
	}
	a.log.WithField("registry_id", first.ID()).Info("Both handles refer to the same registry")

	if _, err := script.Demo().Run(first); err != nil {
		return err
	}
	return second.DumpAll()
}

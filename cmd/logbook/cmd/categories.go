package cmd

import (
	"github.com/spf13/cobra"
)

// categoriesCmd 列出当前词汇表中的全部标签
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"vocab"},
	Short:   "List the recognized category tags",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return NewPrinter(cmd.OutOrStdout()).PrintBindings(a.vocab.Name(), a.vocab.Bindings())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewFuncsCmd создаёт команду вывода каталога функций.
func NewFuncsCmd(envFn func() *Env, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List available node functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := envFn().Registry.Names()

			rows := make([][]string, len(names))
			for i, n := range names {
				rows[i] = []string{n}
			}

			outputFn().Print([]string{"FUNC"}, rows, names)
			return nil
		},
	}
}

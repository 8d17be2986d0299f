package cli

import (
	"github.com/spf13/cobra"
)

// NewCalcCmd создаёт команду вычисления графа.
func NewCalcCmd(envFn func() *Env, outputFn func() *Output) *cobra.Command {
	var graphPath string
	var data dataFlags
	var all bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate graph outputs",
		Example: `  calcgraph calc -g graph.yaml -d data.yaml
  calcgraph calc -g graph.yaml --set a=2 --set b=3
  calcgraph calc -g graph.yaml -d data.yaml --all --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envFn()
			out := outputFn()

			_, g, err := env.loadGraph(graphPath)
			if err != nil {
				return err
			}

			values, err := data.load()
			if err != nil {
				return err
			}

			res, err := g.Run(env.withLogger(cmd.Context()), values)
			if err != nil {
				return err
			}

			switch {
			case all:
				out.Values(res.Data)
			case len(res.Outputs) == 1:
				out.Value(res.Value)
			default:
				out.Values(res.Outputs)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph spec file (YAML or JSON)")
	cmd.Flags().StringVarP(&data.path, "data", "d", "", "Input data file (YAML or JSON)")
	cmd.Flags().StringArrayVar(&data.set, "set", nil, "Input value name=value (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Print every value of the calculation")
	cmd.MarkFlagRequired("graph")

	return cmd
}

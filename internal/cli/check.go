package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// checkReport — результат проверки для JSON вывода.
type checkReport struct {
	Graph    string   `json:"graph"`
	Nodes    int      `json:"nodes"`
	Required []string `json:"required_inputs"`
	Terminal []string `json:"terminal_outputs"`
}

// NewCheckCmd создаёт команду проверки графа и данных без вычисления.
func NewCheckCmd(envFn func() *Env, outputFn func() *Output) *cobra.Command {
	var graphPath string
	var data dataFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate graph and input data without running nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envFn()
			out := outputFn()

			spec, g, err := env.loadGraph(graphPath)
			if err != nil {
				return err
			}

			if _, err := g.Plan(); err != nil {
				return err
			}

			report := checkReport{
				Graph:    spec.Name,
				Nodes:    g.Len(),
				Required: g.RequiredInputs(),
				Terminal: g.TerminalOutputs(),
			}
			out.Print(
				[]string{"GRAPH", "NODES", "REQUIRED INPUTS", "TERMINAL OUTPUTS"},
				[][]string{{report.Graph, strconv.Itoa(report.Nodes), formatList(report.Required), formatList(report.Terminal)}},
				report,
			)

			if !data.provided() {
				return nil
			}

			values, err := data.load()
			if err != nil {
				return err
			}
			if err := g.Check(values); err != nil {
				return err
			}
			out.Success("data OK")
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph spec file (YAML or JSON)")
	cmd.Flags().StringVarP(&data.path, "data", "d", "", "Input data file (YAML or JSON)")
	cmd.Flags().StringArrayVar(&data.set, "set", nil, "Input value name=value (repeatable)")
	cmd.MarkFlagRequired("graph")

	return cmd
}

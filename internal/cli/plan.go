package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// planStep — строка плана для JSON вывода.
type planStep struct {
	Order   int      `json:"order"`
	Level   int      `json:"level"`
	Node    string   `json:"node"`
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

// NewPlanCmd создаёт команду вывода порядка выполнения.
func NewPlanCmd(envFn func() *Env, outputFn func() *Output) *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show execution order of graph nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envFn()
			out := outputFn()

			_, g, err := env.loadGraph(graphPath)
			if err != nil {
				return err
			}

			plan, err := g.Plan()
			if err != nil {
				return err
			}

			level := make(map[int]int, plan.Size())
			for _, v := range plan.Vertices {
				level[v.Node.Index()] = v.Level
			}

			headers := []string{"ORDER", "LEVEL", "NODE", "INPUTS", "OUTPUTS"}
			rows := make([][]string, len(plan.Order))
			items := make([]planStep, len(plan.Order))
			for i, node := range plan.Order {
				items[i] = planStep{
					Order:   i + 1,
					Level:   level[node.Index()],
					Node:    node.Name(),
					Inputs:  node.Inputs(),
					Outputs: node.Outputs(),
				}
				rows[i] = []string{
					strconv.Itoa(items[i].Order),
					strconv.Itoa(items[i].Level),
					items[i].Node,
					formatList(items[i].Inputs),
					formatList(items[i].Outputs),
				}
			}

			out.Print(headers, rows, items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph spec file (YAML or JSON)")
	cmd.MarkFlagRequired("graph")

	return cmd
}

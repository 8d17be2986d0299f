package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/shaiso/calcgraph/internal/steps"
	"github.com/shaiso/calcgraph/internal/telemetry"
)

// NewRootCmd собирает дерево команд calcgraph.
//
// Данные пишутся в stdout, сообщения и дамп метрик (--metrics) в stderr.
func NewRootCmd(version string, logger *slog.Logger, stdout, stderr io.Writer) *cobra.Command {
	var jsonOutput bool
	var dumpMetrics bool

	if logger == nil {
		logger = slog.Default()
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	rootCmd := &cobra.Command{
		Use:           "calcgraph",
		Short:         "calcgraph — declarative computation graphs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !dumpMetrics {
				return nil
			}
			return writeMetrics(stderr, reg)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "Print calculation metrics to stderr")

	envFn := func() *Env {
		return &Env{
			Registry: steps.DefaultRegistry(),
			Logger:   logger,
			Observer: metrics,
		}
	}
	outputFn := func() *Output { return NewOutputTo(stdout, stderr, jsonOutput) }

	rootCmd.AddCommand(
		NewCalcCmd(envFn, outputFn),
		NewPlanCmd(envFn, outputFn),
		NewCheckCmd(envFn, outputFn),
		NewFuncsCmd(envFn, outputFn),
	)

	return rootCmd
}

// writeMetrics выводит собранные метрики в текстовом формате Prometheus.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

package engine

import (
	"context"
	"time"

	"github.com/shaiso/calcgraph/internal/telemetry"
)

// Result — результат вычисления графа.
type Result struct {
	// Value — значение единственного терминального выхода
	// или map[string]any, если терминальных выходов несколько.
	Value any

	// Outputs — значения терминальных выходов (имя → значение).
	Outputs map[string]any

	// Data — все значения вычисления: входные данные и выходы всех узлов.
	Data map[string]any

	// Order — имена узлов в порядке выполнения.
	Order []string

	// Duration — длительность вычисления.
	Duration time.Duration
}

// Calculate выполняет граф над данными и возвращает терминальные выходы.
//
// Если терминальный выход один, возвращается его значение,
// иначе — map[string]any со всеми терминальными выходами.
func (g *Graph) Calculate(ctx context.Context, data map[string]any) (any, error) {
	res, err := g.Run(ctx, data)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Run выполняет граф и возвращает полный Result.
//
// Порядок: проверка данных → план выполнения → проверка терминальных
// выходов → последовательный запуск узлов. Вычисление либо завершается
// полностью, либо возвращает ошибку без частичного результата.
func (g *Graph) Run(ctx context.Context, data map[string]any) (*Result, error) {
	start := time.Now()
	logger := g.log(ctx)
	logger.Info("starting calculation", "inputs", len(data))

	res, err := g.run(ctx, data)

	elapsed := time.Since(start)
	if g.observer != nil {
		g.observer.ObserveCalculation(elapsed, err)
	}
	if err != nil {
		logger.Warn("calculation failed", "error", err, "duration", elapsed)
		return nil, err
	}

	res.Duration = elapsed
	logger.Info("calculation finished", "duration", elapsed, "nodes", len(res.Order))
	return res, nil
}

func (g *Graph) run(ctx context.Context, data map[string]any) (*Result, error) {
	reg := g.snapshot()

	if err := reg.checkInputs(data); err != nil {
		return nil, err
	}

	plan, err := reg.plan()
	if err != nil {
		return nil, err
	}

	terminal := reg.terminalOutputs()
	if len(terminal) == 0 {
		return nil, errGraphDefinition("", "graph has no terminal outputs")
	}

	store := make(map[string]any, len(data)+len(reg.outputs))
	for k, v := range data {
		store[k] = v
	}

	order := make([]string, 0, len(plan.Order))
	for _, node := range plan.Order {
		if err := g.execute(ctx, node, store); err != nil {
			return nil, err
		}
		order = append(order, node.name)
	}

	return extract(terminal, store, order), nil
}

// execute запускает один узел и записывает его выходы в store.
// Все входы узла уже есть в store благодаря топологическому порядку.
func (g *Graph) execute(ctx context.Context, node *Node, store map[string]any) error {
	args := make([]any, len(node.inputs))
	for i, in := range node.inputs {
		args[i] = store[in]
	}

	start := time.Now()
	res, err := node.call(args)
	if err == nil {
		var values map[string]any
		values, err = node.unpack(res)
		for name, v := range values {
			store[name] = v
		}
	}
	elapsed := time.Since(start)

	if g.observer != nil {
		g.observer.ObserveNode(node.name, elapsed, err)
	}
	if err != nil {
		return errCalculation(node.name, err)
	}

	telemetry.WithNode(g.log(ctx), node.name).Debug("node finished",
		"node_id", node.id,
		"duration", elapsed,
	)
	return nil
}

// extract собирает терминальные выходы из store.
func extract(terminal []string, store map[string]any, order []string) *Result {
	outputs := make(map[string]any, len(terminal))
	for _, name := range terminal {
		outputs[name] = store[name]
	}

	var value any
	if len(terminal) == 1 {
		value = outputs[terminal[0]]
	} else {
		value = outputs
	}

	return &Result{
		Value:   value,
		Outputs: outputs,
		Data:    store,
		Order:   order,
	}
}

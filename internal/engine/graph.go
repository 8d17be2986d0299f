package engine

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shaiso/calcgraph/internal/telemetry"
)

// Observer получает результаты выполнения узлов и вычислений.
// Реализуется telemetry.Metrics.
type Observer interface {
	ObserveNode(node string, d time.Duration, err error)
	ObserveCalculation(d time.Duration, err error)
}

// Option настраивает Graph.
type Option func(*Graph)

// WithLogger задаёт логгер графа.
// Без него используется логгер из контекста Calculate (telemetry.FromContext).
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}

// WithObserver подключает наблюдателя (например, Prometheus метрики).
func WithObserver(o Observer) Option {
	return func(g *Graph) {
		g.observer = o
	}
}

// Graph — реестр узлов вычислительного графа.
//
// Узлы добавляются через Register/Add, порядок регистрации сохраняется.
// Граф владеет множеством всех выходов (имя → индекс узла-производителя),
// по которому отклоняются дубликаты.
// Потокобезопасен: Calculate работает со снимком узлов.
type Graph struct {
	mu       sync.RWMutex
	nodes    []*Node
	outputs  map[string]int
	logger   *slog.Logger
	observer Observer
}

// New создаёт пустой граф.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:   make([]*Node, 0),
		outputs: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register регистрирует функцию с именованными входами и выходами.
func (g *Graph) Register(inputs, outputs []string, fn Func) (*Node, error) {
	return g.Add(NodeDef{Inputs: inputs, Outputs: outputs, Fn: fn})
}

// MustRegister — как Register, но паникует при ошибке.
func (g *Graph) MustRegister(inputs, outputs []string, fn Func) *Node {
	node, err := g.Register(inputs, outputs, fn)
	if err != nil {
		panic(err)
	}
	return node
}

// Add добавляет узел в граф.
//
// Возвращает ErrDuplicateOutput, если какой-либо выход уже объявлен.
// Связи между узлами не проверяются до Calculate.
func (g *Graph) Add(def NodeDef) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if def.Fn == nil {
		return nil, errGraphDefinition(def.Name, "node has no function")
	}

	seen := make(map[string]bool, len(def.Outputs))
	for _, out := range def.Outputs {
		if _, exists := g.outputs[out]; exists || seen[out] {
			return nil, errDuplicateOutput(out)
		}
		seen[out] = true
	}

	node := newNode(len(g.nodes), def)
	g.nodes = append(g.nodes, node)
	for _, out := range node.outputs {
		g.outputs[out] = node.index
	}

	g.log(context.Background()).Debug("node registered",
		"node", node.name,
		"node_id", node.id,
		"inputs", node.inputs,
		"outputs", node.outputs,
	)

	return node, nil
}

// Nodes возвращает узлы в порядке регистрации.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Node(nil), g.nodes...)
}

// Len возвращает количество узлов.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Outputs возвращает отсортированные имена всех выходов.
func (g *Graph) Outputs() []string {
	return g.snapshot().allOutputs()
}

// Inputs возвращает отсортированные имена всех входов всех узлов.
func (g *Graph) Inputs() []string {
	return sortedKeys(g.snapshot().allInputs())
}

// RequiredInputs возвращает входы, которые должны прийти из данных.
func (g *Graph) RequiredInputs() []string {
	return sortedKeys(g.snapshot().requiredInputs())
}

// TerminalOutputs возвращает выходы, которые не потребляет ни один узел.
func (g *Graph) TerminalOutputs() []string {
	return g.snapshot().terminalOutputs()
}

// snapshot фиксирует состояние реестра на время одного вычисления.
func (g *Graph) snapshot() *registry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	outputs := make(map[string]int, len(g.outputs))
	for name, idx := range g.outputs {
		outputs[name] = idx
	}
	return &registry{
		nodes:   append([]*Node(nil), g.nodes...),
		outputs: outputs,
	}
}

func (g *Graph) log(ctx context.Context) *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return telemetry.FromContext(ctx)
}

// registry — неизменяемый снимок графа.
type registry struct {
	nodes   []*Node
	outputs map[string]int // имя выхода → индекс узла
}

func (r *registry) allInputs() map[string]bool {
	inputs := make(map[string]bool)
	for _, n := range r.nodes {
		for _, in := range n.inputs {
			inputs[in] = true
		}
	}
	return inputs
}

func (r *registry) allOutputs() []string {
	names := make([]string, 0, len(r.outputs))
	for name := range r.outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// requiredInputs — входы, которые не производит ни один узел.
func (r *registry) requiredInputs() map[string]bool {
	required := make(map[string]bool)
	for in := range r.allInputs() {
		if _, produced := r.outputs[in]; !produced {
			required[in] = true
		}
	}
	return required
}

// terminalOutputs — выходы, которые не потребляет ни один узел.
func (r *registry) terminalOutputs() []string {
	inputs := r.allInputs()
	terminal := make([]string, 0)
	for name := range r.outputs {
		if !inputs[name] {
			terminal = append(terminal, name)
		}
	}
	sort.Strings(terminal)
	return terminal
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

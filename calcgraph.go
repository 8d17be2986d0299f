// Package calcgraph — декларативный вычислительный граф.
//
// Функции регистрируются с именами входов и выходов, порядок выполнения
// выводится из имён:
//
//	g := calcgraph.New()
//	g.MustRegister([]string{"a", "b"}, []string{"c"}, add)
//	g.MustRegister([]string{"c"}, []string{"d"}, double)
//	res, err := g.Calculate(ctx, map[string]any{"a": 2, "b": 3})
//
// Пакет реэкспортирует типы и ошибки internal/engine.
package calcgraph

import (
	"github.com/shaiso/calcgraph/internal/engine"
)

type (
	Graph    = engine.Graph
	Node     = engine.Node
	NodeDef  = engine.NodeDef
	Func     = engine.Func
	Option   = engine.Option
	Observer = engine.Observer
	Plan     = engine.Plan
	Result   = engine.Result
	Error    = engine.Error
)

var (
	ErrDuplicateOutput  = engine.ErrDuplicateOutput
	ErrMissingInput     = engine.ErrMissingInput
	ErrInputCollision   = engine.ErrInputCollision
	ErrUnusedInput      = engine.ErrUnusedInput
	ErrCyclicDependency = engine.ErrCyclicDependency
	ErrGraphDefinition  = engine.ErrGraphDefinition
	ErrCalculation      = engine.ErrCalculation
	ErrOutputArity      = engine.ErrOutputArity
	ErrNodePanic        = engine.ErrNodePanic
)

// New создаёт пустой граф.
func New(opts ...Option) *Graph {
	return engine.New(opts...)
}

// WithLogger задаёт логгер графа.
var WithLogger = engine.WithLogger

// WithObserver подключает наблюдателя вычислений.
var WithObserver = engine.WithObserver

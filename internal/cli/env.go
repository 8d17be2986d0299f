package cli

import (
	"context"
	"log/slog"

	"github.com/shaiso/calcgraph/internal/engine"
	"github.com/shaiso/calcgraph/internal/flowspec"
	"github.com/shaiso/calcgraph/internal/steps"
	"github.com/shaiso/calcgraph/internal/telemetry"
)

// Env — зависимости команд.
type Env struct {
	// Registry — каталог функций для узлов.
	Registry *steps.Registry

	// Logger — логгер команд.
	Logger *slog.Logger

	// Observer — наблюдатель вычислений (метрики), может быть nil.
	Observer engine.Observer
}

// loadGraph читает описание и строит граф.
func (e *Env) loadGraph(path string) (*flowspec.Spec, *engine.Graph, error) {
	spec, err := flowspec.Load(path)
	if err != nil {
		return nil, nil, err
	}

	opts := []engine.Option{engine.WithLogger(telemetry.WithGraph(e.Logger, spec.Name))}
	if e.Observer != nil {
		opts = append(opts, engine.WithObserver(e.Observer))
	}

	g, err := flowspec.Build(spec, e.Registry, opts...)
	if err != nil {
		return nil, nil, err
	}
	return spec, g, nil
}

// withLogger возвращает контекст с логгером.
func (e *Env) withLogger(ctx context.Context) context.Context {
	return telemetry.WithLogger(ctx, e.Logger)
}

// dataFlags — флаги входных данных.
type dataFlags struct {
	path string
	set  []string
}

// load собирает данные из файла и присваиваний --set.
// Значения --set перекрывают значения из файла.
func (f *dataFlags) load() (map[string]any, error) {
	data := make(map[string]any)
	if f.path != "" {
		fromFile, err := flowspec.LoadData(f.path)
		if err != nil {
			return nil, err
		}
		data = fromFile
	}

	assigned, err := flowspec.ParseAssignments(f.set)
	if err != nil {
		return nil, err
	}
	return flowspec.Merge(data, assigned), nil
}

func (f *dataFlags) provided() bool {
	return f.path != "" || len(f.set) > 0
}

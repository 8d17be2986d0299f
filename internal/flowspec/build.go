package flowspec

import (
	"github.com/shaiso/calcgraph/internal/engine"
	"github.com/shaiso/calcgraph/internal/steps"
)

// Build валидирует Spec и регистрирует его узлы в новом engine.Graph.
//
// Узлы регистрируются в порядке описания. Ошибки engine
// (например, engine.ErrDuplicateOutput) возвращаются без изменений.
func Build(spec *Spec, registry *steps.Registry, opts ...engine.Option) (*engine.Graph, error) {
	if registry == nil {
		registry = steps.DefaultRegistry()
	}

	if err := Validate(spec, registry); err != nil {
		return nil, err
	}

	g := engine.New(opts...)
	for _, def := range spec.Nodes {
		fn, err := registry.Build(def.Func, steps.NewConfig(def.Inputs, def.Outputs, def.Params))
		if err != nil {
			return nil, NewValidationError(def.Name, "params", err.Error(), err)
		}

		if _, err := g.Add(engine.NodeDef{
			Name:    def.Name,
			Inputs:  def.Inputs,
			Outputs: def.Outputs,
			Fn:      fn,
		}); err != nil {
			return nil, err
		}
	}

	return g, nil
}

package steps

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shaiso/calcgraph/internal/engine"
)

// Ошибки шагов.
var (
	// ErrStepNotFound — функция не найдена в реестре.
	ErrStepNotFound = errors.New("step function not found")

	// ErrInvalidConfig — невалидная конфигурация шага.
	ErrInvalidConfig = errors.New("invalid step config")

	// ErrInvalidArgument — аргумент неподходящего типа.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero — деление на ноль.
	ErrDivisionByZero = errors.New("division by zero")
)

// Factory создаёт функцию узла по конфигурации.
//
// Фабрика проверяет конфигурацию один раз при построении графа,
// готовая engine.Func только вычисляет.
type Factory func(cfg Config) (engine.Func, error)

// Config — конфигурация шага.
type Config struct {
	// Inputs — имена входов узла, в порядке аргументов.
	Inputs []string

	// Outputs — имена выходов узла.
	Outputs []string

	// Params — дополнительные параметры из описания графа.
	Params map[string]any
}

// NewConfig создаёт Config.
func NewConfig(inputs, outputs []string, params map[string]any) Config {
	if params == nil {
		params = make(map[string]any)
	}
	return Config{
		Inputs:  inputs,
		Outputs: outputs,
		Params:  params,
	}
}

// requireInputs проверяет количество входов.
func (c Config) requireInputs(min, max int) error {
	n := len(c.Inputs)
	if n < min || (max >= 0 && n > max) {
		if min == max {
			return fmt.Errorf("%w: expected %d inputs, got %d", ErrInvalidConfig, min, n)
		}
		return fmt.Errorf("%w: expected at least %d inputs, got %d", ErrInvalidConfig, min, n)
	}
	return nil
}

// requireOutputs проверяет количество выходов.
func (c Config) requireOutputs(n int) error {
	if len(c.Outputs) != n {
		return fmt.Errorf("%w: expected %d outputs, got %d", ErrInvalidConfig, n, len(c.Outputs))
	}
	return nil
}

// GetParamString извлекает строковый параметр.
func GetParamString(params map[string]any, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetParamFloat извлекает числовой параметр.
func GetParamFloat(params map[string]any, key string) (float64, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	f, err := ToFloat(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToFloat приводит числовое значение к float64.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	}
	return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalidArgument, v)
}

// toFloats приводит все аргументы к float64.
func toFloats(args []any) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		f, err := ToFloat(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		nums[i] = f
	}
	return nums, nil
}

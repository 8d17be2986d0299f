package steps

import (
	"fmt"
	"math"

	"github.com/shaiso/calcgraph/internal/engine"
)

// Имена арифметических функций.
const (
	FuncAdd    = "add"
	FuncSub    = "sub"
	FuncMul    = "mul"
	FuncDiv    = "div"
	FuncDivmod = "divmod"
	FuncNeg    = "neg"
	FuncScale  = "scale"
)

// NewAdd — сумма всех входов.
func NewAdd(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(1, -1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		nums, err := toFloats(args)
		if err != nil {
			return nil, err
		}
		total := 0.0
		for _, n := range nums {
			total += n
		}
		return total, nil
	}, nil
}

// NewSub — разность двух входов: a - b.
func NewSub(cfg Config) (engine.Func, error) {
	return binary(cfg, func(a, b float64) (any, error) {
		return a - b, nil
	})
}

// NewMul — произведение всех входов.
func NewMul(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(1, -1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		nums, err := toFloats(args)
		if err != nil {
			return nil, err
		}
		product := 1.0
		for _, n := range nums {
			product *= n
		}
		return product, nil
	}, nil
}

// NewDiv — частное двух входов: a / b.
func NewDiv(cfg Config) (engine.Func, error) {
	return binary(cfg, func(a, b float64) (any, error) {
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return a / b, nil
	})
}

// NewDivmod — целая часть и остаток от деления, два выхода.
func NewDivmod(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(2, 2); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(2); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		nums, err := toFloats(args)
		if err != nil {
			return nil, err
		}
		if nums[1] == 0 {
			return nil, ErrDivisionByZero
		}
		q := math.Floor(nums[0] / nums[1])
		return []any{q, nums[0] - q*nums[1]}, nil
	}, nil
}

// NewNeg — смена знака.
func NewNeg(cfg Config) (engine.Func, error) {
	return unary(cfg, func(a float64) any { return -a })
}

// NewScale — умножение на Params.factor.
func NewScale(cfg Config) (engine.Func, error) {
	factor, ok := GetParamFloat(cfg.Params, "factor")
	if !ok {
		return nil, fmt.Errorf("%w: scale requires numeric param factor", ErrInvalidConfig)
	}
	return unary(cfg, func(a float64) any { return a * factor })
}

func unary(cfg Config, op func(a float64) any) (engine.Func, error) {
	if err := cfg.requireInputs(1, 1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		a, err := ToFloat(args[0])
		if err != nil {
			return nil, err
		}
		return op(a), nil
	}, nil
}

func binary(cfg Config, op func(a, b float64) (any, error)) (engine.Func, error) {
	if err := cfg.requireInputs(2, 2); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		nums, err := toFloats(args)
		if err != nil {
			return nil, err
		}
		return op(nums[0], nums[1])
	}, nil
}

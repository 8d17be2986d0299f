package steps

import (
	"fmt"
	"strings"

	"github.com/shaiso/calcgraph/internal/engine"
)

// Имена функций над данными.
const (
	FuncIdentity = "identity"
	FuncConcat   = "concat"
	FuncFromJSON = "fromjson"
)

// NewIdentity возвращает вход без изменений.
func NewIdentity(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(1, 1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		return args[0], nil
	}, nil
}

// NewConcat склеивает строковые представления входов через Params.sep.
func NewConcat(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(1, -1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	sep := GetParamString(cfg.Params, "sep")
	return func(args ...any) (any, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(string); ok {
				parts[i] = s
			} else {
				parts[i] = fmt.Sprint(a)
			}
		}
		return strings.Join(parts, sep), nil
	}, nil
}

// NewFromJSON разбирает строковый вход как JSON значение.
func NewFromJSON(cfg Config) (engine.Func, error) {
	if err := cfg.requireInputs(1, 1); err != nil {
		return nil, err
	}
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}
	return func(args ...any) (any, error) {
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidArgument, args[0])
		}
		return parseValue(s), nil
	}, nil
}

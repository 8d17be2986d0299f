package flowspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidAssignment — присваивание не в формате name=value.
var ErrInvalidAssignment = errors.New("invalid assignment")

// ParseData разбирает входные данные (YAML или JSON объект).
// Пустой документ даёт пустые данные.
func ParseData(data []byte) (map[string]any, error) {
	values := make(map[string]any)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return values, nil
}

// LoadData читает входные данные из файла.
func LoadData(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return ParseData(data)
}

// ParseAssignments разбирает присваивания вида name=value.
// Значение разбирается как YAML скаляр: 2 → int, 2.5 → float64, true → bool,
// иначе строка.
func ParseAssignments(assignments []string) (map[string]any, error) {
	values := make(map[string]any, len(assignments))
	for _, a := range assignments {
		name, raw, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, a)
		}

		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
			v = raw
		}
		values[name] = v
	}
	return values, nil
}

// Merge объединяет данные; значения из later перекрывают base.
func Merge(base map[string]any, later ...map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for _, m := range later {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

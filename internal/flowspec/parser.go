package flowspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/calcgraph/internal/steps"
)

// Parse разбирает описание графа из YAML или JSON.
// Неизвестные поля считаются ошибкой.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyNodes
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &spec, nil
}

// Load читает и разбирает описание графа из файла.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph spec: %w", err)
	}
	return Parse(data)
}

// Validate выполняет валидацию Spec.
//
// Проверяет:
// - Наличие узлов
// - Имена узлов (непустые и уникальные)
// - Наличие функции в каталоге
// - Наличие выходов
//
// Связи между узлами (дубликаты выходов, циклы, входы) проверяет engine.
func Validate(spec *Spec, registry *steps.Registry) error {
	if spec == nil || len(spec.Nodes) == 0 {
		return ErrEmptyNodes
	}

	names := make(map[string]bool, len(spec.Nodes))
	for i := range spec.Nodes {
		if err := ValidateNode(&spec.Nodes[i], names, registry); err != nil {
			return err
		}
	}

	return nil
}

// ValidateNode валидирует один узел.
// names — уже встреченные имена узлов (для проверки уникальности).
func ValidateNode(node *NodeDef, names map[string]bool, registry *steps.Registry) error {
	// Проверка имени
	if node.Name == "" {
		return NewValidationError("", "name", "node has empty name", ErrEmptyNodeName)
	}

	// Проверка уникальности имени
	if names[node.Name] {
		return NewValidationError(node.Name, "name",
			fmt.Sprintf("duplicate node name: %s", node.Name), ErrDuplicateNodeName)
	}
	names[node.Name] = true

	// Проверка функции
	if node.Func == "" {
		return NewValidationError(node.Name, "func", "node has empty func", ErrUnknownFunc)
	}
	if registry != nil && !registry.Has(node.Func) {
		return NewValidationError(node.Name, "func",
			fmt.Sprintf("unknown func: %s", node.Func), ErrUnknownFunc)
	}

	// Проверка выходов
	if len(node.Outputs) == 0 {
		return NewValidationError(node.Name, "outputs", "node has no outputs", ErrEmptyOutputs)
	}

	return nil
}

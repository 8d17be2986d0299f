package flowspec

import "errors"

// Ошибки валидации Spec.
var (
	// ErrEmptyNodes — граф не содержит узлов.
	ErrEmptyNodes = errors.New("graph spec has no nodes")

	// ErrEmptyNodeName — узел не имеет имени.
	ErrEmptyNodeName = errors.New("node has empty name")

	// ErrDuplicateNodeName — несколько узлов с одинаковым именем.
	ErrDuplicateNodeName = errors.New("duplicate node name")

	// ErrUnknownFunc — функция не найдена в каталоге.
	ErrUnknownFunc = errors.New("unknown node function")

	// ErrEmptyOutputs — узел не объявляет выходов.
	ErrEmptyOutputs = errors.New("node has no outputs")

	// ErrParse — описание не удалось разобрать.
	ErrParse = errors.New("graph spec parse failed")
)

// ValidationError — ошибка валидации с контекстом.
type ValidationError struct {
	Node    string // имя узла, где произошла ошибка
	Field   string // поле, вызвавшее ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.Node != "" {
		return "node " + e.Node + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(node, field, message string, err error) *ValidationError {
	return &ValidationError{
		Node:    node,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

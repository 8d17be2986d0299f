package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Виды ошибок графа. Каждая *Error разворачивается в один из них.
var (
	// ErrDuplicateOutput — выход уже объявлен другим узлом.
	ErrDuplicateOutput = errors.New("duplicate output")

	// ErrMissingInput — в данных нет обязательного входа.
	ErrMissingInput = errors.New("missing input")

	// ErrInputCollision — данные задают значение, которое вычисляет граф.
	ErrInputCollision = errors.New("input collides with output")

	// ErrUnusedInput — данные содержат значения, которые никто не читает.
	ErrUnusedInput = errors.New("unused input")

	// ErrCyclicDependency — обнаружен цикл в зависимостях.
	ErrCyclicDependency = errors.New("cyclic dependency detected")

	// ErrGraphDefinition — граф определён некорректно.
	ErrGraphDefinition = errors.New("invalid graph definition")

	// ErrCalculation — функция узла завершилась ошибкой.
	ErrCalculation = errors.New("calculation failed")
)

// Причины ошибок вычисления.
var (
	// ErrOutputArity — число значений не совпадает с числом выходов.
	ErrOutputArity = errors.New("output arity mismatch")

	// ErrNodePanic — функция узла запаниковала.
	ErrNodePanic = errors.New("node panicked")
)

// Error — ошибка графа с контекстом.
type Error struct {
	Kind    error    // вид ошибки (ErrMissingInput и т.д.)
	Node    string   // имя узла, если ошибка относится к узлу
	Names   []string // имена переменных или узлов, вызвавших ошибку
	Message string   // описание ошибки
	Err     error    // исходная ошибка
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Node != "" {
		return "node " + e.Node + ": " + msg
	}
	return msg
}

// Unwrap возвращает вид ошибки и исходную ошибку.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// newNamesError создаёт ошибку со списком имён в формате ['a', 'b'].
func newNamesError(kind error, prefix string, names []string) *Error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return &Error{
		Kind:    kind,
		Names:   sorted,
		Message: prefix + FormatNames(sorted),
	}
}

func errDuplicateOutput(name string) *Error {
	return &Error{
		Kind:    ErrDuplicateOutput,
		Names:   []string{name},
		Message: fmt.Sprintf("%s output already exist", name),
	}
}

func errMissingInput(names []string) *Error {
	return newNamesError(ErrMissingInput, "The following inputs are needed: ", names)
}

func errInputCollision(names []string) *Error {
	return newNamesError(ErrInputCollision, "The following inputs are already used in the model: ", names)
}

func errUnusedInput(names []string) *Error {
	return newNamesError(ErrUnusedInput, "The following inputs are not used by the model: ", names)
}

func errCyclicDependency(nodes []string) *Error {
	return newNamesError(ErrCyclicDependency, "A cyclic dependency exists amongst ", nodes)
}

func errGraphDefinition(node, message string) *Error {
	return &Error{
		Kind:    ErrGraphDefinition,
		Node:    node,
		Message: message,
	}
}

func errCalculation(node string, err error) *Error {
	return &Error{
		Kind:    ErrCalculation,
		Node:    node,
		Message: "calculation failed",
		Err:     err,
	}
}

// FormatNames форматирует имена как ['a', 'b'].
// Порядок имён сохраняется.
func FormatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

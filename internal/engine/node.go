package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Func — функция узла.
//
// Получает значения входов в порядке их объявления.
// Для узла с одним выходом результатом считается всё возвращённое значение,
// для нескольких выходов функция должна вернуть []any той же длины.
type Func func(args ...any) (any, error)

// NodeDef — описание узла для регистрации.
type NodeDef struct {
	// Name — имя узла для логов и ошибок. Если пустое, генерируется node-<N>.
	Name string

	// Inputs — имена потребляемых переменных, в порядке аргументов Fn.
	Inputs []string

	// Outputs — имена производимых переменных.
	Outputs []string

	// Fn — вычисление.
	Fn Func
}

// Node — зарегистрированный шаг вычисления. Неизменяем после регистрации.
type Node struct {
	id      string
	name    string
	index   int
	inputs  []string
	outputs []string
	fn      Func
}

func newNode(index int, def NodeDef) *Node {
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("node-%d", index)
	}
	return &Node{
		id:      uuid.NewString(),
		name:    name,
		index:   index,
		inputs:  append([]string(nil), def.Inputs...),
		outputs: append([]string(nil), def.Outputs...),
		fn:      def.Fn,
	}
}

// ID возвращает уникальный идентификатор узла.
func (n *Node) ID() string { return n.id }

// Name возвращает имя узла.
func (n *Node) Name() string { return n.name }

// Index возвращает порядковый номер регистрации.
func (n *Node) Index() int { return n.index }

// Inputs возвращает копию списка входов.
func (n *Node) Inputs() []string { return append([]string(nil), n.inputs...) }

// Outputs возвращает копию списка выходов.
func (n *Node) Outputs() []string { return append([]string(nil), n.outputs...) }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s, %s, %v, %v)", n.id, n.name, n.inputs, n.outputs)
}

// call вызывает функцию узла, превращая панику в ошибку.
func (n *Node) call(args []any) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNodePanic, r)
		}
	}()
	return n.fn(args...)
}

// unpack раскладывает результат функции по выходам узла.
func (n *Node) unpack(res any) (map[string]any, error) {
	values := make(map[string]any, len(n.outputs))

	switch len(n.outputs) {
	case 0:
		return values, nil
	case 1:
		values[n.outputs[0]] = res
		return values, nil
	}

	seq, ok := res.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected %d values, got %T", ErrOutputArity, len(n.outputs), res)
	}
	if len(seq) != len(n.outputs) {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrOutputArity, len(n.outputs), len(seq))
	}
	for i, name := range n.outputs {
		values[name] = seq[i]
	}
	return values, nil
}

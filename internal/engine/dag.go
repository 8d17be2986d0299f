package engine

import (
	"container/heap"
)

// Vertex — узел в графе зависимостей.
type Vertex struct {
	// Node — зарегистрированный узел.
	Node *Node

	// InDegree — количество входящих рёбер (узлов-производителей).
	InDegree int

	// DependsOn — узлы, выходы которых потребляет этот узел.
	DependsOn []*Vertex

	// Dependents — узлы, которые потребляют выходы этого узла.
	Dependents []*Vertex

	// Level — глубина узла: 0 для корней, иначе 1 + максимум по DependsOn.
	Level int
}

// Plan — план выполнения графа.
type Plan struct {
	// Vertices — все вершины в порядке регистрации узлов.
	Vertices []*Vertex

	// RootNodes — узлы без зависимостей от других узлов.
	RootNodes []*Vertex

	// Order — топологический порядок выполнения.
	Order []*Node

	// Levels — узлы, сгруппированные по глубине.
	// Узлы одного уровня не зависят друг от друга.
	Levels [][]*Node
}

// Plan строит план выполнения для текущего состояния графа.
// Возвращает ErrCyclicDependency, если узлы зависят друг от друга по кругу.
func (g *Graph) Plan() (*Plan, error) {
	return g.snapshot().plan()
}

// plan строит граф зависимостей и упорядочивает его.
//
// Ребро идёт от производителя к каждому узлу, потребляющему его выход.
// Входы, которые не производит ни один узел, приходят из данных и рёбер не дают.
func (r *registry) plan() (*Plan, error) {
	p := &Plan{
		Vertices: make([]*Vertex, len(r.nodes)),
	}
	for i, node := range r.nodes {
		p.Vertices[i] = &Vertex{Node: node}
	}

	for _, v := range p.Vertices {
		for _, in := range v.Node.inputs {
			producer, ok := r.outputs[in]
			if !ok {
				continue
			}
			p.addEdge(p.Vertices[producer], v)
		}
	}

	for _, v := range p.Vertices {
		if v.InDegree == 0 {
			p.RootNodes = append(p.RootNodes, v)
		}
	}

	order, err := p.topologicalSort()
	if err != nil {
		return nil, err
	}
	p.Order = order
	p.Levels = p.groupLevels()

	return p, nil
}

// addEdge добавляет ребро между вершинами.
// Дубликаты пропускаются, чтобы не учитывать InDegree дважды.
func (p *Plan) addEdge(from, to *Vertex) {
	for _, dep := range to.DependsOn {
		if dep == from {
			return
		}
	}
	from.Dependents = append(from.Dependents, to)
	to.DependsOn = append(to.DependsOn, from)
	to.InDegree++
}

// topologicalSort выполняет топологическую сортировку (алгоритм Кана).
//
// Из готовых узлов всегда выбирается зарегистрированный раньше,
// поэтому порядок детерминирован.
func (p *Plan) topologicalSort() ([]*Node, error) {
	inDegree := make([]int, len(p.Vertices))
	for i, v := range p.Vertices {
		inDegree[i] = v.InDegree
	}

	ready := &indexHeap{}
	for _, v := range p.RootNodes {
		heap.Push(ready, v.Node.index)
	}

	order := make([]*Node, 0, len(p.Vertices))
	for ready.Len() > 0 {
		v := p.Vertices[heap.Pop(ready).(int)]
		order = append(order, v.Node)

		for _, dependent := range v.Dependents {
			idx := dependent.Node.index
			inDegree[idx]--
			if inDegree[idx] == 0 {
				heap.Push(ready, idx)
			}
			if dependent.Level < v.Level+1 {
				dependent.Level = v.Level + 1
			}
		}
	}

	// Если не все узлы обработаны — есть цикл
	if len(order) != len(p.Vertices) {
		remaining := make([]string, 0, len(p.Vertices)-len(order))
		for i, v := range p.Vertices {
			if inDegree[i] > 0 {
				remaining = append(remaining, v.Node.name)
			}
		}
		return nil, errCyclicDependency(remaining)
	}

	return order, nil
}

// groupLevels группирует узлы по Level в порядке регистрации.
func (p *Plan) groupLevels() [][]*Node {
	levels := make([][]*Node, 0)
	for _, v := range p.Vertices {
		for len(levels) <= v.Level {
			levels = append(levels, make([]*Node, 0))
		}
		levels[v.Level] = append(levels[v.Level], v.Node)
	}
	return levels
}

// Dependencies возвращает узлы, от которых зависит node.
func (p *Plan) Dependencies(node *Node) []*Node {
	v := p.vertex(node)
	if v == nil {
		return nil
	}
	nodes := make([]*Node, len(v.DependsOn))
	for i, dep := range v.DependsOn {
		nodes[i] = dep.Node
	}
	return nodes
}

// Dependents возвращает узлы, которые зависят от node.
func (p *Plan) Dependents(node *Node) []*Node {
	v := p.vertex(node)
	if v == nil {
		return nil
	}
	nodes := make([]*Node, len(v.Dependents))
	for i, dep := range v.Dependents {
		nodes[i] = dep.Node
	}
	return nodes
}

func (p *Plan) vertex(node *Node) *Vertex {
	if node == nil || node.index >= len(p.Vertices) {
		return nil
	}
	v := p.Vertices[node.index]
	if v.Node != node {
		return nil
	}
	return v
}

// Size возвращает количество узлов в плане.
func (p *Plan) Size() int {
	return len(p.Vertices)
}

// indexHeap — min-heap индексов регистрации.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

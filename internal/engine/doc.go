// Package engine содержит движок вычислительного графа.
//
// Включает:
//   - node.go     — Node и Func, раскладка результата по выходам
//   - graph.go    — Graph: реестр узлов и множество всех выходов
//   - validate.go — проверка входных данных (недостающие, лишние, конфликтующие)
//   - dag.go      — граф зависимостей, топологический порядок (алгоритм Кана), уровни
//   - executor.go — последовательное выполнение узлов и сбор терминальных выходов
//   - errors.go   — семейство ошибок *Error
//
// Узлы связываются только по именам переменных: выход одного узла
// становится входом другого, если имена совпадают.
//
//	g := engine.New()
//	g.MustRegister([]string{"a", "b"}, []string{"c"}, add)
//	g.MustRegister([]string{"c"}, []string{"d"}, half)
//	d, err := g.Calculate(ctx, map[string]any{"a": 2, "b": 3})
//
// Узлы выполняются строго по одному, даже если граф допускает параллелизм.
package engine

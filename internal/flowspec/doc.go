// Package flowspec описывает вычислительные графы декларативно.
//
// Spec задаётся в YAML или JSON, узлы ссылаются на функции каталога steps:
//
//	spec, err := flowspec.Load("graph.yaml")
//	g, err := flowspec.Build(spec, steps.DefaultRegistry())
//	data, err := flowspec.LoadData("data.yaml")
//	res, err := g.Calculate(ctx, data)
//
// Файлы пакета:
//   - spec.go   — Spec, NodeDef
//   - parser.go — Parse, Load, Validate
//   - build.go  — Build: Spec → engine.Graph
//   - data.go   — входные данные и присваивания name=value
//   - errors.go — ошибки валидации
package flowspec

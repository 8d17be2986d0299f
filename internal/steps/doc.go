// Package steps содержит каталог именованных функций для узлов графа.
//
// # Обзор
//
// Описание графа (flowspec) ссылается на функции по имени.
// Каталог превращает имя и конфигурацию узла в engine.Func:
//
//	registry := steps.DefaultRegistry()
//	fn, err := registry.Build("add", steps.NewConfig(
//	    []string{"a", "b"}, []string{"c"}, nil,
//	))
//
// Фабрика проверяет конфигурацию (число входов и выходов, параметры)
// при построении графа, а не при вычислении.
//
// # Функции
//
//   - add, mul       — сумма и произведение всех входов
//   - sub, div       — a - b, a / b (ErrDivisionByZero)
//   - divmod         — два выхода: целая часть и остаток
//   - neg, scale     — смена знака, умножение на params.factor
//   - identity       — вход без изменений
//   - concat         — склейка строк через params.sep
//   - template       — Go template params.text по входам узла
//   - fromjson       — разбор JSON строки
//
// # Файлы пакета
//
//   - step.go     — Factory, Config, ошибки, приведение чисел
//   - registry.go — Registry
//   - arith.go    — арифметика
//   - data.go     — identity, concat, fromjson
//   - template.go — template
package steps

// Package cli реализует инструмент командной строки calcgraph.
//
// # Обзор
//
// CLI загружает описание графа (YAML или JSON, см. flowspec),
// строит граф на каталоге функций steps и вычисляет его
// на входных данных из файла и флагов --set.
//
//	calcgraph calc -g graph.yaml -d data.yaml
//	calcgraph calc -g graph.yaml --set a=2 --set b=3 --json
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) по умолчанию
//   - JSON с флагом --json
//
// Данные выводятся в stdout, сообщения и метрики в stderr,
// поэтому вывод можно передавать в pipe: calcgraph calc ... --json | jq .
//
// ## Commands
//
//   - calc:  вычисление терминальных выходов (--all для всех значений)
//   - plan:  порядок выполнения узлов и уровни
//   - check: проверка графа и данных без запуска узлов
//   - funcs: каталог функций
//
// Каждая команда создаётся фабричной функцией (NewCalcCmd и т.д.),
// принимающей envFn и outputFn — замыкания для ленивого создания
// Env и Output после парсинга PersistentFlags.
package cli

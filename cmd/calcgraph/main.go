// calcgraph — инструмент командной строки для вычисления
// декларативных графов функций.
//
// Использование:
//
//	calcgraph [--json] [--metrics] <command> [flags]
//
// Команды:
//
//	calc   Вычислить граф на входных данных
//	plan   Показать порядок выполнения узлов
//	check  Проверить граф и данные
//	funcs  Список доступных функций
package main

import (
	"fmt"
	"os"

	"github.com/shaiso/calcgraph/internal/cli"
	"github.com/shaiso/calcgraph/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	rootCmd := cli.NewRootCmd(version, logger, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

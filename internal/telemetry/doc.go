// Package telemetry обеспечивает наблюдаемость вычислений.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики вычислений и узлов
//
// Metrics реализует engine.Observer и подключается через engine.WithObserver.
package telemetry

// Package telemetry обеспечивает наблюдаемость трекера.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// Логи пишутся в stderr: stdout занят итогами тренировок.
// Метрики собираются в отдельный prometheus.Registry и по запросу
// сохраняются в файл в текстовом формате (textfile collector).
package telemetry

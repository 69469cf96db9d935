// Package cli реализует инструмент командной строки fitness.
//
// # Обзор
//
// CLI строит тренировки из значений, переданных аргументами,
// и выводит итоги в stdout. Диагностика и логи пишутся в stderr,
// поэтому вывод можно передавать дальше: fitness demo --json | jq .
//
// # Ключевые компоненты
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.MarshalIndent) — с флагом --json
//
// ## Commands
//
//   - summary KIND VALUE... — итог одной тренировки
//   - demo — итоги демонстрационного набора пакетов
//   - kinds — список видов тренировок и их параметров
//
// Команды создаются фабричными функциями (NewSummaryCmd и т.д.),
// принимающими trackerFn, registryFn и outputFn — замыкания для
// ленивого создания зависимостей после парсинга PersistentFlags.
package cli

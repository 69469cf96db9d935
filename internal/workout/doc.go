// Package workout содержит модель тренировок и формулы расчёта.
//
// # Обзор
//
// Тренировка строится из пакета данных датчиков: кода вида тренировки
// и упорядоченного списка чисел. По тренировке считаются дистанция,
// средняя скорость и потраченные калории, результат собирается в Summary.
//
// # Виды тренировок
//
// Набор видов закрыт, все они реализуют интерфейс Training:
//
//	RUN  Running   (action, duration, weight)
//	WLK  Walking   (action, duration, weight, height)
//	SWM  Swimming  (action, duration, weight, pool length, pool count)
//
// action — количество шагов или гребков, duration — часы, weight — кг,
// height — см, pool length — метры, pool count — количество бассейнов.
//
// # Registry
//
// Registry — фабрика тренировок по коду вида:
//
//	registry := workout.DefaultRegistry(logger)
//	t, ok, err := registry.Read("RUN", []float64{15000, 1, 75})
//	if err != nil {
//	    // неверное количество или значения аргументов
//	}
//	if !ok {
//	    // вид тренировки не задан, диагностика уже записана в лог
//	}
//	fmt.Print(t.Summary().Message())
//
// # Обработка ошибок
//
// Ошибки построения возвращаются как *ArgumentError и разбираются через
// errors.Is:
//
//	ErrArity         // неверное количество аргументов
//	ErrInvalidValue  // отрицательное, дробное или нечисловое значение
//	ErrNonPositive   // нулевой или отрицательный делитель (duration, height)
//
// Неизвестный код вида ошибкой не считается.
//
// # Файлы пакета
//
//   - constants.go — коэффициенты формул
//   - kind.go      — Kind и список видов
//   - errors.go    — ошибки построения
//   - training.go  — интерфейс Training и общая часть
//   - running.go, walking.go, swimming.go — виды тренировок
//   - summary.go   — Summary и текст сообщения
//   - registry.go  — Registry
package workout

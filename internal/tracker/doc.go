// Package tracker обрабатывает пакеты данных датчиков.
//
// Tracker строит тренировку через workout.Registry, собирает итог,
// выводит его и учитывает в метриках. Обработка последовательная:
// пакеты обрабатываются по одному, в порядке поступления.
//
//	t := tracker.New(tracker.Config{
//	    Registry: workout.DefaultRegistry(logger),
//	    Metrics:  telemetry.NewMetrics(),
//	    Output:   os.Stdout,
//	    Logger:   logger,
//	})
//	res, err := t.Run(ctx, tracker.DemoPackages())
//
// Пакет с неизвестным видом тренировки пропускается, ошибка построения
// останавливает обработку.
package tracker

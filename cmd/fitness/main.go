// Fitness — инструмент командной строки фитнес-трекера.
//
// Строит тренировку из пакета данных датчиков и выводит итог:
// дистанцию, среднюю скорость и потраченные калории.
//
// Использование:
//
//	fitness [--json] [--metrics-file PATH] <command> [args]
//
// Команды:
//
//	summary  Итог одной тренировки: fitness summary RUN 15000 1 75
//	demo     Итоги демонстрационного набора пакетов
//	kinds    Виды тренировок и их параметры
//
// Переменные окружения: LOG_LEVEL, LOG_FORMAT, FITNESS_METRICS_FILE.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/fitness/internal/cli"
	"github.com/shaiso/fitness/internal/telemetry"
	"github.com/shaiso/fitness/internal/tracker"
	"github.com/shaiso/fitness/internal/workout"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var jsonOutput bool
	var metricsFile string

	// stdout занят итогами, логи пишем в stderr
	logger := telemetry.WithRunID(telemetry.SetupLogger(os.Stderr), uuid.NewString())
	metrics := telemetry.NewMetrics()
	registry := workout.DefaultRegistry(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = telemetry.WithLogger(ctx, logger)

	rootCmd := &cobra.Command{
		Use:           "fitness",
		Short:         "Fitness tracker — workout summaries from sensor data",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", os.Getenv("FITNESS_METRICS_FILE"),
		"Write Prometheus metrics to this file after the command")

	trackerFn := func() *tracker.Tracker {
		format := tracker.FormatText
		if jsonOutput {
			format = tracker.FormatJSON
		}
		return tracker.New(tracker.Config{
			Registry: registry,
			Metrics:  metrics,
			Output:   os.Stdout,
			Format:   format,
			Logger:   logger,
		})
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }
	registryFn := func() *workout.Registry { return registry }

	rootCmd.AddCommand(
		cli.NewSummaryCmd(trackerFn, registryFn, outputFn),
		cli.NewDemoCmd(trackerFn, outputFn),
		cli.NewKindsCmd(registryFn, outputFn),
	)

	code := 0
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		outputFn().Error(err.Error())
		code = 1
	}

	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile); err != nil {
			logger.Error("failed to write metrics", "path", metricsFile, "error", err)
			code = 1
		}
	}

	return code
}

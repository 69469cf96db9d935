package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shaiso/fitness/internal/telemetry"
	"github.com/shaiso/fitness/internal/workout"
)

// ErrNoTraining — в Process передана отсутствующая тренировка.
var ErrNoTraining = errors.New("no training to process")

// Format — формат вывода итогов.
type Format string

const (
	// FormatText — информационное сообщение.
	FormatText Format = "text"

	// FormatJSON — Summary в JSON.
	FormatJSON Format = "json"
)

// Config — зависимости Tracker.
type Config struct {
	Registry *workout.Registry
	Metrics  *telemetry.Metrics
	Output   io.Writer
	Format   Format
	Logger   *slog.Logger
}

// Tracker обрабатывает тренировки и выводит итоги.
type Tracker struct {
	registry *workout.Registry
	metrics  *telemetry.Metrics
	out      io.Writer
	format   Format
	logger   *slog.Logger
}

// Result — итог обработки набора пакетов.
type Result struct {
	Processed int
	Skipped   int
	Summaries []workout.Summary
}

// New создаёт Tracker. Незаданные поля Config заменяются значениями
// по умолчанию: реестр со всеми видами, stdout, текстовый формат.
func New(cfg Config) *Tracker {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = workout.DefaultRegistry(cfg.Logger)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = telemetry.NewMetrics()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}

	return &Tracker{
		registry: cfg.Registry,
		metrics:  cfg.Metrics,
		out:      cfg.Output,
		format:   cfg.Format,
		logger:   cfg.Logger,
	}
}

// Process собирает итог тренировки и выводит его.
// Для tr == nil возвращает ErrNoTraining.
func (t *Tracker) Process(ctx context.Context, tr workout.Training) (workout.Summary, error) {
	if tr == nil {
		return workout.Summary{}, ErrNoTraining
	}

	ctx = telemetry.EnsureLogger(ctx, t.logger)

	summary := tr.Summary()
	if err := t.write(summary); err != nil {
		return workout.Summary{}, fmt.Errorf("write summary: %w", err)
	}

	t.metrics.RecordProcessed(summary.Kind.String(), summary.Distance, summary.Calories)
	telemetry.WithKind(telemetry.FromContext(ctx), summary.Kind.String()).Debug("workout processed",
		"distance_km", summary.Distance,
		"speed_kmh", summary.Speed,
		"calories_kcal", summary.Calories,
	)

	return summary, nil
}

// Run последовательно обрабатывает пакеты.
//
// Пакет с неизвестным видом пропускается. Ошибка построения тренировки
// прерывает обработку, результат содержит уже обработанные пакеты.
func (t *Tracker) Run(ctx context.Context, pkgs []Package) (Result, error) {
	var res Result
	ctx = telemetry.EnsureLogger(ctx, t.logger)

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		tr, ok, err := t.registry.Read(pkg.Kind, pkg.Data)
		if err != nil {
			t.metrics.RecordFailed(failureReason(err))
			return res, fmt.Errorf("package %d (%s): %w", i, pkg.Kind, err)
		}
		if !ok {
			t.metrics.RecordSkipped()
			res.Skipped++
			continue
		}

		summary, err := t.Process(ctx, tr)
		if err != nil {
			return res, fmt.Errorf("package %d (%s): %w", i, pkg.Kind, err)
		}
		res.Processed++
		res.Summaries = append(res.Summaries, summary)
	}

	telemetry.FromContext(ctx).Info("packages processed",
		"processed", res.Processed,
		"skipped", res.Skipped,
	)
	return res, nil
}

func (t *Tracker) write(s workout.Summary) error {
	if t.format == FormatJSON {
		enc := json.NewEncoder(t.out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	// Пустая строка после каждого сообщения, как при печати подряд.
	_, err := fmt.Fprintln(t.out, s.Message())
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrArity):
		return telemetry.ReasonArity
	case errors.Is(err, workout.ErrNonPositive):
		return telemetry.ReasonNonPositive
	case errors.Is(err, workout.ErrInvalidValue):
		return telemetry.ReasonInvalidValue
	default:
		return telemetry.ReasonOther
	}
}

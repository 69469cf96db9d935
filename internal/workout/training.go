package workout

import (
	"fmt"
	"math"
)

// Training — тренировка, построенная из пакета данных датчиков.
//
// Реализации: *Running, *Walking, *Swimming. Набор закрыт,
// новые виды добавляются только в этом пакете.
type Training interface {
	// Kind возвращает вид тренировки.
	Kind() Kind

	// Action возвращает количество шагов или гребков.
	Action() int

	// Duration возвращает длительность в часах.
	Duration() float64

	// Weight возвращает вес спортсмена в кг.
	Weight() float64

	// Distance возвращает дистанцию в км.
	Distance() float64

	// MeanSpeed возвращает среднюю скорость в км/ч.
	MeanSpeed() float64

	// SpentCalories возвращает потраченные килокалории.
	SpentCalories() float64

	// Summary собирает итог тренировки.
	Summary() Summary

	sealed()
}

// base — общие данные всех видов тренировок.
type base struct {
	action   int
	duration float64
	weight   float64
}

func newBase(kind Kind, action int, duration, weight float64) (base, error) {
	if action < 0 {
		return base{}, NewArgumentError(kind, "action",
			fmt.Sprintf("action must not be negative, got %d", action), ErrInvalidValue)
	}
	if err := checkPositive(kind, "duration", duration); err != nil {
		return base{}, err
	}
	if err := checkNonNegative(kind, "weight", weight); err != nil {
		return base{}, err
	}
	return base{action: action, duration: duration, weight: weight}, nil
}

func (b base) Action() int       { return b.action }
func (b base) Duration() float64 { return b.duration }
func (b base) Weight() float64   { return b.weight }

func (base) sealed() {}

// distance считает дистанцию по количеству действий и длине шага.
func (b base) distance(lenStep float64) float64 {
	return float64(b.action) * lenStep / MInKm
}

func summarize(t Training) Summary {
	return Summary{
		Kind:     t.Kind(),
		Duration: t.Duration(),
		Distance: t.Distance(),
		Speed:    t.MeanSpeed(),
		Calories: t.SpentCalories(),
	}
}

func checkPositive(kind Kind, field string, v float64) error {
	if err := checkFinite(kind, field, v); err != nil {
		return err
	}
	if v <= 0 {
		return NewArgumentError(kind, field,
			fmt.Sprintf("%s must be positive, got %v", field, v), ErrNonPositive)
	}
	return nil
}

func checkNonNegative(kind Kind, field string, v float64) error {
	if err := checkFinite(kind, field, v); err != nil {
		return err
	}
	if v < 0 {
		return NewArgumentError(kind, field,
			fmt.Sprintf("%s must not be negative, got %v", field, v), ErrInvalidValue)
	}
	return nil
}

func checkFinite(kind Kind, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewArgumentError(kind, field,
			fmt.Sprintf("%s must be a finite number, got %v", field, v), ErrInvalidValue)
	}
	return nil
}

// actionCount переводит значение датчика в количество действий.
func actionCount(kind Kind, v float64) (int, error) {
	if err := checkNonNegative(kind, "action", v); err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, NewArgumentError(kind, "action",
			fmt.Sprintf("action must be a whole count, got %v", v), ErrInvalidValue)
	}
	// float64(math.MaxInt) округляется вверх до 2^63, int(v) для него переполняется.
	if v >= math.MaxInt {
		return 0, NewArgumentError(kind, "action",
			fmt.Sprintf("action is too large, got %v", v), ErrInvalidValue)
	}
	return int(v), nil
}

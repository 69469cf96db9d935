package workout

import (
	"fmt"
	"strconv"
)

// Summary — итог тренировки. Создаётся один раз и не меняется.
type Summary struct {
	// Kind — вид тренировки, выводится как тип тренировки.
	Kind Kind `json:"kind"`

	// Duration — длительность в часах.
	Duration float64 `json:"duration_h"`

	// Distance — дистанция в км.
	Distance float64 `json:"distance_km"`

	// Speed — средняя скорость в км/ч.
	Speed float64 `json:"speed_kmh"`

	// Calories — потраченные килокалории.
	Calories float64 `json:"calories_kcal"`
}

// Message возвращает информационное сообщение о тренировке.
//
// Длительность выводится без округления, остальные значения —
// с двумя знаками после запятой.
func (s Summary) Message() string {
	return fmt.Sprintf("Тип тренировки: %s;\n"+
		"Длительность: %s ч.;\n"+
		"Дистанция: %.2f км.;\n"+
		"Ср. скорость: %.2f км/ч;\n"+
		"Потрачено ккал: %.2f.\n",
		s.Kind, strconv.FormatFloat(s.Duration, 'f', -1, 64),
		s.Distance, s.Speed, s.Calories)
}

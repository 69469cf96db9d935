package workout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Message(t *testing.T) {
	w, err := NewWalking(9000, 1, 75, 180)
	require.NoError(t, err)
	walkingCalories := fmt.Sprintf("%.2f", w.SpentCalories())

	tests := []struct {
		name  string
		build func() (Training, error)
		want  string
	}{
		{
			name:  "running",
			build: func() (Training, error) { return NewRunning(15000, 1, 75) },
			want: "Тип тренировки: RUN;\n" +
				"Длительность: 1 ч.;\n" +
				"Дистанция: 9.75 км.;\n" +
				"Ср. скорость: 9.75 км/ч;\n" +
				"Потрачено ккал: 0.22.\n",
		},
		{
			name:  "swimming",
			build: func() (Training, error) { return NewSwimming(720, 1, 80, 25, 40) },
			want: "Тип тренировки: SWM;\n" +
				"Длительность: 1 ч.;\n" +
				"Дистанция: 0.99 км.;\n" +
				"Ср. скорость: 1.00 км/ч;\n" +
				"Потрачено ккал: 336.00.\n",
		},
		{
			name:  "walking",
			build: func() (Training, error) { return NewWalking(9000, 1, 75, 180) },
			want: "Тип тренировки: WLK;\n" +
				"Длительность: 1 ч.;\n" +
				"Дистанция: 5.85 км.;\n" +
				"Ср. скорость: 5.85 км/ч;\n" +
				"Потрачено ккал: " + walkingCalories + ".\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Summary().Message())
		})
	}
}

func TestSummary_DurationUnrounded(t *testing.T) {
	s := Summary{Kind: KindRunning, Duration: 1.257}
	assert.Contains(t, s.Message(), "Длительность: 1.257 ч.;\n")

	s = Summary{Kind: KindRunning, Duration: 0.5}
	assert.Contains(t, s.Message(), "Длительность: 0.5 ч.;\n")
}

func TestSummary_Fields(t *testing.T) {
	r, err := NewRunning(15000, 1, 75)
	require.NoError(t, err)

	s := r.Summary()
	assert.Equal(t, KindRunning, s.Kind)
	assert.Equal(t, 1.0, s.Duration)
	assert.InDelta(t, r.Distance(), s.Distance, delta)
	assert.InDelta(t, r.MeanSpeed(), s.Speed, delta)
	assert.InDelta(t, r.SpentCalories(), s.Calories, delta)
}

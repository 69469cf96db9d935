package workout

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(buf *bytes.Buffer) *Registry {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return DefaultRegistry(logger)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(nil)

	// Пустой реестр
	assert.Empty(t, r.Kinds())

	r.Register(Constructor{Kind: KindRunning, Params: []string{"action", "duration", "weight"}})
	assert.True(t, r.Has("RUN"))
	assert.False(t, r.Has("WLK"))

	c, err := r.Get("RUN")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Arity())

	_, err = r.Get("unknown")
	assert.True(t, errors.Is(err, ErrUnknownKind), "expected ErrUnknownKind, got %v", err)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(nil)

	kinds := r.Kinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, KindRunning, kinds[0].Kind)
	assert.Equal(t, KindSwimming, kinds[1].Kind)
	assert.Equal(t, KindWalking, kinds[2].Kind)

	assert.Equal(t, 3, kinds[0].Arity())
	assert.Equal(t, 5, kinds[1].Arity())
	assert.Equal(t, 4, kinds[2].Arity())
}

func TestRegistry_Read(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		kind Kind
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, KindSwimming},
		{"RUN", []float64{15000, 1, 75}, KindRunning},
		{"WLK", []float64{9000, 1, 75, 180}, KindWalking},
	}

	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr, ok, err := r.Read(tt.code, tt.data)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, tr.Kind())
			assert.Equal(t, int(tt.data[0]), tr.Action())
			assert.Equal(t, tt.data[1], tr.Duration())
			assert.Equal(t, tt.data[2], tr.Weight())
		})
	}
	assert.Empty(t, buf.String())
}

func TestRegistry_Read_Fields(t *testing.T) {
	r := DefaultRegistry(nil)

	tr, ok, err := r.Read("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.True(t, ok)

	s, isSwimming := tr.(*Swimming)
	require.True(t, isSwimming)
	assert.Equal(t, 25.0, s.PoolLength())
	assert.Equal(t, 40.0, s.PoolCount())

	tr, ok, err = r.Read("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.True(t, ok)

	w, isWalking := tr.(*Walking)
	require.True(t, isWalking)
	assert.Equal(t, 180.0, w.Height())
}

func TestRegistry_Read_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	tr, ok, err := r.Read("XYZ", []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, tr)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "workout kind not set")
	assert.Contains(t, out, "kind=XYZ")
}

func TestRegistry_Read_LargeAction(t *testing.T) {
	tr, ok, err := DefaultRegistry(nil).Read("RUN", []float64{3e9, 1, 75})
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, int64(3000000000), tr.Action())
	assert.InDelta(t, 1950000.0, tr.Distance(), 1e-6)
}

func TestRegistry_Read_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
		want error
	}{
		{"too few values", "RUN", []float64{15000, 1}, ErrArity},
		{"too many values", "RUN", []float64{15000, 1, 75, 180}, ErrArity},
		{"no values", "SWM", nil, ErrArity},
		{"fractional action", "WLK", []float64{12.5, 1, 75, 180}, ErrInvalidValue},
		{"negative action", "RUN", []float64{-1, 1, 75}, ErrInvalidValue},
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrNonPositive},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, ErrNonPositive},
		{"negative pool count", "SWM", []float64{720, 1, 80, 25, -40}, ErrInvalidValue},
		{"action too large", "RUN", []float64{1e19, 1, 75}, ErrInvalidValue},
	}

	r := DefaultRegistry(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok, err := r.Read(tt.code, tt.data)
			require.Error(t, err)
			assert.False(t, ok)
			assert.Nil(t, tr)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, Kind(tt.code), argErr.Kind)
		})
	}
}

func TestArgumentError_Message(t *testing.T) {
	_, _, err := DefaultRegistry(nil).Read("RUN", []float64{1})
	require.Error(t, err)
	assert.Equal(t, "RUN: expected 3 values (action, duration, weight), got 1", err.Error())

	_, _, err = DefaultRegistry(nil).Read("RUN", []float64{1e19, 1, 75})
	require.Error(t, err)
	assert.Equal(t, "RUN: action is too large, got 1e+19", err.Error())

	_, _, err = DefaultRegistry(nil).Read("RUN", []float64{1.5, 1, 75})
	require.Error(t, err)
	assert.Equal(t, "RUN: action must be a whole count, got 1.5", err.Error())

	err = NewArgumentError("", "x", "bad x", ErrInvalidValue)
	assert.Equal(t, "bad x", err.Error())
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Бег", KindRunning.Title())
	assert.Equal(t, "Спортивная ходьба", KindWalking.Title())
	assert.Equal(t, "Плавание", KindSwimming.Title())
	assert.Equal(t, "XYZ", Kind("XYZ").Title())
	assert.Equal(t, "SWM", KindSwimming.String())
}

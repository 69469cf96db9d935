package workout

// Running — тренировка: бег.
type Running struct {
	base
}

// NewRunning создаёт Running.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(KindRunning, action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

// Kind возвращает KindRunning.
func (r *Running) Kind() Kind {
	return KindRunning
}

// Distance возвращает дистанцию в км.
func (r *Running) Distance() float64 {
	return r.distance(LenStep)
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.duration
}

// SpentCalories возвращает потраченные килокалории.
func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / (MInKm * r.duration * MinInH)
}

// Summary собирает итог тренировки.
func (r *Running) Summary() Summary {
	return summarize(r)
}

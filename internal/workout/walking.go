package workout

// Walking — тренировка: спортивная ходьба.
type Walking struct {
	base
	height float64
}

// NewWalking создаёт Walking. height — рост в сантиметрах, должен быть больше нуля.
func NewWalking(action int, duration, weight, height float64) (*Walking, error) {
	b, err := newBase(KindWalking, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err := checkPositive(KindWalking, "height", height); err != nil {
		return nil, err
	}
	return &Walking{base: b, height: height}, nil
}

// Kind возвращает KindWalking.
func (w *Walking) Kind() Kind {
	return KindWalking
}

// Height возвращает рост в сантиметрах.
func (w *Walking) Height() float64 {
	return w.height
}

// Distance возвращает дистанцию в км.
func (w *Walking) Distance() float64 {
	return w.distance(LenStep)
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (w *Walking) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories возвращает потраченные килокалории.
// Скорость в формуле берётся в метрах в минуту, рост — в метрах.
func (w *Walking) SpentCalories() float64 {
	speed := w.MeanSpeed() * MInKm / MinInH
	return (walkingCaloriesWeightMultiplier*w.weight +
		speed*speed/(w.height/CmInM)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * MinInH
}

// Summary собирает итог тренировки.
func (w *Walking) Summary() Summary {
	return summarize(w)
}

package workout

// Swimming — тренировка: плавание.
//
// Дистанция считается по гребкам, а средняя скорость — по длине
// и количеству проплытых бассейнов, без учёта гребков.
type Swimming struct {
	base
	poolLength float64
	poolCount  float64
}

// NewSwimming создаёт Swimming. poolLength — длина бассейна в метрах,
// poolCount — сколько раз пользователь переплыл бассейн.
func NewSwimming(action int, duration, weight, poolLength, poolCount float64) (*Swimming, error) {
	b, err := newBase(KindSwimming, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative(KindSwimming, "pool_length", poolLength); err != nil {
		return nil, err
	}
	if err := checkNonNegative(KindSwimming, "pool_count", poolCount); err != nil {
		return nil, err
	}
	return &Swimming{base: b, poolLength: poolLength, poolCount: poolCount}, nil
}

// Kind возвращает KindSwimming.
func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// PoolLength возвращает длину бассейна в метрах.
func (s *Swimming) PoolLength() float64 {
	return s.poolLength
}

// PoolCount возвращает количество бассейнов.
func (s *Swimming) PoolCount() float64 {
	return s.poolCount
}

// Distance возвращает дистанцию в км по длине гребка.
func (s *Swimming) Distance() float64 {
	return s.distance(SwimmingLenStep)
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * s.poolCount / MInKm / s.duration
}

// SpentCalories возвращает потраченные килокалории.
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}

// Summary собирает итог тренировки.
func (s *Swimming) Summary() Summary {
	return summarize(s)
}

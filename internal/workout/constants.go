package workout

// Общие коэффициенты.
const (
	// LenStep — длина шага в метрах.
	LenStep = 0.65

	// MInKm — метров в километре.
	MInKm = 1000

	// MinInH — минут в часе.
	MinInH = 60

	// CmInM — сантиметров в метре.
	CmInM = 100
)

// Коэффициенты для бега.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Коэффициенты для спортивной ходьбы.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// Коэффициенты для плавания.
const (
	// SwimmingLenStep — длина гребка в метрах.
	SwimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

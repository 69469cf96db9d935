package tracker

// Package — пакет данных от датчиков: код вида тренировки
// и значения в порядке параметров этого вида.
type Package struct {
	Kind string    `json:"kind"`
	Data []float64 `json:"data"`
}

// DemoPackages возвращает демонстрационный набор пакетов.
func DemoPackages() []Package {
	return []Package{
		{Kind: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Kind: "RUN", Data: []float64{15000, 1, 75}},
		{Kind: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

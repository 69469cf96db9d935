package workout

// Kind — код вида тренировки, как его присылает датчик.
type Kind string

const (
	// KindRunning — бег.
	KindRunning Kind = "RUN"

	// KindWalking — спортивная ходьба.
	KindWalking Kind = "WLK"

	// KindSwimming — плавание.
	KindSwimming Kind = "SWM"
)

// String возвращает код вида.
func (k Kind) String() string {
	return string(k)
}

// Title возвращает название вида для вывода пользователю.
func (k Kind) Title() string {
	switch k {
	case KindRunning:
		return "Бег"
	case KindWalking:
		return "Спортивная ходьба"
	case KindSwimming:
		return "Плавание"
	default:
		return string(k)
	}
}

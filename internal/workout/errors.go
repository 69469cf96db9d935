package workout

import "errors"

// Ошибки построения тренировки.
var (
	// ErrUnknownKind — вид тренировки не зарегистрирован.
	// Возвращается только из Registry.Get, Registry.Read сообщает об этом через ok.
	ErrUnknownKind = errors.New("unknown workout kind")

	// ErrArity — количество аргументов не совпадает с параметрами вида.
	ErrArity = errors.New("argument count mismatch")

	// ErrInvalidValue — значение аргумента недопустимо.
	ErrInvalidValue = errors.New("invalid argument value")

	// ErrNonPositive — делитель в формуле не положителен.
	ErrNonPositive = errors.New("non-positive divisor")
)

// ArgumentError — ошибка построения с контекстом.
type ArgumentError struct {
	Kind    Kind   // вид тренировки
	Field   string // параметр, вызвавший ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ArgumentError) Error() string {
	if e.Kind != "" {
		return string(e.Kind) + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// NewArgumentError создаёт новую ошибку построения.
func NewArgumentError(kind Kind, field, message string, err error) *ArgumentError {
	return &ArgumentError{
		Kind:    kind,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

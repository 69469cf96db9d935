package workout

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Constructor описывает, как построить тренировку вида Kind
// из упорядоченного списка значений датчиков.
type Constructor struct {
	// Kind — вид тренировки.
	Kind Kind

	// Params — имена позиционных параметров, по порядку.
	Params []string

	// New строит тренировку. Количество значений уже проверено.
	New func(data []float64) (Training, error)
}

// Arity возвращает количество параметров.
func (c Constructor) Arity() int {
	return len(c.Params)
}

// Registry — реестр видов тренировок.
//
// Позволяет регистрировать и получать конструкторы по коду вида.
// Потокобезопасен.
type Registry struct {
	mu     sync.RWMutex
	kinds  map[Kind]Constructor
	logger *slog.Logger
}

// NewRegistry создаёт пустой реестр. Если logger == nil, используется slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		kinds:  make(map[Kind]Constructor),
		logger: logger,
	}
}

// DefaultRegistry создаёт реестр со всеми видами тренировок.
func DefaultRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)

	r.Register(Constructor{
		Kind:   KindSwimming,
		Params: []string{"action", "duration", "weight", "pool_length", "pool_count"},
		New: func(data []float64) (Training, error) {
			action, err := actionCount(KindSwimming, data[0])
			if err != nil {
				return nil, err
			}
			s, err := NewSwimming(action, data[1], data[2], data[3], data[4])
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	})
	r.Register(Constructor{
		Kind:   KindRunning,
		Params: []string{"action", "duration", "weight"},
		New: func(data []float64) (Training, error) {
			action, err := actionCount(KindRunning, data[0])
			if err != nil {
				return nil, err
			}
			run, err := NewRunning(action, data[1], data[2])
			if err != nil {
				return nil, err
			}
			return run, nil
		},
	})
	r.Register(Constructor{
		Kind:   KindWalking,
		Params: []string{"action", "duration", "weight", "height"},
		New: func(data []float64) (Training, error) {
			action, err := actionCount(KindWalking, data[0])
			if err != nil {
				return nil, err
			}
			w, err := NewWalking(action, data[1], data[2], data[3])
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	})

	return r
}

// Register регистрирует конструктор.
// Если вид уже зарегистрирован, он будет перезаписан.
func (r *Registry) Register(c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[c.Kind] = c
}

// Get возвращает конструктор по коду вида.
// Возвращает ErrUnknownKind, если вид не найден.
func (r *Registry) Get(code string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.kinds[Kind(code)]
	if !exists {
		return Constructor{}, fmt.Errorf("%w: %q", ErrUnknownKind, code)
	}
	return c, nil
}

// Has проверяет, зарегистрирован ли вид.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.kinds[Kind(code)]
	return exists
}

// Kinds возвращает отсортированный список зарегистрированных видов.
func (r *Registry) Kinds() []Constructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Constructor, 0, len(r.kinds))
	for _, c := range r.kinds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Read строит тренировку из пакета данных датчиков.
//
// Если код вида неизвестен, в лог (DEBUG) пишется диагностика и возвращается
// (nil, false, nil): отсутствие тренировки — штатный исход, а не ошибка.
// Неверное количество значений или недопустимые значения возвращают *ArgumentError.
func (r *Registry) Read(code string, data []float64) (Training, bool, error) {
	c, err := r.Get(code)
	if err != nil {
		r.logger.Debug("workout kind not set", "kind", code)
		return nil, false, nil
	}

	if len(data) != c.Arity() {
		return nil, false, NewArgumentError(c.Kind, "",
			fmt.Sprintf("expected %d values (%s), got %d",
				c.Arity(), strings.Join(c.Params, ", "), len(data)),
			ErrArity)
	}

	t, err := c.New(data)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

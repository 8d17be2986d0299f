package steps

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shaiso/calcgraph/internal/engine"
)

// Registry — реестр функций шагов.
//
// Позволяет регистрировать фабрики функций по имени и строить
// engine.Func для узлов графа. Потокобезопасен.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry создаёт реестр со всеми стандартными функциями.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Арифметика
	r.Register(FuncAdd, NewAdd)
	r.Register(FuncSub, NewSub)
	r.Register(FuncMul, NewMul)
	r.Register(FuncDiv, NewDiv)
	r.Register(FuncDivmod, NewDivmod)
	r.Register(FuncNeg, NewNeg)
	r.Register(FuncScale, NewScale)

	// Строки и данные
	r.Register(FuncIdentity, NewIdentity)
	r.Register(FuncConcat, NewConcat)
	r.Register(FuncTemplate, NewTemplate)
	r.Register(FuncFromJSON, NewFromJSON)

	return r
}

// Register регистрирует фабрику в реестре.
// Если функция с таким именем уже существует, она будет перезаписана.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get возвращает фабрику по имени.
// Возвращает ErrStepNotFound, если функция не найдена.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStepNotFound, name)
	}

	return factory, nil
}

// Build строит функцию узла по имени и конфигурации.
func (r *Registry) Build(name string, cfg Config) (engine.Func, error) {
	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	fn, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fn, nil
}

// Has проверяет, зарегистрирована ли функция.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// Names возвращает список всех зарегистрированных функций.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count возвращает количество зарегистрированных функций.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Unregister удаляет функцию из реестра.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

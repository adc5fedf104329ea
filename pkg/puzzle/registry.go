package puzzle

import (
	"fmt"
	"sort"
)

// Registry is the static dispatch table from day to module.
// It is built once at startup and never modified afterwards.
type Registry struct {
	modules map[Day]Module
	days    []Day
}

// NewRegistry builds a registry from the given modules.
// Panics on an invalid or duplicate day: the module list is fixed at compile time.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{modules: make(map[Day]Module, len(modules))}
	for _, m := range modules {
		day := m.Day()
		if err := day.Validate(); err != nil {
			panic(fmt.Sprintf("puzzle: %v", err))
		}
		if _, exists := r.modules[day]; exists {
			panic(fmt.Sprintf("puzzle: %s registered twice", day))
		}
		r.modules[day] = m
		r.days = append(r.days, day)
	}
	sort.Slice(r.days, func(i, j int) bool { return r.days[i] < r.days[j] })
	return r
}

// Lookup returns the module for day, or an UnknownDayError.
func (r *Registry) Lookup(day Day) (Module, error) {
	m, ok := r.modules[day]
	if !ok {
		return nil, &UnknownDayError{Day: day}
	}
	return m, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []Day {
	out := make([]Day, len(r.days))
	copy(out, r.days)
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.days)
}

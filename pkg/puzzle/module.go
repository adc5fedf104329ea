package puzzle

import (
	"errors"
	"fmt"
)

// Solver is implemented by each day with its own parsed state type T.
type Solver[T any] interface {
	Parse(input string) (T, error)
	PartOne(state T) (Answer, error)
	PartTwo(state T) (Answer, error)
}

// Parsed is the type-erased state handed between Module operations.
type Parsed any

// Module is the uniform view of a day used by the runner and the benchmark harness.
type Module interface {
	Day() Day
	Title() string
	Parse(input string) (Parsed, error)
	PartOne(state Parsed) (Answer, error)
	PartTwo(state Parsed) (Answer, error)
}

// New wraps a typed solver into a Module for the given day.
func New[T any](day Day, title string, solver Solver[T]) Module {
	return &module[T]{day: day, title: title, solver: solver}
}

type module[T any] struct {
	day    Day
	title  string
	solver Solver[T]
}

func (m *module[T]) Day() Day {
	return m.day
}

func (m *module[T]) Title() string {
	return m.title
}

func (m *module[T]) Parse(input string) (Parsed, error) {
	state, err := m.solver.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s input: %w", m.day, err)
	}
	return state, nil
}

func (m *module[T]) PartOne(state Parsed) (Answer, error) {
	typed, err := m.state(state)
	if err != nil {
		return "", err
	}
	answer, err := m.solver.PartOne(typed)
	return answer, m.annotate(1, err)
}

func (m *module[T]) PartTwo(state Parsed) (Answer, error) {
	typed, err := m.state(state)
	if err != nil {
		return "", err
	}
	answer, err := m.solver.PartTwo(typed)
	return answer, m.annotate(2, err)
}

func (m *module[T]) state(state Parsed) (T, error) {
	typed, ok := state.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: state of type %T was not produced by this module's Parse", m.day, state)
	}
	return typed, nil
}

// annotate stamps day and part onto LogicErrors returned by the solver.
func (m *module[T]) annotate(part int, err error) error {
	if err == nil {
		return nil
	}
	var logicErr *LogicError
	if errors.As(err, &logicErr) && logicErr.Day == 0 {
		logicErr.Day = m.day
		logicErr.Part = part
		return err
	}
	return fmt.Errorf("%s part %d: %w", m.day, part, err)
}

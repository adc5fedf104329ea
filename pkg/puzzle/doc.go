// Package puzzle provides the contract every daily puzzle implements and the
// static registry the runner dispatches through.
//
// # Overview
//
// A day is a self-contained unit with three operations: Parse turns the raw
// puzzle text into a typed state, PartOne and PartTwo compute the two answers
// from that state. Days are written against the generic Solver interface and
// wrapped with New, which erases the state type so the runner and the benchmark
// harness can treat every day uniformly through Module.
//
// # Usage Example
//
//	type solver struct{}
//
//	func (solver) Parse(input string) ([]int, error)          { ... }
//	func (solver) PartOne(values []int) (puzzle.Answer, error) { ... }
//	func (solver) PartTwo(values []int) (puzzle.Answer, error) { ... }
//
//	registry := puzzle.NewRegistry(
//		puzzle.New(1, "Historian Hysteria", solver{}),
//	)
//
//	module, err := registry.Lookup(1)
//	if puzzle.IsUnknownDay(err) {
//		// not registered
//	}
//
// # Rules for implementations
//
// Parse must be pure and deterministic: identical text always yields an equal
// state. PartOne and PartTwo must not mutate the state they receive and must not
// keep package-level mutable state, so that the benchmark harness can call them
// repeatedly on one parsed input. The only expected failure of a part is a
// LogicError, returned when the input contradicts the puzzle (an unreachable
// exit, a machine with no solution).
package puzzle

// Package days is the static table of every solved puzzle.
package days

import (
	"github.com/dyluth/advent/internal/days/day01"
	"github.com/dyluth/advent/internal/days/day02"
	"github.com/dyluth/advent/internal/days/day03"
	"github.com/dyluth/advent/internal/days/day04"
	"github.com/dyluth/advent/internal/days/day05"
	"github.com/dyluth/advent/internal/days/day06"
	"github.com/dyluth/advent/internal/days/day07"
	"github.com/dyluth/advent/internal/days/day08"
	"github.com/dyluth/advent/internal/days/day09"
	"github.com/dyluth/advent/internal/days/day10"
	"github.com/dyluth/advent/internal/days/day11"
	"github.com/dyluth/advent/internal/days/day12"
	"github.com/dyluth/advent/internal/days/day13"
	"github.com/dyluth/advent/internal/days/day14"
	"github.com/dyluth/advent/internal/days/day15"
	"github.com/dyluth/advent/internal/days/day16"
	"github.com/dyluth/advent/internal/days/day17"
	"github.com/dyluth/advent/internal/days/day18"
	"github.com/dyluth/advent/internal/days/day19"
	"github.com/dyluth/advent/internal/days/day20"
	"github.com/dyluth/advent/internal/days/day21"
	"github.com/dyluth/advent/pkg/puzzle"
)

// Registry returns a registry holding every implemented day.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(
		day01.Module(),
		day02.Module(),
		day03.Module(),
		day04.Module(),
		day05.Module(),
		day06.Module(),
		day07.Module(),
		day08.Module(),
		day09.Module(),
		day10.Module(),
		day11.Module(),
		day12.Module(),
		day13.Module(),
		day14.Module(),
		day15.Module(),
		day16.Module(),
		day17.Module(),
		day18.Module(),
		day19.Module(),
		day20.Module(),
		day21.Module(),
	)
}

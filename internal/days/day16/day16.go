// Package day16 solves "Reindeer Maze": the lowest-scoring route through a maze
// where turning costs far more than stepping.
package day16

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Reindeer Maze"

const (
	stepCost = 1
	turnCost = 1000
)

type Maze struct {
	Map        *grid.Grid
	Start, End grid.Point
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Maze](16, Title, Solver{})
}

func (Solver) Parse(input string) (Maze, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Maze{}, err
	}
	start, ok := g.Find('S')
	if !ok {
		return Maze{}, fmt.Errorf("maze has no start tile")
	}
	end, ok := g.Find('E')
	if !ok {
		return Maze{}, fmt.Errorf("maze has no end tile")
	}
	return Maze{Map: g, Start: start, End: end}, nil
}

// PartOne is the lowest score from S, facing east, to E.
func (Solver) PartOne(m Maze) (puzzle.Answer, error) {
	best, _, err := m.solve()
	if err != nil {
		return "", err
	}
	return puzzle.Int(best), nil
}

// PartTwo counts tiles that lie on at least one lowest-scoring route.
func (Solver) PartTwo(m Maze) (puzzle.Answer, error) {
	best, forward, err := m.solve()
	if err != nil {
		return "", err
	}
	backward := m.dijkstra(m.endStates(), true)

	tiles := 0
	for idx := 0; idx < m.Map.Len(); idx++ {
		for d := range grid.Directions {
			s := idx*4 + d
			if forward[s] != math.MaxInt && backward[s] != math.MaxInt && forward[s]+backward[s] == best {
				tiles++
				break
			}
		}
	}
	return puzzle.Int(tiles), nil
}

func (m Maze) solve() (int, []int, error) {
	forward := m.dijkstra([]int{m.state(m.Start, grid.East)}, false)
	best := math.MaxInt
	for _, s := range m.endStates() {
		best = min(best, forward[s])
	}
	if best == math.MaxInt {
		return 0, nil, puzzle.Unsolvable("end tile is unreachable")
	}
	return best, forward, nil
}

func (m Maze) state(p grid.Point, d grid.Direction) int {
	return m.Map.Index(p)*4 + int(d)
}

func (m Maze) endStates() []int {
	states := make([]int, 0, 4)
	for _, d := range grid.Directions {
		states = append(states, m.state(m.End, d))
	}
	return states
}

// dijkstra returns the lowest score to every (tile, facing) state. With
// reverse set, moves are followed backwards, giving the score from each
// state to the nearest source.
func (m Maze) dijkstra(sources []int, reverse bool) []int {
	dist := make([]int, m.Map.Len()*4)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	pq := &queue{}
	for _, s := range sources {
		dist[s] = 0
		heap.Push(pq, item{state: s})
	}

	relax := func(s, cost int) {
		if cost < dist[s] {
			dist[s] = cost
			heap.Push(pq, item{state: s, cost: cost})
		}
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if cur.cost > dist[cur.state] {
			continue
		}
		p := m.Map.Point(cur.state / 4)
		d := grid.Direction(cur.state % 4)

		delta := d.Delta()
		if reverse {
			delta = delta.Scale(-1)
		}
		if next := p.Add(delta); m.Map.In(next) && m.Map.At(next) != '#' {
			relax(m.state(next, d), cur.cost+stepCost)
		}
		relax(m.state(p, d.Left()), cur.cost+turnCost)
		relax(m.state(p, d.Right()), cur.cost+turnCost)
	}
	return dist
}

type item struct {
	state, cost int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

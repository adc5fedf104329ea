// Package day09 solves "Disk Fragmenter": compacting a dense disk map.
package day09

import (
	"fmt"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Disk Fragmenter"

const free = -1

// DiskMap is the sequence of alternating file and free-space lengths.
type DiskMap []int

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[DiskMap](9, Title, Solver{})
}

func (Solver) Parse(input string) (DiskMap, error) {
	digits := strings.TrimSpace(input)
	if digits == "" {
		return nil, fmt.Errorf("empty disk map")
	}
	disk := make(DiskMap, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid character %q at offset %d", c, i)
		}
		disk[i] = int(c - '0')
	}
	return disk, nil
}

// PartOne moves individual blocks from the end into the leftmost gaps.
func (Solver) PartOne(disk DiskMap) (puzzle.Answer, error) {
	blocks := disk.blocks()
	left, right := 0, len(blocks)-1
	for {
		for left < right && blocks[left] != free {
			left++
		}
		for left < right && blocks[right] == free {
			right--
		}
		if left >= right {
			break
		}
		blocks[left], blocks[right] = blocks[right], free
	}
	return puzzle.Int(checksum(blocks)), nil
}

type span struct{ start, length int }

// PartTwo moves whole files, highest id first, into the leftmost gap that fits.
func (Solver) PartTwo(disk DiskMap) (puzzle.Answer, error) {
	var files, gaps []span
	pos := 0
	for i, length := range disk {
		if i%2 == 0 {
			files = append(files, span{pos, length})
		} else if length > 0 {
			gaps = append(gaps, span{pos, length})
		}
		pos += length
	}

	for id := len(files) - 1; id >= 0; id-- {
		file := &files[id]
		if file.length == 0 {
			continue
		}
		for g := range gaps {
			gap := &gaps[g]
			if gap.start >= file.start {
				break
			}
			if gap.length >= file.length {
				file.start = gap.start
				gap.start += file.length
				gap.length -= file.length
				break
			}
		}
	}

	total := 0
	for id, file := range files {
		for p := file.start; p < file.start+file.length; p++ {
			total += id * p
		}
	}
	return puzzle.Int(total), nil
}

func (d DiskMap) blocks() []int {
	var blocks []int
	for i, length := range d {
		id := free
		if i%2 == 0 {
			id = i / 2
		}
		for range length {
			blocks = append(blocks, id)
		}
	}
	return blocks
}

func checksum(blocks []int) int {
	total := 0
	for pos, id := range blocks {
		if id != free {
			total += pos * id
		}
	}
	return total
}

package component

import (
	"container/heap"
	"math"
)

// GridCell is a cell of a navigation grid.
type GridCell struct {
	X int
	Z int
}

var gridNeighbors = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// AStar finds a path on an 8-way grid. Diagonal steps may not cut blocked corners.
// isBlocked should return true for cells that cannot be traversed.
// maxNodes limits the number of processed nodes to avoid runaway searches.
func AStar(start, goal GridCell, width, height int, isBlocked func(x, z int) bool, maxNodes int) []GridCell {
	if width <= 0 || height <= 0 {
		return nil
	}
	inside := func(c GridCell) bool { return c.X >= 0 && c.Z >= 0 && c.X < width && c.Z < height }
	blocked := func(x, z int) bool { return isBlocked != nil && isBlocked(x, z) }
	if !inside(start) || !inside(goal) || blocked(goal.X, goal.Z) {
		return nil
	}
	if start == goal {
		return []GridCell{start}
	}

	index := func(c GridCell) int { return c.Z*width + c.X }
	startIdx := index(start)
	goalIdx := index(goal)

	open := &cellHeap{}
	heap.Push(open, cellEntry{idx: startIdx, f: octile(start, goal)})

	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{startIdx: 0}
	closed := make(map[int]bool, 128)

	for iterations := 0; open.Len() > 0 && iterations < maxNodes; iterations++ {
		currentIdx := heap.Pop(open).(cellEntry).idx
		if closed[currentIdx] {
			continue
		}
		closed[currentIdx] = true
		if currentIdx == goalIdx {
			return reconstructPath(cameFrom, currentIdx, startIdx, width)
		}

		current := GridCell{X: currentIdx % width, Z: currentIdx / width}
		for _, d := range gridNeighbors {
			next := GridCell{X: current.X + d[0], Z: current.Z + d[1]}
			if !inside(next) || blocked(next.X, next.Z) {
				continue
			}
			step := 1.0
			if d[0] != 0 && d[1] != 0 {
				if blocked(current.X+d[0], current.Z) || blocked(current.X, current.Z+d[1]) {
					continue
				}
				step = math.Sqrt2
			}
			nextIdx := index(next)
			if closed[nextIdx] {
				continue
			}
			tentative := gScore[currentIdx] + step
			if prev, seen := gScore[nextIdx]; seen && tentative >= prev {
				continue
			}
			cameFrom[nextIdx] = currentIdx
			gScore[nextIdx] = tentative
			heap.Push(open, cellEntry{idx: nextIdx, f: tentative + octile(next, goal)})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[int]int, currentIdx, startIdx, width int) []GridCell {
	path := make([]GridCell, 0, 32)
	for {
		path = append(path, GridCell{X: currentIdx % width, Z: currentIdx / width})
		if currentIdx == startIdx {
			break
		}
		prev, ok := cameFrom[currentIdx]
		if !ok {
			return nil
		}
		currentIdx = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func octile(a, b GridCell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dz := math.Abs(float64(a.Z - b.Z))
	return dx + dz + (math.Sqrt2-2)*math.Min(dx, dz)
}

type cellEntry struct {
	idx int
	f   float64
}

type cellHeap []cellEntry

func (h cellHeap) Len() int           { return len(h) }
func (h cellHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h cellHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x any)        { *h = append(*h, x.(cellEntry)) }
func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

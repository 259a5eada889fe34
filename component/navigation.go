package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/common"
)

// NavGrid is a ground-plane occupancy grid used for agent pathing.
type NavGrid struct {
	minX, minZ float64
	cell       float64
	width      int
	height     int
	blocked    []bool

	// MaxSearch caps A* expansions per query.
	MaxSearch int
}

// NewNavGrid covers [minX,maxX]x[minZ,maxZ] with square cells of cellSize.
func NewNavGrid(minX, minZ, maxX, maxZ, cellSize float64) *NavGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := int(math.Ceil((maxX - minX) / cellSize))
	h := int(math.Ceil((maxZ - minZ) / cellSize))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &NavGrid{
		minX:      minX,
		minZ:      minZ,
		cell:      cellSize,
		width:     w,
		height:    h,
		blocked:   make([]bool, w*h),
		MaxSearch: w * h,
	}
}

func (g *NavGrid) Size() (width, height int) { return g.width, g.height }
func (g *NavGrid) CellSize() float64         { return g.cell }

// BlockRect marks every cell whose centre lies inside the rectangle grown by inflate.
func (g *NavGrid) BlockRect(minX, minZ, maxX, maxZ, inflate float64) {
	minX -= inflate
	minZ -= inflate
	maxX += inflate
	maxZ += inflate
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			c := g.CellCenter(GridCell{X: x, Z: z})
			if c.X() >= minX && c.X() <= maxX && c.Z() >= minZ && c.Z() <= maxZ {
				g.blocked[z*g.width+x] = true
			}
		}
	}
}

// CellAt returns the cell containing p.
func (g *NavGrid) CellAt(p mgl64.Vec3) (GridCell, bool) {
	x := int(math.Floor((p.X() - g.minX) / g.cell))
	z := int(math.Floor((p.Z() - g.minZ) / g.cell))
	if x < 0 || z < 0 || x >= g.width || z >= g.height {
		return GridCell{}, false
	}
	return GridCell{X: x, Z: z}, true
}

func (g *NavGrid) CellCenter(c GridCell) mgl64.Vec3 {
	return mgl64.Vec3{g.minX + (float64(c.X)+0.5)*g.cell, 0, g.minZ + (float64(c.Z)+0.5)*g.cell}
}

func (g *NavGrid) Blocked(c GridCell) bool {
	if c.X < 0 || c.Z < 0 || c.X >= g.width || c.Z >= g.height {
		return true
	}
	return g.blocked[c.Z*g.width+c.X]
}

// Walkable reports whether p lies on an open cell.
func (g *NavGrid) Walkable(p mgl64.Vec3) bool {
	c, ok := g.CellAt(p)
	return ok && !g.Blocked(c)
}

// FindReachablePoint returns the open cell centre nearest to center within radius.
func (g *NavGrid) FindReachablePoint(center mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	if g.Walkable(center) {
		return common.Flat(center), true
	}
	span := int(math.Ceil(radius/g.cell)) + 1
	cx := int(math.Floor((center.X() - g.minX) / g.cell))
	cz := int(math.Floor((center.Z() - g.minZ) / g.cell))

	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for z := cz - span; z <= cz+span; z++ {
		for x := cx - span; x <= cx+span; x++ {
			cell := GridCell{X: x, Z: z}
			if g.Blocked(cell) {
				continue
			}
			p := g.CellCenter(cell)
			d := common.PlanarDistance(center, p)
			if d <= radius && d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// FindPath returns waypoints from the cell after from's cell up to to.
func (g *NavGrid) FindPath(from, to mgl64.Vec3) []mgl64.Vec3 {
	start, ok := g.CellAt(from)
	if !ok {
		return nil
	}
	goal, ok := g.CellAt(to)
	if !ok {
		return nil
	}
	cells := AStar(start, goal, g.width, g.height, func(x, z int) bool {
		if x == start.X && z == start.Z {
			return false
		}
		return g.blocked[z*g.width+x]
	}, g.MaxSearch)
	if len(cells) == 0 {
		return nil
	}

	out := make([]mgl64.Vec3, 0, len(cells))
	for _, c := range cells[1:] {
		out = append(out, g.CellCenter(c))
	}
	end := common.Flat(to)
	if len(out) == 0 {
		return []mgl64.Vec3{end}
	}
	out[len(out)-1] = end
	return out
}

// NavAgent walks a Pose along NavGrid paths.
type NavAgent struct {
	grid    *NavGrid
	pose    *Pose
	speed   float64
	stopped bool
	path    []mgl64.Vec3
	goal    GridCell
	hasGoal bool

	// TurnRate scales how quickly the agent turns toward its heading.
	TurnRate float64
}

func NewNavAgent(grid *NavGrid, pose *Pose) *NavAgent {
	return &NavAgent{grid: grid, pose: pose, TurnRate: 10}
}

func (a *NavAgent) FindReachablePoint(center mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	if a.grid == nil {
		return mgl64.Vec3{}, false
	}
	return a.grid.FindReachablePoint(center, radius)
}

// SetDestination plans a path to point. Paths are only re-planned when the goal cell changes.
func (a *NavAgent) SetDestination(point mgl64.Vec3) bool {
	if a.grid == nil || a.pose == nil {
		return false
	}
	goal, ok := a.grid.CellAt(point)
	if !ok {
		a.clear()
		return false
	}
	if a.hasGoal && goal == a.goal && len(a.path) > 0 {
		a.path[len(a.path)-1] = common.Flat(point)
		return true
	}
	path := a.grid.FindPath(a.pose.Position, point)
	if path == nil {
		a.clear()
		return false
	}
	a.path = path
	a.goal = goal
	a.hasGoal = true
	return true
}

// RemainingDistance is the length of the rest of the path, zero without one.
func (a *NavAgent) RemainingDistance() float64 {
	if a.pose == nil || len(a.path) == 0 {
		return 0
	}
	total := common.PlanarDistance(a.pose.Position, a.path[0])
	for i := 1; i < len(a.path); i++ {
		total += common.PlanarDistance(a.path[i-1], a.path[i])
	}
	return total
}

func (a *NavAgent) SetSpeed(speed float64) { a.speed = speed }
func (a *NavAgent) Speed() float64         { return a.speed }
func (a *NavAgent) Stop()                  { a.stopped = true }
func (a *NavAgent) Resume()                { a.stopped = false }
func (a *NavAgent) Stopped() bool          { return a.stopped }

// Path returns the remaining waypoints.
func (a *NavAgent) Path() []mgl64.Vec3 { return a.path }

// Advance moves the pose along the path for dt seconds and turns it toward its heading.
func (a *NavAgent) Advance(dt float64) {
	if a.stopped || a.pose == nil || len(a.path) == 0 || a.speed <= 0 {
		return
	}
	budget := a.speed * dt
	var heading mgl64.Vec3
	for budget > 0 && len(a.path) > 0 {
		next := a.path[0]
		next = mgl64.Vec3{next.X(), a.pose.Position.Y(), next.Z()}
		delta := next.Sub(a.pose.Position)
		d := delta.Len()
		if d > 0 {
			heading = delta
		}
		if d <= budget {
			a.pose.Position = next
			a.path = a.path[1:]
			budget -= d
			continue
		}
		a.pose.Position = a.pose.Position.Add(delta.Mul(budget / d))
		budget = 0
	}
	if heading.Len() > 0 {
		if a.pose.Rotation.Len() == 0 {
			a.pose.Rotation = mgl64.QuatIdent()
		}
		a.pose.Rotation = common.Slerp(a.pose.Rotation, common.LookRotation(common.Flat(heading)), dt*a.TurnRate)
	}
}

func (a *NavAgent) clear() {
	a.path = nil
	a.hasGoal = false
}

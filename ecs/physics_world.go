package ecs

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs/component"
)

const (
	// minHorizontal is the shortest ground-plane projection a ray may have. Steeper rays never hit.
	minHorizontal = 1e-6
	// reindexStep is the step used to refresh the index. Bodies carry no velocity, so nothing integrates.
	reindexStep = 1.0 / 60
)

// PhysicsWorld owns the Chipmunk space used for ray queries.
//
// The space is the ground plane: Chipmunk X is world X and Chipmunk Y is world Z.
// Every shape carries a vertical extent that is checked at the ray's entry point.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*physicsBody
	shapes map[*cp.Shape]*shapeInfo
}

type physicsBody struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
	baseY  float64
}

type shapeInfo struct {
	owner      Entity
	minY, maxY float64
	body       *physicsBody
}

// NewPhysicsWorld creates an empty space without gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*physicsBody),
		shapes: make(map[*cp.Shape]*shapeInfo),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Register adds owner's collider at pos. Static colliders are baked in world space.
func (pw *PhysicsWorld) Register(owner Entity, pos mgl64.Vec3, c component.Collider) {
	if pw == nil || !owner.Valid() || len(c.Shapes) == 0 {
		return
	}
	pw.Unregister(owner)

	group := uint(owner)
	if c.Group != 0 {
		group = uint(c.Group)
	}
	layer := uint(c.Layer)
	if layer == 0 {
		layer = uint(core.LayerObstacle)
	}
	filter := cp.NewShapeFilter(group, layer, cp.ALL_CATEGORIES)

	pb := &physicsBody{static: c.Static, baseY: pos.Y()}
	if c.Static {
		pb.body = pw.space.StaticBody
	} else {
		pb.body = cp.NewKinematicBody()
		pb.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
		pw.space.AddBody(pb.body)
	}

	for _, s := range c.Shapes {
		origin := s.Offset
		if c.Static {
			origin = origin.Add(pos)
		}
		var shape *cp.Shape
		if s.Radius > 0 {
			shape = cp.NewCircle(pb.body, s.Radius, cp.Vector{X: origin.X(), Y: origin.Z()})
		} else {
			bb := cp.BB{L: origin.X() - s.HalfX, B: origin.Z() - s.HalfZ, R: origin.X() + s.HalfX, T: origin.Z() + s.HalfZ}
			shape = cp.NewBox2(pb.body, bb, 0)
		}
		shape.SetFilter(filter)
		shape.SetSensor(true)
		pw.space.AddShape(shape)

		minY := s.Offset.Y()
		if c.Static {
			minY += pos.Y()
		}
		pw.shapes[shape] = &shapeInfo{owner: owner, minY: minY, maxY: minY + s.Height, body: pb}
		pb.shapes = append(pb.shapes, shape)
	}
	pw.bodies[owner] = pb
}

// Registered reports whether owner has shapes in the space.
func (pw *PhysicsWorld) Registered(owner Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[owner]
	return ok
}

// Owners lists every registered entity.
func (pw *PhysicsWorld) Owners() []Entity {
	if pw == nil {
		return nil
	}
	out := make([]Entity, 0, len(pw.bodies))
	for e := range pw.bodies {
		out = append(out, e)
	}
	return out
}

// SetPosition moves a dynamic collider. Static colliders ignore it.
// Queries see the new position after the next Reindex.
func (pw *PhysicsWorld) SetPosition(owner Entity, pos mgl64.Vec3) {
	if pw == nil {
		return
	}
	pb, ok := pw.bodies[owner]
	if !ok || pb.static {
		return
	}
	pb.baseY = pos.Y()
	pb.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
}

// Unregister removes owner's shapes and body.
func (pw *PhysicsWorld) Unregister(owner Entity) {
	if pw == nil {
		return
	}
	pb, ok := pw.bodies[owner]
	if !ok {
		return
	}
	for _, shape := range pb.shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, shape)
	}
	if !pb.static {
		pw.space.RemoveBody(pb.body)
	}
	delete(pw.bodies, owner)
}

// Reindex refreshes the cached bounds of every moved collider.
func (pw *PhysicsWorld) Reindex() {
	if pw == nil {
		return
	}
	pw.space.Step(reindexStep)
}

type segmentHit struct {
	shape  *cp.Shape
	point  cp.Vector
	normal cp.Vector
	alpha  float64
}

// Raycast implements component.Raycaster. The surface of a hit is the owning entity.
func (pw *PhysicsWorld) Raycast(ray core.Ray) (core.RayHit, bool) {
	if pw == nil || ray.MaxDistance <= 0 {
		return core.RayHit{}, false
	}
	dir := ray.Direction
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	} else {
		return core.RayHit{}, false
	}
	end := ray.Origin.Add(dir.Mul(ray.MaxDistance))
	if math.Hypot(end.X()-ray.Origin.X(), end.Z()-ray.Origin.Z()) < minHorizontal {
		return core.RayHit{}, false
	}

	filter := cp.NewShapeFilter(uint(ray.Ignore), cp.ALL_CATEGORIES, uint(ray.Mask))

	var hits []segmentHit
	pw.space.SegmentQuery(
		cp.Vector{X: ray.Origin.X(), Y: ray.Origin.Z()},
		cp.Vector{X: end.X(), Y: end.Z()},
		0,
		filter,
		func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
			hits = append(hits, segmentHit{shape: shape, point: point, normal: normal, alpha: alpha})
		},
		nil,
	)
	sort.Slice(hits, func(i, j int) bool { return hits[i].alpha < hits[j].alpha })

	for _, h := range hits {
		info, ok := pw.shapes[h.shape]
		if !ok {
			continue
		}
		y := ray.Origin.Y() + dir.Y()*ray.MaxDistance*h.alpha
		minY, maxY := info.minY, info.maxY
		if !info.body.static {
			minY += info.body.baseY
			maxY += info.body.baseY
		}
		if y < minY || y > maxY {
			continue
		}
		return core.RayHit{
			Point:    mgl64.Vec3{h.point.X, y, h.point.Y},
			Normal:   mgl64.Vec3{h.normal.X, 0, h.normal.Y},
			Distance: ray.MaxDistance * h.alpha,
			Surface:  core.SurfaceID(info.owner),
		}, true
	}
	return core.RayHit{}, false
}

package component_test

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/component"
)

// scriptedRaycaster returns hit for every query, or nothing when hit is nil.
type scriptedRaycaster struct {
	hit   *component.RayHit
	rays  []component.Ray
	block func(ray component.Ray) bool
}

func (r *scriptedRaycaster) Raycast(ray component.Ray) (component.RayHit, bool) {
	r.rays = append(r.rays, ray)
	if r.block != nil {
		if r.block(ray) {
			return component.RayHit{Point: ray.Origin.Add(ray.Direction.Mul(ray.MaxDistance / 2)), Distance: ray.MaxDistance / 2, Surface: 99}, true
		}
		return component.RayHit{}, false
	}
	if r.hit == nil {
		return component.RayHit{}, false
	}
	return *r.hit, true
}

// fakeNavigator teleports nowhere; it only records requests.
type fakeNavigator struct {
	destinations []mgl64.Vec3
	remaining    float64
	speed        float64
	stopped      bool
	unreachable  bool
}

func (n *fakeNavigator) FindReachablePoint(center mgl64.Vec3, _ float64) (mgl64.Vec3, bool) {
	if n.unreachable {
		return mgl64.Vec3{}, false
	}
	return center, true
}

func (n *fakeNavigator) SetDestination(p mgl64.Vec3) bool {
	n.destinations = append(n.destinations, p)
	n.remaining = 5
	return true
}

func (n *fakeNavigator) RemainingDistance() float64 { return n.remaining }
func (n *fakeNavigator) SetSpeed(speed float64)     { n.speed = speed }
func (n *fakeNavigator) Stop()                      { n.stopped = true }
func (n *fakeNavigator) Resume()                    { n.stopped = false }

type countingTrigger struct {
	targets []mgl64.Vec3
}

func (t *countingTrigger) Attack(target mgl64.Vec3) bool {
	t.targets = append(t.targets, target)
	return true
}

func surfaces(m map[component.SurfaceID]component.Surface) component.SurfaceLookup {
	return component.SurfaceLookupFunc(func(id component.SurfaceID) (component.Surface, bool) {
		s, ok := m[id]
		return s, ok
	})
}

func facingZ(pos mgl64.Vec3) *component.Pose {
	p := component.NewPose(pos, 0)
	return &p
}

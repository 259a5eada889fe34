package component

// Target is the legacy shooting-gallery target: a hit counter that destroys itself at zero.
// It ignores teams and invulnerability.
type Target struct {
	Hits   int
	Points int

	destroyed bool

	OnDestroyed func(points int)
}

// NewTarget creates a target with hits hit points worth points.
func NewTarget(hits, points int) *Target {
	if hits <= 0 {
		hits = 1
	}
	return &Target{Hits: hits, Points: points}
}

// Hit decrements the counter and reports whether the target was destroyed by this hit.
func (t *Target) Hit() bool {
	if t == nil || t.destroyed {
		return false
	}
	t.Hits--
	if t.Hits > 0 {
		return false
	}
	t.Hits = 0
	t.destroyed = true
	if t.OnDestroyed != nil {
		t.OnDestroyed(t.Points)
	}
	return true
}

func (t *Target) Destroyed() bool {
	return t != nil && t.destroyed
}

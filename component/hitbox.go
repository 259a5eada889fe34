package component

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRegion = errors.New("component: unknown hitbox region")

// Region tags a sub-region of an actor's body.
type Region int

const (
	RegionBody Region = iota
	RegionHead
	RegionLimb
)

func (r Region) String() string {
	switch r {
	case RegionHead:
		return "head"
	case RegionLimb:
		return "limb"
	default:
		return "body"
	}
}

// ParseRegion maps a case-insensitive region name to a Region.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head":
		return RegionHead, nil
	case "", "body":
		return RegionBody, nil
	case "limb":
		return RegionLimb, nil
	default:
		return RegionBody, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
}

// DefaultMultiplier returns the damage multiplier of region.
func DefaultMultiplier(r Region) float64 {
	switch r {
	case RegionHead:
		return 2.0
	case RegionLimb:
		return 0.75
	default:
		return 1.0
	}
}

// Hitbox is a damage-scaling sub-region that forwards to its owner's Health.
// It does not own the Health.
type Hitbox struct {
	Region     Region
	Multiplier float64
	Owner      *Health
}

// NewHitbox creates a hitbox with the region's default multiplier.
func NewHitbox(region Region, owner *Health) *Hitbox {
	return &Hitbox{Region: region, Multiplier: DefaultMultiplier(region), Owner: owner}
}

// Scale returns base multiplied by the hitbox multiplier.
func (h *Hitbox) Scale(base float64) float64 {
	if h == nil {
		return base
	}
	return base * h.Multiplier
}

// TakeDamage scales base and forwards it to the owner.
func (h *Hitbox) TakeDamage(base float64, attacker Team) (float64, bool) {
	if h == nil || h.Owner == nil {
		return 0, false
	}
	final := h.Scale(base)
	return final, h.Owner.TakeDamage(final, attacker)
}

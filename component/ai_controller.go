package component

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/milk9111/vrarena/common"
)

// AIState is a behavior state of an AIController.
type AIState int

const (
	AIIdle AIState = iota
	AIPatrol
	AIChase
	AIAttack
	AIDead
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	case AIDead:
		return "dead"
	default:
		return "idle"
	}
}

func ParseAIState(s string) (AIState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return AIIdle, nil
	case "", "patrol":
		return AIPatrol, nil
	case "chase":
		return AIChase, nil
	case "attack":
		return AIAttack, nil
	case "dead":
		return AIDead, nil
	default:
		return AIPatrol, fmt.Errorf("component: unknown ai state %q", s)
	}
}

// AIConfig holds controller tuning. Distances are metres, times seconds.
type AIConfig struct {
	StartingState     AIState
	Perception        Perception
	AttackRange       float64
	PatrolRadius      float64
	PatrolWaitTime    float64
	PatrolSpeed       float64
	ChaseSpeed        float64
	AttackCooldown    float64
	RotationSpeed     float64
	DeathRemovalDelay float64
	ArrivalTolerance  float64
}

func DefaultAIConfig() AIConfig {
	return AIConfig{
		StartingState:     AIPatrol,
		Perception:        DefaultPerception(),
		AttackRange:       10,
		PatrolRadius:      10,
		PatrolWaitTime:    2,
		PatrolSpeed:       2,
		ChaseSpeed:        3.5,
		AttackCooldown:    1,
		RotationSpeed:     5,
		DeathRemovalDelay: 5,
		ArrivalTolerance:  0.5,
	}
}

// TargetProvider reports where the agent's target currently is.
type TargetProvider interface {
	TargetPosition() (mgl64.Vec3, bool)
}

// TargetFunc adapts a function to TargetProvider.
type TargetFunc func() (mgl64.Vec3, bool)

func (f TargetFunc) TargetPosition() (mgl64.Vec3, bool) { return f() }

// AttackTrigger fires at a target position.
type AttackTrigger interface {
	Attack(target mgl64.Vec3) bool
}

// AIDeps are the collaborators of an AIController. Pose is required.
type AIDeps struct {
	Pose      *Pose
	Health    *Health
	Navigator Navigator
	Raycaster Raycaster
	Target    TargetProvider
	Weapon    AttackTrigger
	// Active gates the whole controller, typically on the match being in play.
	Active func() bool
	Rand   *rand.Rand
	Logger *zap.Logger
	// Group is the collider group line-of-sight rays ignore.
	Group uint64
}

// AIController perceives its target each tick and runs the Idle/Patrol/Chase/Attack/Dead machine.
type AIController struct {
	cfg   AIConfig
	deps  AIDeps
	log   *zap.Logger
	spawn mgl64.Vec3

	state       AIState
	canSee      bool
	distance    float64
	waiting     bool
	waitLeft    float64
	attackLeft  float64
	removalLeft float64
	attacks     int

	unsubscribe func()
	warned      map[string]bool

	OnStateChanged func(from, to AIState)
}

// NewAIController creates a controller in cfg.StartingState. The spawn point is the pose position.
func NewAIController(cfg AIConfig, deps AIDeps) *AIController {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Rand == nil {
		deps.Rand = common.NewRand(0)
	}
	c := &AIController{
		cfg:    cfg,
		deps:   deps,
		log:    log,
		state:  cfg.StartingState,
		warned: map[string]bool{},
	}
	if deps.Pose != nil {
		c.spawn = deps.Pose.Position
	}
	if deps.Health != nil {
		c.unsubscribe = deps.Health.Subscribe(HealthListener{OnDeath: func() { c.changeState(AIDead) }})
	}
	c.enter(c.state)
	return c
}

// Close detaches the controller from its health notifications.
func (c *AIController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *AIController) Config() AIConfig { return c.cfg }

// SetConfig replaces tuning without changing the current state.
func (c *AIController) SetConfig(cfg AIConfig) { c.cfg = cfg }

func (c *AIController) CurrentState() AIState { return c.state }
func (c *AIController) CanSeeTarget() bool    { return c.canSee }

// TargetDistance is the distance to the target measured on the last tick.
func (c *AIController) TargetDistance() float64 { return c.distance }
func (c *AIController) Spawn() mgl64.Vec3       { return c.spawn }
func (c *AIController) Attacks() int            { return c.attacks }

// TargetPosition asks the target provider where the target is now.
func (c *AIController) TargetPosition() (mgl64.Vec3, bool) {
	if c.deps.Target == nil {
		return mgl64.Vec3{}, false
	}
	return c.deps.Target.TargetPosition()
}

// ReadyForRemoval reports whether a dead agent's removal delay has elapsed.
func (c *AIController) ReadyForRemoval() bool {
	return c.state == AIDead && c.removalLeft <= 0
}

// ForceState transitions immediately. Dead is terminal and cannot be left this way.
func (c *AIController) ForceState(s AIState) {
	c.changeState(s)
}

// Tick perceives and makes at most one state transition.
func (c *AIController) Tick(dt float64) {
	if c.state == AIDead {
		if c.removalLeft > 0 {
			c.removalLeft -= dt
		}
		return
	}
	if c.deps.Active != nil && !c.deps.Active() {
		return
	}
	if c.deps.Pose == nil {
		c.warnOnce("pose", "ai: no pose assigned, controller idle")
		return
	}

	if c.attackLeft > 0 {
		c.attackLeft -= dt
	}

	target, hasTarget := c.perceive()

	switch c.state {
	case AIIdle:
		if c.canSee {
			c.changeState(AIChase)
		}
	case AIPatrol:
		if c.canSee {
			c.changeState(AIChase)
			return
		}
		c.patrol(dt)
	case AIChase:
		switch {
		case !hasTarget || c.distance > c.cfg.Perception.DetectionRange || !c.canSee:
			c.changeState(AIPatrol)
		case c.distance <= c.cfg.AttackRange:
			c.changeState(AIAttack)
		default:
			c.moveTo(target)
		}
	case AIAttack:
		if !hasTarget || c.distance > c.cfg.AttackRange || !c.canSee {
			c.changeState(AIChase)
			return
		}
		c.face(target, dt)
		if c.attackLeft <= 0 {
			c.attack(target)
		}
	}
}

func (c *AIController) perceive() (mgl64.Vec3, bool) {
	if c.deps.Target == nil {
		c.warnOnce("target", "ai: no target assigned")
		c.canSee = false
		return mgl64.Vec3{}, false
	}
	target, ok := c.deps.Target.TargetPosition()
	if !ok {
		c.canSee = false
		return mgl64.Vec3{}, false
	}
	c.distance = target.Sub(c.deps.Pose.Position).Len()
	c.canSee = c.cfg.Perception.CanSee(*c.deps.Pose, target, c.deps.Raycaster, c.deps.Group)
	return target, true
}

func (c *AIController) changeState(next AIState) {
	if next == c.state || c.state == AIDead {
		return
	}
	prev := c.state
	c.state = next
	c.log.Debug("ai: state change",
		zap.Uint64("entity", c.deps.Group),
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
	)
	c.enter(next)
	if c.OnStateChanged != nil {
		c.OnStateChanged(prev, next)
	}
}

func (c *AIController) enter(s AIState) {
	nav := c.deps.Navigator
	switch s {
	case AIIdle, AIAttack:
		if nav != nil {
			nav.Stop()
		}
	case AIPatrol:
		if nav != nil {
			nav.SetSpeed(c.cfg.PatrolSpeed)
			nav.Resume()
		}
		c.pickPatrolPoint()
	case AIChase:
		if nav != nil {
			nav.SetSpeed(c.cfg.ChaseSpeed)
			nav.Resume()
		}
		if c.deps.Target != nil {
			if target, ok := c.deps.Target.TargetPosition(); ok {
				c.moveTo(target)
			}
		}
	case AIDead:
		if nav != nil {
			nav.Stop()
		}
		c.canSee = false
		c.removalLeft = c.cfg.DeathRemovalDelay
	}
}

func (c *AIController) patrol(dt float64) {
	if c.deps.Navigator == nil {
		c.warnOnce("navigator", "ai: no navigator assigned, patrol skipped")
		return
	}
	if c.waiting {
		c.waitLeft -= dt
		if c.waitLeft <= 0 {
			c.pickPatrolPoint()
		}
		return
	}
	if c.deps.Navigator.RemainingDistance() <= c.cfg.ArrivalTolerance {
		c.waiting = true
		c.waitLeft = c.cfg.PatrolWaitTime
	}
}

func (c *AIController) pickPatrolPoint() {
	c.waiting = false
	c.waitLeft = 0
	nav := c.deps.Navigator
	if nav == nil {
		return
	}
	candidate := common.RandomInCircle(c.spawn, c.cfg.PatrolRadius, c.deps.Rand)
	point, ok := nav.FindReachablePoint(candidate, c.cfg.PatrolRadius)
	if !ok {
		return
	}
	nav.SetDestination(point)
}

func (c *AIController) moveTo(target mgl64.Vec3) {
	if c.deps.Navigator == nil {
		c.warnOnce("navigator", "ai: no navigator assigned, chase skipped")
		return
	}
	c.deps.Navigator.SetDestination(target)
}

// face turns toward target on the ground plane, smoothed by RotationSpeed.
func (c *AIController) face(target mgl64.Vec3, dt float64) {
	dir := common.Flat(target.Sub(c.deps.Pose.Position))
	if dir.Len() == 0 {
		return
	}
	look := common.LookRotation(dir)
	if c.deps.Pose.Rotation.Len() == 0 {
		c.deps.Pose.Rotation = mgl64.QuatIdent()
	}
	c.deps.Pose.Rotation = common.Slerp(c.deps.Pose.Rotation, look, dt*c.cfg.RotationSpeed)
}

func (c *AIController) attack(target mgl64.Vec3) {
	c.attackLeft = c.cfg.AttackCooldown
	if c.deps.Weapon == nil {
		c.warnOnce("weapon", "ai: no weapon attached, attack skipped")
		return
	}
	c.attacks++
	c.deps.Weapon.Attack(target)
}

func (c *AIController) warnOnce(key, msg string) {
	if c.warned[key] {
		return
	}
	c.warned[key] = true
	c.log.Warn(msg, zap.Uint64("entity", c.deps.Group))
}

package component

// RespawnConfig tunes the player death handler.
type RespawnConfig struct {
	Delay           float64
	AutoRespawn     bool
	SpawnProtection float64
}

func DefaultRespawnConfig() RespawnConfig {
	return RespawnConfig{Delay: 3, AutoRespawn: true, SpawnProtection: 1}
}

// Respawner revives an actor at its spawn pose some time after death.
type Respawner struct {
	cfg    RespawnConfig
	health *Health
	pose   *Pose
	spawn  Pose

	pending     bool
	left        float64
	deaths      int
	unsubscribe func()

	OnRespawn func()
}

func NewRespawner(cfg RespawnConfig, health *Health, pose *Pose, spawn Pose) *Respawner {
	r := &Respawner{cfg: cfg, health: health, pose: pose, spawn: spawn}
	if health != nil {
		r.unsubscribe = health.Subscribe(HealthListener{OnDeath: r.onDeath})
	}
	return r
}

func (r *Respawner) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

func (r *Respawner) Pending() bool { return r.pending }
func (r *Respawner) Deaths() int   { return r.deaths }

func (r *Respawner) onDeath() {
	r.deaths++
	r.pending = true
	r.left = r.cfg.Delay
}

// Tick counts down a pending respawn when AutoRespawn is on.
func (r *Respawner) Tick(dt float64) {
	if !r.pending || !r.cfg.AutoRespawn {
		return
	}
	r.left -= dt
	if r.left <= 0 {
		r.Respawn()
	}
}

// Respawn moves the actor to its spawn pose and revives it at full health.
func (r *Respawner) Respawn() {
	r.pending = false
	r.left = 0
	if r.pose != nil {
		*r.pose = r.spawn
	}
	if r.health != nil {
		r.health.Revive(0)
		if r.cfg.SpawnProtection > 0 {
			r.health.SetInvulnerable(r.cfg.SpawnProtection)
		}
	}
	if r.OnRespawn != nil {
		r.OnRespawn()
	}
}

package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

// Prefab remembers which prefab file an entity was built from.
type Prefab struct {
	Path string
}

var PrefabComponent = NewComponent[Prefab]()

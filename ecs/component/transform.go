package component

import core "github.com/milk9111/vrarena/component"

// Transform is the world pose of an entity.
type Transform = core.Pose

var TransformComponent = NewComponent[Transform]()

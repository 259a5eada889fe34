package component

import core "github.com/milk9111/vrarena/component"

var HealthComponent = NewComponent[core.Health]()

var RespawnerComponent = NewComponent[core.Respawner]()

package component

import core "github.com/milk9111/vrarena/component"

var AIComponent = NewComponent[core.AIController]()

var AIWeaponComponent = NewComponent[core.AIWeaponHandler]()

var NavAgentComponent = NewComponent[core.NavAgent]()

// AIScript attaches tengo lifecycle hooks to an AI controller.
type AIScript struct {
	Path string
}

var AIScriptComponent = NewComponent[AIScript]()

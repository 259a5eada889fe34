package component

import core "github.com/milk9111/vrarena/component"

var TargetComponent = NewComponent[core.Target]()

var TargetMotionComponent = NewComponent[core.TargetMotion]()

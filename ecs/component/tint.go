package component

import "image/color"

// Tint is the flat colour the debug view draws an entity with.
type Tint struct {
	Color color.Color
}

var TintComponent = NewComponent[Tint]()

// Package ui holds pieces shared by the popup components.
package ui

// Base tracks the cell area a component was given. Components embed it and
// treat a zero size as "not laid out yet".
type Base struct {
	width, height int
}

// SetSize records the area available to the component.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

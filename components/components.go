// Package components defines ECS components for the game.
package components

import "image/color"

// Kind identifies what an entity represents.
type Kind uint8

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Color returns the proxy color for a Kind.
func (k Kind) Color() color.RGBA {
	if k == KindFood {
		return color.RGBA{R: 0, G: 228, B: 48, A: 255}
	}
	return color.RGBA{R: 230, G: 41, B: 55, A: 255}
}

// Segments holds the head's tracked body length.
// Count is the single source of truth for how many segments exist or are pending.
type Segments struct {
	Count uint32
}

// BodySegment marks a trailing chain entity.
// Index 0 follows the head most closely.
type BodySegment struct {
	Index int
}

// Food marks the consumable item.
type Food struct{}

package editor

import (
	"github.com/robertcorponoi/tldraw-rider/common"
)

// Kind identifies the tool a shape was created with. The set is closed;
// anything outside it is carried through the store untouched but gets no
// physics collider.
type Kind string

const (
	// KindDraw is a freeform stroke through an arbitrary point list.
	KindDraw Kind = "draw"
	// KindLine is a straight two-point line.
	KindLine Kind = "line"
	// KindRider is the physics-simulated rider sprite.
	KindRider Kind = "rider"
	// KindGeo is a plain geometric shape (box, ellipse, ...).
	KindGeo Kind = "geo"
	// KindText is a text label.
	KindText Kind = "text"
)

// Point is a position in shape-local space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pose is a shape's placement on the canvas. X and Y are the un-rotated
// top-left corner; Rotation is in radians and is always applied around the
// shape's visual center, which therefore stays fixed as Rotation changes.
type Pose struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Rotation float64 `yaml:"rotation,omitempty"`
}

// Center returns the pose's visual center.
func (p Pose) Center() (float64, float64) {
	return common.CenterFromTopLeft(p.X, p.Y, p.W, p.H, p.Rotation)
}

// Shape is an addressable drawable object on the canvas.
type Shape struct {
	ID     string  `yaml:"id"`
	Kind   Kind    `yaml:"kind"`
	Pose   Pose    `yaml:"pose"`
	Points []Point `yaml:"points,omitempty"`
	Color  string  `yaml:"color,omitempty"`
	// Debug marks internal diagnostic artifacts. Debug shapes never get
	// physics colliders and their deletion is invisible to observers of
	// the simulation.
	Debug bool `yaml:"debug,omitempty"`
}

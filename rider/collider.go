package rider

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/robertcorponoi/tldraw-rider/editor"
)

// Scale relates editor space to physics space: Scale editor units per
// physics unit.
const Scale = 100.0

// ErrUnsupportedKind reports a shape kind with no collider mapping. The
// shape is simply skipped; the simulation carries on without it.
var ErrUnsupportedKind = errors.New("rider: no collider mapping for shape kind")

// ColliderKind tags the physics primitive a shape maps to.
type ColliderKind int

const (
	// ColliderPolyline is an open chain of segments through a stroke's
	// points.
	ColliderPolyline ColliderKind = iota
	// ColliderSegment is a single line segment.
	ColliderSegment
)

// Collider describes a static physics collider in physics-space
// coordinates, ready to be attached to a space.
type Collider struct {
	Kind  ColliderKind
	Verts []cp.Vector // ColliderPolyline
	A, B  cp.Vector   // ColliderSegment

	Friction    float64
	Restitution float64
}

// ColliderForShape maps an editor shape to its collider description.
// Freeform strokes become grippy, bouncy polylines; straight lines become
// frictionless ice. Everything else is unsupported.
func ColliderForShape(s editor.Shape) (Collider, error) {
	switch s.Kind {
	case editor.KindDraw:
		if len(s.Points) == 0 {
			return Collider{}, fmt.Errorf("rider: draw shape %s has no points", s.ID)
		}
		verts := make([]cp.Vector, len(s.Points))
		for i, p := range s.Points {
			verts[i] = toPhysics(s.Pose.X+p.X, s.Pose.Y+p.Y)
		}
		return Collider{
			Kind:        ColliderPolyline,
			Verts:       verts,
			Friction:    0.5,
			Restitution: 1.0,
		}, nil

	case editor.KindLine:
		if len(s.Points) < 2 {
			return Collider{}, fmt.Errorf("rider: line shape %s needs two points", s.ID)
		}
		return Collider{
			Kind:        ColliderSegment,
			A:           toPhysics(s.Pose.X+s.Points[0].X, s.Pose.Y+s.Points[0].Y),
			B:           toPhysics(s.Pose.X+s.Points[1].X, s.Pose.Y+s.Points[1].Y),
			Friction:    0,
			Restitution: 0,
		}, nil

	default:
		return Collider{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, s.Kind)
	}
}

// attach adds the collider to the space's static body and returns the
// created shapes.
func (c Collider) attach(space *cp.Space) []*cp.Shape {
	const radius = 0.01 // segment half-thickness in physics units

	addSegment := func(a, b cp.Vector) *cp.Shape {
		sh := space.AddShape(cp.NewSegment(space.StaticBody, a, b, radius))
		sh.SetFriction(c.Friction)
		sh.SetElasticity(c.Restitution)
		return sh
	}

	var shapes []*cp.Shape
	switch c.Kind {
	case ColliderPolyline:
		for i := 0; i+1 < len(c.Verts); i++ {
			shapes = append(shapes, addSegment(c.Verts[i], c.Verts[i+1]))
		}
	case ColliderSegment:
		shapes = append(shapes, addSegment(c.A, c.B))
	}
	return shapes
}

func toPhysics(x, y float64) cp.Vector {
	return cp.Vector{X: x / Scale, Y: y / Scale}
}

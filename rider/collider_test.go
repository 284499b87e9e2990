package rider

import (
	"errors"
	"testing"

	"github.com/robertcorponoi/tldraw-rider/editor"
)

func TestColliderForShapeDraw(t *testing.T) {
	s := editor.Shape{
		ID:   "stroke",
		Kind: editor.KindDraw,
		Pose: editor.Pose{X: 100, Y: 200},
		Points: []editor.Point{
			{X: 0, Y: 0},
			{X: 50, Y: 10},
			{X: 120, Y: -5},
		},
	}

	c, err := ColliderForShape(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != ColliderPolyline {
		t.Fatalf("expected polyline, got %v", c.Kind)
	}
	if c.Friction != 0.5 || c.Restitution != 1.0 {
		t.Fatalf("expected friction 0.5 / restitution 1.0, got %v / %v", c.Friction, c.Restitution)
	}
	if len(c.Verts) != 3 {
		t.Fatalf("expected 3 verts, got %d", len(c.Verts))
	}
	// points shift by the shape position and scale down into physics space
	if c.Verts[1].X != 1.5 || c.Verts[1].Y != 2.1 {
		t.Fatalf("expected vert (1.5, 2.1), got (%v, %v)", c.Verts[1].X, c.Verts[1].Y)
	}
}

func TestColliderForShapeLine(t *testing.T) {
	s := editor.Shape{
		ID:     "line",
		Kind:   editor.KindLine,
		Pose:   editor.Pose{X: 50, Y: 50},
		Points: []editor.Point{{X: 0, Y: 0}, {X: 100, Y: 50}},
	}

	c, err := ColliderForShape(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != ColliderSegment {
		t.Fatalf("expected segment, got %v", c.Kind)
	}
	if c.Friction != 0 || c.Restitution != 0 {
		t.Fatalf("lines are ice: expected 0/0, got %v / %v", c.Friction, c.Restitution)
	}
	if c.A.X != 0.5 || c.A.Y != 0.5 || c.B.X != 1.5 || c.B.Y != 1.0 {
		t.Fatalf("unexpected endpoints: %v %v", c.A, c.B)
	}
}

func TestColliderForShapeUnsupported(t *testing.T) {
	for _, kind := range []editor.Kind{editor.KindGeo, editor.KindText, editor.KindRider, editor.Kind("arrow")} {
		t.Run(string(kind), func(t *testing.T) {
			_, err := ColliderForShape(editor.Shape{ID: "x", Kind: kind})
			if !errors.Is(err, ErrUnsupportedKind) {
				t.Fatalf("expected ErrUnsupportedKind, got %v", err)
			}
		})
	}
}

func TestColliderForShapeDegenerate(t *testing.T) {
	_, err := ColliderForShape(editor.Shape{ID: "empty", Kind: editor.KindDraw})
	if err == nil {
		t.Fatal("expected error for pointless stroke")
	}
	if errors.Is(err, ErrUnsupportedKind) {
		t.Fatal("degenerate draw shape is not an unsupported kind")
	}

	_, err = ColliderForShape(editor.Shape{
		ID:     "short",
		Kind:   editor.KindLine,
		Points: []editor.Point{{X: 0, Y: 0}},
	})
	if err == nil {
		t.Fatal("expected error for one-point line")
	}
}

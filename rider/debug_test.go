package rider

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/robertcorponoi/tldraw-rider/editor"
)

func TestDebugColorName(t *testing.T) {
	name, err := debugColorName(cp.FColor{R: 0.25, G: 0.5, B: 1.0, A: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "blue" {
		t.Fatalf("expected blue, got %q", name)
	}

	_, err = debugColorName(cp.FColor{R: 0.123, G: 0.456, B: 0.789, A: 1})
	if !errors.Is(err, ErrUnknownDebugColor) {
		t.Fatalf("expected ErrUnknownDebugColor, got %v", err)
	}
}

func TestDebugVisualsBuildAndReplace(t *testing.T) {
	store := editor.NewMemStore()
	store.Create(editor.Shape{
		Kind:   editor.KindLine,
		Pose:   editor.Pose{Y: 400},
		Points: []editor.Point{{X: 0, Y: 0}, {X: 300, Y: 0}},
	})
	rider := store.Create(newRiderShape())

	b, err := NewBridge(store, rider.ID, nil)
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}
	defer b.Close()

	v := NewDebugVisuals(store, b.Space())
	if err := v.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	var debugShapes []editor.Shape
	for _, s := range store.All() {
		if s.Debug {
			debugShapes = append(debugShapes, s)
		}
	}
	if len(debugShapes) == 0 {
		t.Fatal("expected debug line shapes for the space geometry")
	}
	for _, s := range debugShapes {
		if s.Kind != editor.KindLine {
			t.Fatalf("debug visuals must be lines, got %q", s.Kind)
		}
		found := false
		for _, name := range debugPalette {
			if s.Color == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("debug line color %q is not from the palette", s.Color)
		}
	}

	firstIDs := append([]string(nil), v.lines...)
	if err := v.Build(); err != nil {
		t.Fatalf("second build: %v", err)
	}
	for _, id := range firstIDs {
		if _, ok := store.Get(id); ok {
			t.Fatalf("stale debug line %s should have been replaced", id)
		}
	}

	v.Clear()
	for _, s := range store.All() {
		if s.Debug {
			t.Fatal("clear should remove all debug lines")
		}
	}
}

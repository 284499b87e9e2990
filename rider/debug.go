package rider

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/robertcorponoi/tldraw-rider/common"
	"github.com/robertcorponoi/tldraw-rider/editor"
)

// ErrUnknownDebugColor reports a physics debug color with no palette entry.
var ErrUnknownDebugColor = errors.New("rider: unknown debug color")

// debugPalette maps the colors the physics drawer emits to editor color
// names. Anything outside this table aborts the debug pass.
var debugPalette = map[string]string{
	"#4080FF": "blue",   // static shapes
	"#FF40FF": "violet", // dynamic shapes
	"#FFBF00": "orange", // sensors
	"#808080": "grey",   // constraints
	"#FF0000": "red",    // collision points
}

// DebugVisuals mirrors a physics space's debug geometry into short-lived
// line shapes on the canvas. Purely diagnostic: an error here never touches
// the simulation, it only leaves the previous frame's lines in place.
type DebugVisuals struct {
	store editor.Store
	space *cp.Space
	lines []string
}

// NewDebugVisuals creates the mirror for a space.
func NewDebugVisuals(store editor.Store, space *cp.Space) *DebugVisuals {
	return &DebugVisuals{store: store, space: space}
}

// Build replaces last frame's debug lines with the space's current debug
// geometry. If any emitted color is missing from the palette the pass is
// aborted before any shape is touched and the error returned.
func (v *DebugVisuals) Build() error {
	if v == nil || v.space == nil {
		return nil
	}

	collector := &segmentCollector{}
	cp.DrawSpace(v.space, collector)

	shapes := make([]editor.Shape, 0, len(collector.segments))
	for _, seg := range collector.segments {
		name, err := debugColorName(seg.color)
		if err != nil {
			return err
		}
		shapes = append(shapes, debugLineShape(seg.a, seg.b, name))
	}

	v.store.Delete(v.lines...)
	v.lines = v.lines[:0]
	for _, s := range shapes {
		created := v.store.Create(s)
		v.lines = append(v.lines, created.ID)
	}
	return nil
}

// Clear removes this component's debug lines from the canvas.
func (v *DebugVisuals) Clear() {
	if v == nil {
		return
	}
	v.store.Delete(v.lines...)
	v.lines = v.lines[:0]
}

func debugColorName(c cp.FColor) (string, error) {
	hex := common.NormalizedRGBToHex([3]float64{float64(c.R), float64(c.G), float64(c.B)})
	name, ok := debugPalette[hex]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDebugColor, hex)
	}
	return name, nil
}

// debugLineShape builds a Debug-flagged line shape spanning a and b, given
// in physics space.
func debugLineShape(a, b cp.Vector, color string) editor.Shape {
	ax, ay := a.X*Scale, a.Y*Scale
	bx, by := b.X*Scale, b.Y*Scale
	x := math.Min(ax, bx)
	y := math.Min(ay, by)
	return editor.Shape{
		Kind: editor.KindLine,
		Pose: editor.Pose{
			X: x,
			Y: y,
			W: math.Abs(bx - ax),
			H: math.Abs(by - ay),
		},
		Points: []editor.Point{
			{X: ax - x, Y: ay - y},
			{X: bx - x, Y: by - y},
		},
		Color: color,
		Debug: true,
	}
}

type debugSegment struct {
	a, b  cp.Vector
	color cp.FColor
}

// segmentCollector is a cp.Drawer that records everything as colored
// segments instead of rasterizing.
type segmentCollector struct {
	segments []debugSegment
}

const collectorCircleSegments = 16

func (d *segmentCollector) add(a, b cp.Vector, c cp.FColor) {
	d.segments = append(d.segments, debugSegment{a: a, b: b, color: c})
}

func (d *segmentCollector) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= collectorCircleSegments; i++ {
		t := float64(i) * (2 * math.Pi / collectorCircleSegments)
		cur := cp.Vector{X: pos.X + math.Cos(t)*radius, Y: pos.Y + math.Sin(t)*radius}
		d.add(prev, cur, fill)
		prev = cur
	}
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.add(pos, end, fill)
}

func (d *segmentCollector) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.add(a, b, fill)
}

func (d *segmentCollector) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.add(a, b, fill)
}

func (d *segmentCollector) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.add(verts[i], verts[(i+1)%count], fill)
	}
}

func (d *segmentCollector) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := size / 2
	if half <= 0 {
		half = 0.02
	}
	d.add(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.add(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *segmentCollector) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *segmentCollector) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.25, G: 0.5, B: 1.0, A: 1}
}

func (d *segmentCollector) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1.0, G: 0.75, B: 0, A: 1}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.25, G: 0.5, B: 1.0, A: 1}
	}
	return cp.FColor{R: 1.0, G: 0.25, B: 1.0, A: 1}
}

func (d *segmentCollector) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
}

func (d *segmentCollector) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0, B: 0, A: 1}
}

func (d *segmentCollector) Data() interface{} {
	return nil
}

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/robertcorponoi/tldraw-rider/editor"
)

var canvasBackground = color.RGBA{R: 248, G: 249, B: 250, A: 255}

// namedColors are the canvas colors debug visuals and tools pick from.
var namedColors = map[string]color.RGBA{
	"black":  {R: 30, G: 33, B: 37, A: 255},
	"blue":   {R: 64, G: 128, B: 255, A: 255},
	"violet": {R: 255, G: 64, B: 255, A: 255},
	"orange": {R: 255, G: 191, B: 0, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
	"red":    {R: 224, G: 49, B: 49, A: 255},
}

func (g *Game) handleCanvasInput(x, y int) {
	switch g.tool {
	case ToolBrush:
		g.updateBrush(x, y)
	case ToolLine:
		g.updateLine(x, y)
	case ToolRider:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.dropRider(x, y)
		}
	case ToolErase:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.eraseAt(x, y)
		}
	}
}

func (g *Game) updateBrush(x, y int) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p := editor.Point{X: float64(x), Y: float64(y)}
		if n := len(g.stroke); n == 0 || g.stroke[n-1] != p {
			g.stroke = append(g.stroke, p)
		}
		return
	}
	if len(g.stroke) >= 2 {
		g.store.Create(strokeShape(g.stroke))
	}
	g.stroke = nil
}

func (g *Game) updateLine(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.lineStart = &[2]int{x, y}
		return
	}
	if g.lineStart == nil || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	start := *g.lineStart
	g.lineStart = nil
	if start[0] == x && start[1] == y {
		return
	}
	pts := []editor.Point{
		{X: float64(start[0]), Y: float64(start[1])},
		{X: float64(x), Y: float64(y)},
	}
	g.store.Create(strokeShapeKind(pts, editor.KindLine, "blue"))
}

func (g *Game) dropRider(x, y int) {
	created := g.store.Create(editor.Shape{
		Kind: editor.KindRider,
		Pose: editor.Pose{
			X: float64(x) - riderW/2,
			Y: float64(y) - riderH/2,
			W: riderW,
			H: riderH,
		},
		Color: "red",
	})
	g.startBridge(created.ID)
}

func (g *Game) eraseAt(x, y int) {
	all := g.store.All()
	for i := len(all) - 1; i >= 0; i-- {
		s := all[i]
		if s.Debug {
			continue
		}
		if hitTest(s.Pose, float64(x), float64(y)) {
			g.store.Delete(s.ID)
			return
		}
	}
}

// hitTest checks the cursor against the pose's unrotated bounds, padded a
// little so thin lines stay clickable.
func hitTest(p editor.Pose, x, y float64) bool {
	const pad = 4.0
	return x >= p.X-pad && x <= p.X+p.W+pad && y >= p.Y-pad && y <= p.Y+p.H+pad
}

// strokeShape normalizes absolute canvas points into a draw shape anchored
// at the stroke's bounding box.
func strokeShape(points []editor.Point) editor.Shape {
	return strokeShapeKind(points, editor.KindDraw, "black")
}

func strokeShapeKind(points []editor.Point, kind editor.Kind, colorName string) editor.Shape {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	local := make([]editor.Point, len(points))
	for i, p := range points {
		local[i] = editor.Point{X: p.X - minX, Y: p.Y - minY}
	}
	return editor.Shape{
		Kind:   kind,
		Pose:   editor.Pose{X: minX, Y: minY, W: maxX - minX, H: maxY - minY},
		Points: local,
		Color:  colorName,
	}
}

func (g *Game) drawShape(screen *ebiten.Image, s editor.Shape) {
	c := shapeColor(s.Color)
	switch s.Kind {
	case editor.KindDraw, editor.KindLine:
		for i := 0; i+1 < len(s.Points); i++ {
			a := s.Points[i]
			b := s.Points[i+1]
			ebitenutil.DrawLine(screen, s.Pose.X+a.X, s.Pose.Y+a.Y, s.Pose.X+b.X, s.Pose.Y+b.Y, c)
		}
	case editor.KindRider:
		g.drawRider(screen, s, c)
	default:
		// unsupported kinds render as their unrotated outline
		ebitenutil.DrawRect(screen, s.Pose.X, s.Pose.Y, s.Pose.W, 1, c)
		ebitenutil.DrawRect(screen, s.Pose.X, s.Pose.Y+s.Pose.H, s.Pose.W, 1, c)
		ebitenutil.DrawRect(screen, s.Pose.X, s.Pose.Y, 1, s.Pose.H, c)
		ebitenutil.DrawRect(screen, s.Pose.X+s.Pose.W, s.Pose.Y, 1, s.Pose.H, c)
	}
}

func (g *Game) drawRider(screen *ebiten.Image, s editor.Shape, c color.RGBA) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Pose.W, s.Pose.H)
	op.GeoM.Translate(-s.Pose.W/2, -s.Pose.H/2)
	op.GeoM.Rotate(s.Pose.Rotation)
	cx, cy := s.Pose.Center()
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.pixel, op)
}

func (g *Game) drawPending(screen *ebiten.Image) {
	c := shapeColor("black")
	for i := 0; i+1 < len(g.stroke); i++ {
		a := g.stroke[i]
		b := g.stroke[i+1]
		ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, c)
	}
	if g.lineStart != nil {
		x, y := ebiten.CursorPosition()
		ebitenutil.DrawLine(screen, float64(g.lineStart[0]), float64(g.lineStart[1]), float64(x), float64(y), shapeColor("blue"))
	}
}

func shapeColor(name string) color.RGBA {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return parseHexColor(name)
}

// parseHexColor parses a color in the form #rrggbb. Returns a fallback
// color if the parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 30, 33, 37
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

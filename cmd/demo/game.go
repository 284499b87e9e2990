package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/robertcorponoi/tldraw-rider/editor"
	"github.com/robertcorponoi/tldraw-rider/rider"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// canvas input below this line, toolbar above
	toolbarHeight = 56

	riderW = 24
	riderH = 70
)

// Tool is the active canvas tool.
type Tool int

const (
	ToolBrush Tool = iota
	ToolLine
	ToolRider
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolLine:
		return "Line"
	case ToolRider:
		return "Rider"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Game is the demo host: a minimal canvas editor plus the rider bridge.
type Game struct {
	log       *zap.Logger
	store     *editor.MemStore
	scenePath string
	debug     bool

	ui      *ebitenui.UI
	toolBar *ToolBar
	tool    Tool

	bridge  *rider.Bridge
	visuals *rider.DebugVisuals

	watcher *Watcher

	// in-progress brush stroke, canvas coordinates
	stroke    []editor.Point
	lineStart *[2]int

	pixel *ebiten.Image
}

func NewGame(scenePath string, debug bool, log *zap.Logger) (*Game, error) {
	g := &Game{
		log:       log,
		store:     editor.NewMemStore(),
		scenePath: scenePath,
		debug:     debug,
	}

	if scenePath != "" {
		scene, err := editor.LoadScene(scenePath)
		if err != nil {
			return nil, err
		}
		scene.Populate(g.store)

		watcher, err := NewWatcher(scenePath)
		if err != nil {
			log.Warn("scene watching disabled", zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	g.ui, g.toolBar = buildUI(func(tool Tool) { g.tool = tool }, g.tool)
	return g, nil
}

// Close releases the bridge and the scene watcher.
func (g *Game) Close() {
	g.stopBridge()
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.ui.Update()
	g.drainWatcher()

	x, y := ebiten.CursorPosition()
	if y > toolbarHeight {
		g.handleCanvasInput(x, y)
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			g.toolBar.SetActive(Tool(i))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.saveScene()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if g.bridge != nil {
			g.store.Delete(g.bridge.RiderID())
		}
	}

	if g.bridge != nil {
		if !g.bridge.Step() {
			g.stopBridge()
		} else if g.visuals != nil {
			if err := g.visuals.Build(); err != nil {
				g.log.Error("debug visuals", zap.Error(err))
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(canvasBackground)

	for _, s := range g.store.All() {
		g.drawShape(screen, s)
	}
	g.drawPending(screen)

	g.ui.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  Tool: %s", ebiten.ActualFPS(), g.tool), 8, baseHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			// leave a running simulation alone; reload applies on the
			// next idle frame's event
			if g.bridge != nil {
				continue
			}
			scene, err := editor.LoadScene(name)
			if err != nil {
				g.log.Warn("scene reload failed", zap.Error(err))
				continue
			}
			scene.Populate(g.store)
			g.log.Info("scene reloaded", zap.String("path", name), zap.Int("shapes", len(scene.Shapes)))
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.log.Warn("scene watcher", zap.Error(err))
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			return
		}
	}
}

func (g *Game) saveScene() {
	if g.scenePath == "" {
		return
	}
	scene := &editor.Scene{}
	for _, s := range g.store.All() {
		if s.Debug {
			continue
		}
		scene.Shapes = append(scene.Shapes, s)
	}
	if err := editor.SaveScene(g.scenePath, scene); err != nil {
		g.log.Error("scene save failed", zap.Error(err))
		return
	}
	g.log.Info("scene saved", zap.String("path", g.scenePath), zap.Int("shapes", len(scene.Shapes)))
}

func (g *Game) startBridge(riderID string) {
	g.stopBridge()
	b, err := rider.NewBridge(g.store, riderID, g.log)
	if err != nil {
		g.log.Error("failed to start simulation", zap.Error(err))
		return
	}
	g.bridge = b
	if g.debug {
		g.visuals = rider.NewDebugVisuals(g.store, b.Space())
	}
}

func (g *Game) stopBridge() {
	if g.visuals != nil {
		g.visuals.Clear()
		g.visuals = nil
	}
	if g.bridge != nil {
		g.bridge.Close()
		g.bridge = nil
	}
}

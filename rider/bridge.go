package rider

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/robertcorponoi/tldraw-rider/common"
	"github.com/robertcorponoi/tldraw-rider/editor"
)

// Simulation constants. Gravity and the timestep are fixed; the rider is
// deliberately frictionless and non-bouncing so strokes alone decide how
// it slides.
const (
	gravityY = 9.81
	timeStep = 1.0 / 60.0

	riderMass = 1.0

	// rider collider extents and offset from the body origin, in physics
	// units
	riderColliderW       = 0.24
	riderColliderH       = 0.70
	riderColliderOffsetY = 0.05
	riderColliderRadius  = 0.05
)

// State is a bridge's lifecycle phase.
type State int

const (
	StateUninitialized State = iota
	StateSimulating
	StateDestroyed
)

// Bridge owns the physics world for one rider shape and synchronizes the
// simulated body's pose back into the shape store every frame. It is
// single-threaded: the frame loop that created it is the only caller of
// Step, and deletion callbacks run between frames.
type Bridge struct {
	store editor.Store
	log   *zap.Logger

	state   State
	riderID string

	space      *cp.Space
	body       *cp.Body
	riderShape *cp.Shape

	// static colliders by source shape id, removed when the shape is
	// deleted
	statics map[string][]*cp.Shape

	unsubscribe func()
}

// NewBridge builds the simulation world around the rider shape with the
// given id and starts simulating. Any other rider shape on the canvas is
// deleted first; the scene's remaining shapes get static colliders where a
// mapping exists. Shapes without a mapping are skipped with a warning.
//
// Static colliders are built once here; shapes added to the canvas while
// the bridge is alive do not collide.
func NewBridge(store editor.Store, riderID string, log *zap.Logger) (*Bridge, error) {
	if log == nil {
		log = zap.NewNop()
	}

	riderShape, ok := store.Get(riderID)
	if !ok {
		return nil, fmt.Errorf("rider: shape %s not found", riderID)
	}
	if riderShape.Kind != editor.KindRider {
		return nil, fmt.Errorf("rider: shape %s is %q, not a rider", riderID, riderShape.Kind)
	}

	// only one rider may be simulated at a time
	var stale []string
	for _, s := range store.All() {
		if s.Kind == editor.KindRider && s.ID != riderID {
			stale = append(stale, s.ID)
		}
	}
	if len(stale) > 0 {
		log.Info("removing previous riders", zap.Int("count", len(stale)))
		store.Delete(stale...)
	}

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})

	b := &Bridge{
		store:   store,
		log:     log,
		riderID: riderID,
		space:   space,
		statics: make(map[string][]*cp.Shape),
	}

	cx, cy := riderShape.Pose.Center()
	body := space.AddBody(cp.NewBody(riderMass, cp.MomentForBox(riderMass, riderColliderW, riderColliderH)))
	body.SetPosition(cp.Vector{X: cx / Scale, Y: cy / Scale})
	body.SetAngle(riderShape.Pose.Rotation)
	b.body = body

	bb := cp.BB{
		L: -riderColliderW / 2,
		B: riderColliderOffsetY - riderColliderH/2,
		R: riderColliderW / 2,
		T: riderColliderOffsetY + riderColliderH/2,
	}
	shape := space.AddShape(cp.NewBox2(body, bb, riderColliderRadius))
	shape.SetFriction(0)
	shape.SetElasticity(0)
	b.riderShape = shape

	for _, s := range store.All() {
		if s.ID == riderID || s.Debug {
			continue
		}
		c, err := ColliderForShape(s)
		if err != nil {
			if errors.Is(err, ErrUnsupportedKind) {
				log.Warn("shape has no collider mapping", zap.String("id", s.ID), zap.String("kind", string(s.Kind)))
			} else {
				log.Warn("skipping shape", zap.String("id", s.ID), zap.Error(err))
			}
			continue
		}
		b.statics[s.ID] = c.attach(space)
	}

	b.unsubscribe = store.Subscribe(b)
	b.state = StateSimulating
	return b, nil
}

// State returns the bridge's lifecycle phase.
func (b *Bridge) State() State {
	return b.state
}

// Space exposes the physics space for debug visualization.
func (b *Bridge) Space() *cp.Space {
	if b == nil {
		return nil
	}
	return b.space
}

// RiderID returns the id of the simulated rider shape.
func (b *Bridge) RiderID() string {
	return b.riderID
}

// Step advances the simulation one fixed timestep and writes the body's
// pose back to the rider shape. It reports whether the frame loop should
// schedule another step. A rider that has vanished from the store ends the
// loop silently.
func (b *Bridge) Step() bool {
	if b == nil || b.state != StateSimulating {
		return false
	}
	s, ok := b.store.Get(b.riderID)
	if !ok {
		return false
	}

	b.space.Step(timeStep)

	pos := b.body.Position()

	// Re-anchor at the current editor rotation so the visual center lands
	// exactly on the simulated centroid, then apply the rotation change as
	// a relative, center-preserving rotation. Writing the rotation field
	// directly would rotate around the anchor and drag the center along.
	pose := s.Pose
	pose.X, pose.Y = common.RotatedTopLeft(pos.X*Scale, pos.Y*Scale, pose.W, pose.H, pose.Rotation)
	b.store.SetPose(b.riderID, pose)

	if delta := common.RoundTo(b.body.Angle(), 1) - pose.Rotation; delta != 0 {
		b.store.RotateAroundCenter(b.riderID, delta)
	}
	return true
}

// ShapeDeleted reacts to a shape's removal from the store. Deleting the
// rider tears down its body and collider and ends the simulation; deleting
// a collidable shape removes its static collider. Safe to call repeatedly
// for the same shape.
func (b *Bridge) ShapeDeleted(s editor.Shape) {
	if b == nil {
		return
	}
	if s.ID == b.riderID {
		b.destroyRider()
		return
	}
	if s.Debug {
		return
	}
	shapes, ok := b.statics[s.ID]
	if !ok {
		return
	}
	delete(b.statics, s.ID)
	for _, sh := range shapes {
		b.space.RemoveShape(sh)
	}
}

// Close stops the simulation, unsubscribes from the store and releases the
// physics resources. Idempotent.
func (b *Bridge) Close() {
	if b == nil {
		return
	}
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.destroyRider()
	b.statics = make(map[string][]*cp.Shape)
}

func (b *Bridge) destroyRider() {
	if b.riderShape != nil {
		b.space.RemoveShape(b.riderShape)
		b.riderShape = nil
	}
	if b.body != nil {
		b.space.RemoveBody(b.body)
		b.body = nil
	}
	b.state = StateDestroyed
}

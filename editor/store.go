package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/robertcorponoi/tldraw-rider/common"
)

// Store is the slice of the host editor's shape store the rider extension
// needs: lookup, enumeration, pose updates, deletion and a post-deletion
// subscription.
type Store interface {
	// Get returns the shape with the given id, if it exists.
	Get(id string) (Shape, bool)
	// All returns every shape on the canvas in creation order.
	All() []Shape
	// Create adds a shape, assigning an id when none is set, and returns
	// the stored shape.
	Create(s Shape) Shape
	// SetPose replaces the pose of an existing shape. Returns false if the
	// shape no longer exists.
	SetPose(id string, p Pose) bool
	// RotateAroundCenter applies a relative rotation of delta radians
	// around the shape's visual center. The center is guaranteed not to
	// move. Returns false if the shape no longer exists.
	RotateAroundCenter(id string, delta float64) bool
	// Delete removes the given shapes. Unknown ids are ignored. Observers
	// are notified after removal with each shape's prior data.
	Delete(ids ...string)
	// Subscribe registers a deletion observer and returns its cancel
	// function.
	Subscribe(o DeleteObserver) func()
}

// DeleteObserver is notified after a shape has been removed from a Store.
// The callback may run between animation frames at any time.
type DeleteObserver interface {
	ShapeDeleted(s Shape)
}

// NewShapeID returns a fresh shape id.
func NewShapeID() string {
	return uuid.NewString()
}

// MemStore is an in-memory Store. It stands in for the host editor in
// tests and in the demo app.
type MemStore struct {
	mu        sync.Mutex
	shapes    map[string]Shape
	order     []string
	observers map[int]DeleteObserver
	nextObs   int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		shapes:    make(map[string]Shape),
		observers: make(map[int]DeleteObserver),
	}
}

func (m *MemStore) Get(id string) (Shape, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shapes[id]
	return s, ok
}

func (m *MemStore) All() []Shape {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Shape, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.shapes[id])
	}
	return out
}

func (m *MemStore) Create(s Shape) Shape {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = NewShapeID()
	}
	if _, exists := m.shapes[s.ID]; !exists {
		m.order = append(m.order, s.ID)
	}
	m.shapes[s.ID] = s
	return s
}

func (m *MemStore) SetPose(id string, p Pose) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shapes[id]
	if !ok {
		return false
	}
	s.Pose = p
	m.shapes[id] = s
	return true
}

func (m *MemStore) RotateAroundCenter(id string, delta float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shapes[id]
	if !ok {
		return false
	}
	cx, cy := s.Pose.Center()
	s.Pose.Rotation += delta
	s.Pose.X, s.Pose.Y = common.RotatedTopLeft(cx, cy, s.Pose.W, s.Pose.H, s.Pose.Rotation)
	m.shapes[id] = s
	return true
}

func (m *MemStore) Delete(ids ...string) {
	m.mu.Lock()
	var removed []Shape
	for _, id := range ids {
		s, ok := m.shapes[id]
		if !ok {
			continue
		}
		delete(m.shapes, id)
		removed = append(removed, s)
	}
	if len(removed) > 0 {
		kept := m.order[:0]
		for _, id := range m.order {
			if _, ok := m.shapes[id]; ok {
				kept = append(kept, id)
			}
		}
		m.order = kept
	}
	// snapshot so observers may unsubscribe or touch the store
	obs := make([]DeleteObserver, 0, len(m.observers))
	for _, o := range m.observers {
		obs = append(obs, o)
	}
	m.mu.Unlock()

	for _, s := range removed {
		for _, o := range obs {
			o.ShapeDeleted(s)
		}
	}
}

func (m *MemStore) Subscribe(o DeleteObserver) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := m.nextObs
	m.nextObs++
	m.observers[key] = o
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, key)
	}
}

package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is the on-disk form of a canvas: a flat list of shapes.
type Scene struct {
	Name   string  `yaml:"name,omitempty"`
	Shapes []Shape `yaml:"shapes"`
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("editor: load %s: %w", path, err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("editor: unmarshal %s: %w", path, err)
	}
	return &scene, nil
}

// SaveScene writes a scene file.
func SaveScene(path string, scene *Scene) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return fmt.Errorf("editor: marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("editor: save %s: %w", path, err)
	}
	return nil
}

// Populate replaces the store's contents with the scene's shapes. Debug
// artifacts in the file are dropped; they are runtime-only.
func (s *Scene) Populate(store Store) {
	var stale []string
	for _, shape := range store.All() {
		stale = append(stale, shape.ID)
	}
	store.Delete(stale...)
	for _, shape := range s.Shapes {
		if shape.Debug {
			continue
		}
		store.Create(shape)
	}
}

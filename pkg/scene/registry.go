package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned when a built-in scene name is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	New         func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtins = map[string]SceneInfo{
	"default": {
		Name:        "default",
		Description: "Diffuse sphere on a ground sphere",
		New:         NewDefaultScene,
	},
	"materials": {
		Name:        "materials",
		Description: "Diffuse, metal and glass spheres sharing materials",
		New:         NewMaterialsScene,
	},
	"grid": {
		Name:        "grid",
		Description: "Grid of spheres cycling through all material models",
		New:         NewSphereGridScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by name
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Lookup builds the built-in scene with the given name
func Lookup(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.New(cameraOverrides...), nil
}

package scene

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *renderer.Camera
	World  *geometry.HittableList
}

// Definition describes a built-in scene: its default camera and how to populate its world
type Definition struct {
	Name        string
	Description string
	Camera      renderer.CameraConfig
	// Populate adds the scene's objects. Random placement draws from sampler.
	Populate func(world *geometry.HittableList, sampler core.Sampler)
}

var registry = map[string]Definition{}

// Register adds a scene definition, replacing any existing one with the same name
func Register(def Definition) {
	registry[def.Name] = def
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the definition registered under name
func Lookup(name string) (Definition, error) {
	def, ok := registry[name]
	if !ok {
		return Definition{}, errors.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return def, nil
}

// Build constructs the named scene. Non-zero fields of cameraOverride replace the
// scene's camera defaults, and seed drives any random object placement.
func Build(name string, seed int64, cameraOverride renderer.CameraConfig) (*Scene, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	cameraConfig := renderer.MergeCameraConfig(def.Camera, cameraOverride)
	if err := cameraConfig.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scene %q", name)
	}

	world := geometry.NewHittableList()
	def.Populate(world, core.NewSeededSampler(seed))

	return &Scene{
		Name:   def.Name,
		Camera: renderer.NewCamera(cameraConfig),
		World:  world,
	}, nil
}

// mustBuild is Build for the built-in constructors, whose defaults are known valid
func mustBuild(name string, seed int64, cameraOverrides []renderer.CameraConfig) *Scene {
	var override renderer.CameraConfig
	if len(cameraOverrides) > 0 {
		override = cameraOverrides[0]
	}
	s, err := Build(name, seed, override)
	if err != nil {
		panic(err)
	}
	return s
}

package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestNames_ListsBuiltins(t *testing.T) {
	names := Names()
	expected := []string{"basic", "grid", "materials", "weekend"}

	for _, name := range expected {
		found := false
		for _, n := range names {
			if n == name {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected built-in scene %q in %v", name, names)
		}
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names should be sorted, got %v", names)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nonexistent")
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "weekend") {
		t.Errorf("Error should list the available scenes, got %v", err)
	}
}

func TestBuild_AppliesCameraOverride(t *testing.T) {
	s, err := Build("basic", 0, renderer.CameraConfig{ImageWidth: 64, SamplesPerPixel: 3})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Camera.ImageWidth != 64 || s.Camera.SamplesPerPixel != 3 {
		t.Errorf("Override not applied: %+v", s.Camera.CameraConfig)
	}
	if s.Camera.MaxDepth != 50 {
		t.Errorf("Expected default max depth 50, got %d", s.Camera.MaxDepth)
	}
	if s.Camera.ImageHeight() != 36 {
		t.Errorf("Expected height 36 for 16:9, got %d", s.Camera.ImageHeight())
	}
}

func TestBuild_InvalidOverride(t *testing.T) {
	_, err := Build("basic", 0, renderer.CameraConfig{VFov: 200})
	if err == nil {
		t.Fatal("Expected error for invalid field of view")
	}
	if !strings.Contains(err.Error(), "basic") {
		t.Errorf("Error should name the scene, got %v", err)
	}
}

func TestBasicScene_Layout(t *testing.T) {
	s := NewBasicScene()
	if s.World.Len() != 2 {
		t.Fatalf("Expected 2 spheres, got %d", s.World.Len())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit || math.Abs(hit.T-0.5) > 1e-9 {
		t.Fatalf("Expected to hit the small sphere at t=0.5")
	}
	if _, ok := hit.Material.(*material.Lambertian); !ok {
		t.Errorf("Expected a lambertian sphere, got %T", hit.Material)
	}
}

func TestMaterialsScene_HollowGlass(t *testing.T) {
	s := NewMaterialsScene()

	var dielectrics []*material.Dielectric
	for _, object := range s.World.Objects() {
		sphere := object.(*geometry.Sphere)
		if d, ok := sphere.Material.(*material.Dielectric); ok {
			dielectrics = append(dielectrics, d)
		}
	}

	if len(dielectrics) != 2 {
		t.Fatalf("Expected outer glass and inner bubble, got %d dielectrics", len(dielectrics))
	}
	if math.Abs(dielectrics[0].RefractiveIndex*dielectrics[1].RefractiveIndex-1.0) > 1e-12 {
		t.Errorf("Bubble index should be the reciprocal of the glass index, got %f and %f",
			dielectrics[0].RefractiveIndex, dielectrics[1].RefractiveIndex)
	}
	if s.Camera.DefocusAngle <= 0 {
		t.Error("Materials scene should use depth of field")
	}
}

func TestWeekendScene_DeterministicForSeed(t *testing.T) {
	a := NewWeekendScene(42)
	b := NewWeekendScene(42)
	c := NewWeekendScene(43)

	if a.World.Len() != b.World.Len() {
		t.Fatalf("Same seed produced %d and %d objects", a.World.Len(), b.World.Len())
	}
	for i, object := range a.World.Objects() {
		if object.(*geometry.Sphere).Center != b.World.Objects()[i].(*geometry.Sphere).Center {
			t.Fatalf("Object %d differs between identical seeds", i)
		}
	}

	same := a.World.Len() == c.World.Len()
	if same {
		for i, object := range a.World.Objects() {
			if object.(*geometry.Sphere).Center != c.World.Objects()[i].(*geometry.Sphere).Center {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds should produce different arrangements")
	}
}

func TestWeekendScene_SharesGlassMaterial(t *testing.T) {
	s := NewWeekendScene(1)

	var glass material.Material
	count := 0
	for _, object := range s.World.Objects() {
		sphere := object.(*geometry.Sphere)
		if _, ok := sphere.Material.(*material.Dielectric); !ok {
			continue
		}
		if glass == nil {
			glass = sphere.Material
		} else if sphere.Material != glass {
			t.Fatal("Glass spheres should share a single material instance")
		}
		count++
	}
	if count == 0 {
		t.Error("Expected at least the large glass sphere")
	}
}

func TestOklchToRGB_InRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.65, 0.25, hue)
		for _, channel := range []float64{c.X, c.Y, c.Z} {
			if channel < 0 || channel > 1 {
				t.Errorf("Hue %f: channel %f outside [0, 1]", hue, channel)
			}
		}
	}
}

func TestBuiltinScenes_Render(t *testing.T) {
	tiny := renderer.CameraConfig{ImageWidth: 8, SamplesPerPixel: 1, MaxDepth: 3}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name, 7, tiny)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			sink := renderer.NewImageSink()
			stats, err := s.Camera.Render(s.World, core.NewSeededSampler(7), sink, nil)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if stats.TotalPixels != 8*s.Camera.ImageHeight() {
				t.Errorf("Expected %d pixels, got %d", 8*s.Camera.ImageHeight(), stats.TotalPixels)
			}
		})
	}
}

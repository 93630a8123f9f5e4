package testbed

import (
	"testing"

	"github.com/spaghettifunk/geom3/geometry"
)

func testConfig() *SceneConfig {
	cfg := &SceneConfig{
		Name: "unit",
		Camera: CameraConfig{
			Position: [3]float64{0, 0, 10},
		},
		Objects: []ObjectConfig{
			{
				Name:     "a",
				Position: [3]float64{1, 2, 3},
				Points:   [][3]float64{{0, 0, 0}, {1, 0, 0}},
			},
			{
				Name:   "b",
				Points: [][3]float64{{0, 0, 0}},
			},
		},
	}
	applyDefaults(cfg)
	return cfg
}

func TestBuildScene(t *testing.T) {
	s := BuildScene(testConfig())

	if len(s.Objects) != 2 {
		t.Fatalf("objects = %d", len(s.Objects))
	}
	if s.Objects[0].ID == s.Objects[1].ID {
		t.Error("object IDs not unique")
	}
	if len(s.Objects[0].Points) != 2 {
		t.Errorf("points = %d", len(s.Objects[0].Points))
	}
}

func TestModelMatrixPlacesObject(t *testing.T) {
	s := BuildScene(testConfig())

	// Object "a" sits at (1,2,3) with identity rotation and scale, so
	// its local origin lands exactly there in world space.
	got := geometry.MulPoint(geometry.NewPoint3(0.0, 0.0, 0.0), s.Objects[0].Model)
	if !got.Compare(geometry.NewPoint3(1.0, 2.0, 3.0), 1e-12) {
		t.Fatalf("world position = %+v", got)
	}
}

func TestModelMatrixInvertible(t *testing.T) {
	s := BuildScene(testConfig())
	for _, obj := range s.Objects {
		if _, err := obj.Model.Inverse(); err != nil {
			t.Errorf("object %s model not invertible: %v", obj.Name, err)
		}
	}
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	s := BuildScene(testConfig())

	for _, obj := range s.Objects {
		worldToLocal, err := obj.Model.Inverse()
		if err != nil {
			t.Fatalf("object %s: %v", obj.Name, err)
		}
		for i, p := range obj.Points {
			world := geometry.MulPoint(p, obj.Model)
			local := geometry.MulPoint(world, worldToLocal)
			if !local.Compare(p, 1e-9) {
				t.Errorf("object %s point %d: round trip %+v -> %+v", obj.Name, i, p, local)
			}
		}
	}
}

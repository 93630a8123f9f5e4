package testbed

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrNoObjects     = errors.New("testbed: scene has no objects")
	ErrInvalidCamera = errors.New("testbed: invalid camera configuration")
)

// CameraConfig describes the scene camera. FOV is in degrees in the
// file and converted to radians when the matrices are built.
type CameraConfig struct {
	Position    [3]float64 `toml:"position"`
	Target      [3]float64 `toml:"target"`
	Up          [3]float64 `toml:"up"`
	FOVDegrees  float64    `toml:"fov_degrees"`
	AspectRatio float64    `toml:"aspect_ratio"`
	NearClip    float64    `toml:"near_clip"`
	FarClip     float64    `toml:"far_clip"`
}

// ObjectConfig describes one object: where it sits in the world and
// the local-space points it carries through the transform pipeline.
type ObjectConfig struct {
	Name     string       `toml:"name"`
	Position [3]float64   `toml:"position"`
	Rotation [3]float64   `toml:"rotation"` // Euler angles, degrees
	Scale    [3]float64   `toml:"scale"`
	Points   [][3]float64 `toml:"points"`
}

// SceneConfig is the root of a scene TOML file.
type SceneConfig struct {
	Name    string         `toml:"name"`
	Verbose bool           `toml:"verbose"`
	Camera  CameraConfig   `toml:"camera"`
	Objects []ObjectConfig `toml:"objects"`
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testbed: reading scene %s: %w", path, err)
	}

	cfg := &SceneConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("testbed: decoding scene %s: %w", path, err)
	}

	applyDefaults(cfg)

	if len(cfg.Objects) == 0 {
		return nil, ErrNoObjects
	}
	if cfg.Camera.FOVDegrees <= 0 || cfg.Camera.FOVDegrees >= 180 {
		return nil, fmt.Errorf("%w: fov_degrees %v", ErrInvalidCamera, cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.NearClip <= 0 || cfg.Camera.FarClip <= cfg.Camera.NearClip {
		return nil, fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidCamera, cfg.Camera.NearClip, cfg.Camera.FarClip)
	}
	return cfg, nil
}

func applyDefaults(cfg *SceneConfig) {
	c := &cfg.Camera
	if c.Up == ([3]float64{}) {
		c.Up = [3]float64{0, 1, 0}
	}
	if c.FOVDegrees == 0 {
		c.FOVDegrees = 45
	}
	if c.AspectRatio == 0 {
		c.AspectRatio = 1280.0 / 720.0
	}
	if c.NearClip == 0 {
		c.NearClip = 0.1
	}
	if c.FarClip == 0 {
		c.FarClip = 1000
	}
	for i := range cfg.Objects {
		if cfg.Objects[i].Scale == ([3]float64{}) {
			cfg.Objects[i].Scale = [3]float64{1, 1, 1}
		}
	}
}

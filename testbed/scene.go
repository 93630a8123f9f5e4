// Package testbed is a small demo application driving the geometry
// library: it loads a TOML scene description, builds model and camera
// matrices, and pushes every object's points through the transform
// pipeline, reloading the scene whenever the file changes on disk.
package testbed

import (
	m "math"

	"github.com/google/uuid"

	"github.com/spaghettifunk/geom3/core"
	"github.com/spaghettifunk/geom3/geometry"
)

const deg2rad = m.Pi / 180.0

// Object is one scene entry with its model matrix already built.
type Object struct {
	ID     uuid.UUID
	Name   string
	Model  geometry.Mat4d
	Points []geometry.Point3d
}

// Scene holds everything needed to run the transform pipeline.
type Scene struct {
	Name     string
	ViewProj geometry.Mat4d
	Objects  []*Object
}

func vec3(a [3]float64) geometry.Vec3d {
	return geometry.NewVec3(a[0], a[1], a[2])
}

func point3(a [3]float64) geometry.Point3d {
	return geometry.NewPoint3(a[0], a[1], a[2])
}

// BuildScene turns a decoded scene file into matrices and points.
func BuildScene(cfg *SceneConfig) *Scene {
	cam := cfg.Camera
	view := geometry.NewMat4LookAt(point3(cam.Position), point3(cam.Target), vec3(cam.Up))
	proj := geometry.NewMat4Perspective(cam.FOVDegrees*deg2rad, cam.AspectRatio, cam.NearClip, cam.FarClip)

	s := &Scene{
		Name:     cfg.Name,
		ViewProj: view.Mul(proj),
	}
	for _, oc := range cfg.Objects {
		obj := &Object{
			ID:    uuid.New(),
			Name:  oc.Name,
			Model: modelMatrix(oc),
		}
		for _, p := range oc.Points {
			obj.Points = append(obj.Points, point3(p))
		}
		s.Objects = append(s.Objects, obj)
	}
	return s
}

// modelMatrix composes scale, rotation and translation in the
// row-vector order points are multiplied in: S * R * T.
func modelMatrix(oc ObjectConfig) geometry.Mat4d {
	scale := geometry.NewMat4Scale(vec3(oc.Scale))
	rot := geometry.NewMat4EulerXYZ(
		oc.Rotation[0]*deg2rad,
		oc.Rotation[1]*deg2rad,
		oc.Rotation[2]*deg2rad,
	)
	trans := geometry.NewMat4Translation(vec3(oc.Position))
	return scale.Mul(rot).Mul(trans)
}

// Run transforms every object's points into clip space and logs the
// results. Each world-space point is also mapped back to local space
// through the model inverse as a round-trip check; objects whose model
// matrix is singular (zero scale on some axis) are reported and skip
// that check.
func (s *Scene) Run() {
	core.LogInfo("scene %q: %d object(s)", s.Name, len(s.Objects))

	for _, obj := range s.Objects {
		mvp := obj.Model.Mul(s.ViewProj)

		worldToLocal, err := obj.Model.Inverse()
		invertible := err == nil
		if !invertible {
			core.LogWarn("object %s (%s): model matrix not invertible: %v", obj.Name, obj.ID, err)
		}

		for i, p := range obj.Points {
			world := geometry.MulPoint(p, obj.Model)
			clip := geometry.MulPoint(p, mvp)
			if invertible {
				local := geometry.MulPoint(world, worldToLocal)
				core.LogDebug("object %s point %d: local=%v world=%v clip=%v roundtrip=%v", obj.Name, i, p, world, clip, local)
			} else {
				core.LogDebug("object %s point %d: local=%v world=%v clip=%v", obj.Name, i, p, world, clip)
			}
		}
		core.LogInfo("object %s (%s): transformed %d point(s)", obj.Name, obj.ID, len(obj.Points))
	}
}

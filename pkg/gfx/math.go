package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is the set of points p with Normal·p + D = 0. Normal is unit length
// and points into the half space the plane bounds.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// Distance returns the signed distance from the plane to p.
func (p Plane) Distance(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.D
}

func planeOf(v mgl32.Vec4) Plane {
	n := v.Vec3()
	l := n.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), D: v.W() / l}
}

// FrustumPlanes extracts the world space planes of a projection·view matrix,
// ordered left, right, bottom, top, near, far.
// Method from Gribb and Hartmann, "Fast Extraction of Viewing Frustum Planes
// from the World-View-Projection Matrix".
func FrustumPlanes(m mgl32.Mat4) [6]Plane {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return [6]Plane{
		planeOf(r3.Add(r0)),
		planeOf(r3.Sub(r0)),
		planeOf(r3.Add(r1)),
		planeOf(r3.Sub(r1)),
		planeOf(r3.Add(r2)),
		planeOf(r3.Sub(r2)),
	}
}

// InFrustum reports whether p lies inside all planes.
func InFrustum(planes [6]Plane, p mgl32.Vec3) bool {
	for _, pl := range planes {
		if pl.Distance(p) < 0 {
			return false
		}
	}
	return true
}

// SphereInFrustum reports whether a sphere intersects the frustum.
func SphereInFrustum(planes [6]Plane, center mgl32.Vec3, radius float32) bool {
	for _, pl := range planes {
		if pl.Distance(center) < -radius {
			return false
		}
	}
	return true
}

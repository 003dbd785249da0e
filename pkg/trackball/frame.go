package trackball

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the smallest |up × back| accepted before up counts as
// parallel to the view direction.
const parallelEpsilon = 1e-6

// Frame is the camera position and orientation.
type Frame struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// LookAt creates a frame with the eye looking at target, up orthonormalized.
func LookAt(eye, target, up mgl32.Vec3) Frame {
	return Frame{Eye: eye, Target: target, Up: up}.Orthonormalize()
}

// Distance returns the distance between eye and target.
func (f Frame) Distance() float32 {
	return f.Target.Sub(f.Eye).Len()
}

// Forward returns the unit view direction, from eye towards target.
func (f Frame) Forward() mgl32.Vec3 {
	return f.Target.Sub(f.Eye).Normalize()
}

// Back returns the unit direction from target towards eye, the view space +z axis.
func (f Frame) Back() mgl32.Vec3 {
	return f.Eye.Sub(f.Target).Normalize()
}

// Right returns the unit view space +x axis.
func (f Frame) Right() mgl32.Vec3 {
	return f.Forward().Cross(f.Up).Normalize()
}

// ToWorld expresses a view space direction in world space.
func (f Frame) ToWorld(v mgl32.Vec3) mgl32.Vec3 {
	return f.Right().Mul(v.X()).
		Add(f.Up.Mul(v.Y())).
		Add(f.Back().Mul(v.Z()))
}

// Orthonormalize makes Up a unit vector orthogonal to the view direction.
// An invalid frame is returned unchanged.
func (f Frame) Orthonormalize() Frame {
	if !f.Valid() {
		return f
	}
	back := f.Back()
	up := f.Up.Sub(back.Mul(f.Up.Dot(back)))
	f.Up = up.Normalize()
	return f
}

// Valid reports whether the frame is finite, non-degenerate and up is not
// parallel to the view direction.
func (f Frame) Valid() bool {
	for _, v := range []mgl32.Vec3{f.Eye, f.Target, f.Up} {
		if !finite3(v) {
			return false
		}
	}
	offset := f.Eye.Sub(f.Target)
	d := offset.Len()
	if d == 0 || math32.IsInf(d, 0) {
		return false
	}
	u := f.Up.Len()
	if u == 0 {
		return false
	}
	return offset.Cross(f.Up).Len()/(d*u) > parallelEpsilon
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func finite2(v mgl32.Vec2) bool {
	return finite(v[0]) && finite(v[1])
}

func finite3(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

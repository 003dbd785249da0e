package trackball

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how normalized screen positions are lifted onto the
// virtual trackball sphere.
type Projection int

// Projections.
const (
	// ExponentialMap lifts a point at screen distance r from the center to the
	// sphere point at geodesic distance r from the pole facing the viewer.
	// Rotation keeps growing past the trackball's edge up to MaxArc.
	ExponentialMap Projection = iota

	// Hyperbolic lifts onto the hemisphere near the center and onto the
	// hyperbolic sheet z = 1/(2r) beyond r = 1/√2, where both surfaces meet.
	Hyperbolic
)

func (p Projection) String() string {
	switch p {
	case ExponentialMap:
		return "ExponentialMap"
	case Hyperbolic:
		return "Hyperbolic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// MaxArc is the largest geodesic distance from the pole an exponential map
// lift reaches. Positions further out, such as a pointer outside the window,
// saturate just short of the antipode and keep their direction.
const MaxArc = math32.Pi - 1e-3

// Rotation is an axis-angle rotation. Axis is a unit vector unless Angle is 0.
type Rotation struct {
	Axis  mgl32.Vec3
	Angle float32
}

// Identity is the zero rotation.
var Identity = Rotation{Axis: mgl32.Vec3{0, 0, 1}}

// IsIdentity reports whether r rotates nothing.
func (r Rotation) IsIdentity() bool {
	return r.Angle == 0
}

// Quat returns r as a unit quaternion.
func (r Rotation) Quat() mgl32.Quat {
	if r.IsIdentity() {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(r.Angle, r.Axis)
}

// Normalize maps a pixel position to normalized trackball coordinates:
// origin at the viewport center, +y up, unit length equal to the trackball
// radius of half the larger viewport dimension.
func Normalize(pos, viewport mgl32.Vec2) mgl32.Vec2 {
	half := viewport.Mul(0.5)
	r := math32.Max(half.X(), half.Y())
	return mgl32.Vec2{
		(pos.X() - half.X()) / r,
		(half.Y() - pos.Y()) / r,
	}
}

// Lift maps a normalized screen position onto the unit sphere, view space.
func (p Projection) Lift(v mgl32.Vec2) mgl32.Vec3 {
	r := v.Len()
	if r == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	switch p {
	case Hyperbolic:
		var z float32
		if r*r <= 0.5 {
			z = math32.Sqrt(1 - r*r)
		} else {
			z = 1 / (2 * r)
		}
		return mgl32.Vec3{v.X(), v.Y(), z}.Normalize()
	default:
		// Past the antipode the sphere wraps around and the rotation would reverse.
		arc := math32.Min(r, MaxArc)
		s, c := math32.Sin(arc), math32.Cos(arc)
		return mgl32.Vec3{s * v.X() / r, s * v.Y() / r, c}
	}
}

// Rotation returns the view space rotation that rolls the trackball from
// screen position from to screen position to. The angle is the great-circle
// arc length between the lifted points.
func (p Projection) Rotation(from, to mgl32.Vec2) Rotation {
	if !finite2(from) || !finite2(to) || from == to {
		return Identity
	}

	a, b := p.Lift(from), p.Lift(to)
	cross := a.Cross(b)
	sin, cos := cross.Len(), a.Dot(b)
	angle := math32.Atan2(sin, cos)

	if sin > parallelEpsilon {
		return Rotation{Axis: cross.Mul(1 / sin), Angle: angle}
	}
	if cos > 0 {
		return Identity
	}

	// Antipodal: any axis orthogonal to a works, prefer the one orthogonal to
	// both the view direction and up.
	axis := mgl32.Vec3{1, 0, 0}
	axis = axis.Sub(a.Mul(axis.Dot(a)))
	if axis.Len() <= parallelEpsilon {
		axis = mgl32.Vec3{0, 1, 0}
		axis = axis.Sub(a.Mul(axis.Dot(a)))
	}
	return Rotation{Axis: axis.Normalize(), Angle: math32.Pi}
}

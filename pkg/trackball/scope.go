package trackball

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is a closed interval.
type Bounds struct {
	Min, Max float32
}

// Clamp clamps x into the interval.
func (b Bounds) Clamp(x float32) float32 {
	return mgl32.Clamp(x, b.Min, b.Max)
}

// Contains reports whether x lies in the interval.
func (b Bounds) Contains(x float32) bool {
	return x >= b.Min && x <= b.Max
}

// ClipFactors place the near and far clip planes at multiples of the
// eye-target distance.
type ClipFactors struct {
	Near, Far float32
}

// Planes returns the near and far clip plane distances for distance d.
func (c ClipFactors) Planes(d float32) (near, far float32) {
	return c.Near * d, c.Far * d
}

// Scope bounds the mutations the controller may apply to a Frame.
type Scope struct {
	Distance Bounds
	Fov      Bounds
	Clip     ClipFactors
}

// DefaultScope returns permissive bounds suitable for most scenes.
func DefaultScope() Scope {
	return Scope{
		Distance: Bounds{Min: 1e-3, Max: 1e6},
		Fov:      Bounds{Min: mgl32.DegToRad(1), Max: mgl32.DegToRad(170)},
		Clip:     ClipFactors{Near: 1e-2, Far: 1e3},
	}
}

// Validate reports bounds that cannot constrain a frame. Bounds are never
// clamped into shape.
func (s Scope) Validate() error {
	for _, x := range []float32{s.Distance.Min, s.Distance.Max, s.Fov.Min, s.Fov.Max, s.Clip.Near, s.Clip.Far} {
		if !finite(x) {
			return ErrInvalidScope.New("non-finite bound %v", x)
		}
	}
	switch {
	case s.Distance.Min <= 0:
		return ErrInvalidScope.New("distance min %v must be positive", s.Distance.Min)
	case s.Distance.Min > s.Distance.Max:
		return ErrInvalidScope.New("distance min %v > max %v", s.Distance.Min, s.Distance.Max)
	case s.Fov.Min <= 0 || s.Fov.Max >= math32.Pi:
		return ErrInvalidScope.New("field of view bounds [%v, %v] outside (0, π)", s.Fov.Min, s.Fov.Max)
	case s.Fov.Min > s.Fov.Max:
		return ErrInvalidScope.New("field of view min %v > max %v", s.Fov.Min, s.Fov.Max)
	case s.Clip.Near <= 0:
		return ErrInvalidScope.New("near clip factor %v must be positive", s.Clip.Near)
	case s.Clip.Far <= s.Clip.Near:
		return ErrInvalidScope.New("far clip factor %v must exceed near %v", s.Clip.Far, s.Clip.Near)
	}
	return nil
}

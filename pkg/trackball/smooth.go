package trackball

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is the relative distance to the goal at which a spring snaps.
const settleEpsilon = 1e-4

// smoother eases the zoom quantity, distance in orbit mode or field of view in
// first person mode, towards its goal with a damped spring.
type smoother struct {
	frequency float64
	damping   float64

	active bool
	goal   float64
	vel    float64
}

func (s *smoother) enabled() bool {
	return s != nil && s.frequency > 0
}

// aim sets a new goal. The spring keeps its velocity.
func (s *smoother) aim(goal float32) {
	s.goal = float64(goal)
	s.active = true
}

// target returns the goal if one is pending, otherwise current.
func (s *smoother) target(current float32) float32 {
	if s.active {
		return float32(s.goal)
	}
	return current
}

// step advances the spring by dt from current and returns the new value.
func (s *smoother) step(current float32, dt time.Duration) float32 {
	if !s.active || dt <= 0 {
		return current
	}
	spring := harmonica.NewSpring(dt.Seconds(), s.frequency, s.damping)
	pos, vel := spring.Update(float64(current), s.vel, s.goal)
	s.vel = vel
	if math.Abs(pos-s.goal) <= settleEpsilon*math.Abs(s.goal) && math.Abs(vel) <= settleEpsilon*math.Abs(s.goal) {
		s.stop()
		return float32(s.goal)
	}
	return float32(pos)
}

func (s *smoother) stop() {
	s.active = false
	s.vel = 0
}

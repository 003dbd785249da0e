package trackball_test

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/trackball/pkg/trackball"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scope", func() {
	It("accepts the defaults", func() {
		Expect(trackball.DefaultScope().Validate()).To(Succeed())
	})

	DescribeTable("rejects bounds that cannot hold",
		func(mutate func(*trackball.Scope)) {
			s := trackball.DefaultScope()
			mutate(&s)
			err := s.Validate()
			Expect(err).To(HaveOccurred())
			Expect(errorx.IsOfType(err, trackball.ErrInvalidScope)).To(BeTrue())
		},
		Entry("distance min > max", func(s *trackball.Scope) { s.Distance = trackball.Bounds{Min: 10, Max: 1} }),
		Entry("zero distance min", func(s *trackball.Scope) { s.Distance.Min = 0 }),
		Entry("fov min > max", func(s *trackball.Scope) { s.Fov = trackball.Bounds{Min: 1, Max: 0.5} }),
		Entry("fov reaching π", func(s *trackball.Scope) { s.Fov.Max = math32.Pi }),
		Entry("non-finite distance", func(s *trackball.Scope) { s.Distance.Max = math32.Inf(1) }),
		Entry("zero near factor", func(s *trackball.Scope) { s.Clip.Near = 0 }),
		Entry("far below near", func(s *trackball.Scope) { s.Clip = trackball.ClipFactors{Near: 2, Far: 1} }),
	)

	It("scales clip planes with distance", func() {
		near, far := trackball.ClipFactors{Near: 0.1, Far: 100}.Planes(5)
		Expect(near).To(BeNumerically("~", 0.5, tolerance))
		Expect(far).To(BeNumerically("~", 500, tolerance))
	})
})

var _ = Describe("Frame", func() {
	It("orthonormalizes up", func() {
		f := trackball.LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 2, 1})
		expectVec3(f.Up, mgl32.Vec3{0, 1, 0})
		expectVec3(f.Right(), mgl32.Vec3{1, 0, 0})
		expectVec3(f.Back(), mgl32.Vec3{0, 0, 1})
		Expect(f.Distance()).To(BeNumerically("~", 5, tolerance))
	})

	DescribeTable("detects degenerate frames",
		func(f trackball.Frame) {
			Expect(f.Valid()).To(BeFalse())
		},
		Entry("eye at target", trackball.Frame{Eye: mgl32.Vec3{1, 1, 1}, Target: mgl32.Vec3{1, 1, 1}, Up: mgl32.Vec3{0, 1, 0}}),
		Entry("up parallel to view", trackball.Frame{Eye: mgl32.Vec3{0, 5, 0}, Up: mgl32.Vec3{0, 1, 0}}),
		Entry("zero up", trackball.Frame{Eye: mgl32.Vec3{0, 0, 5}}),
		Entry("NaN eye", trackball.Frame{Eye: mgl32.Vec3{math32.NaN(), 0, 5}, Up: mgl32.Vec3{0, 1, 0}}),
	)

	It("maps view directions to world", func() {
		f := trackball.LookAt(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		expectVec3(f.ToWorld(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{1, 0, 0})
		expectVec3(f.ToWorld(mgl32.Vec3{1, 0, 0}), mgl32.Vec3{0, 0, -1})
		expectVec3(f.ToWorld(mgl32.Vec3{0, 1, 0}), mgl32.Vec3{0, 1, 0})
	})
})

package gfx_test

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/trackball/pkg/gfx"
	"github.com/mgnsk/trackball/pkg/input"
	"github.com/mgnsk/trackball/pkg/trackball"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var (
	eye    = mgl32.Vec3{0, 0, 5}
	origin = mgl32.Vec3{}
	up     = mgl32.Vec3{0, 1, 0}
)

func testScope() trackball.Scope {
	s := trackball.DefaultScope()
	s.Clip = trackball.ClipFactors{Near: 0.1, Far: 10}
	return s
}

func expectNear(actual, expected mgl32.Vec3, threshold float32) {
	ExpectWithOffset(1, actual.ApproxEqualThreshold(expected, threshold)).To(BeTrue(), "expected %v to be near %v", actual, expected)
}

var _ = Describe("TrackballCamera", func() {
	var cam *gfx.TrackballCamera

	BeforeEach(func() {
		var err error
		cam, err = gfx.NewCamera(trackball.LookAt(eye, origin, up), testScope(), input.DefaultConfig(),
			trackball.WithViewport(800, 600),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds a look-at view", func() {
		Expect(cam.View()).To(Equal(mgl32.LookAtV(eye, origin, up)))
	})

	It("builds a perspective projection from the clip factors", func() {
		near, far := cam.Controller().ClipPlanes()
		Expect(near).To(BeNumerically("~", 0.5, 1e-6))
		Expect(far).To(BeNumerically("~", 50, 1e-4))
		Expect(cam.Projection(4.0 / 3)).To(Equal(mgl32.Perspective(trackball.DefaultFov, 4.0/3, near, far)))
		Expect(cam.Projection(2)).To(Equal(mgl32.Perspective(trackball.DefaultFov, 2, near, far)))
	})

	It("falls back to the viewport aspect", func() {
		expected := cam.Projection(4.0 / 3)
		Expect(cam.Projection(0)).To(Equal(expected))
		Expect(cam.Projection(-1)).To(Equal(expected))
		Expect(cam.Projection(math32.NaN())).To(Equal(expected))
	})

	It("unprojects what it projects", func() {
		for _, p := range []mgl32.Vec3{origin, {1, 0.5, -2}, {-1, -1, 1}} {
			win := mgl32.Project(p, cam.View(), cam.Projection(4.0/3), 0, 0, 800, 600)
			ndc := mgl32.Vec2{win.X()/400 - 1, win.Y()/300 - 1}
			expectNear(cam.Unproject(ndc, win.Z()), p, 1e-3)

			pixel, depth := cam.Project(p)
			unprojected, err := cam.UnprojectPixel(pixel.X(), pixel.Y(), depth)
			Expect(err).NotTo(HaveOccurred())
			expectNear(unprojected, p, 1e-3)
		}
	})

	It("projects with the origin at the top left", func() {
		pixel, depth := cam.Project(mgl32.Vec3{0, 1, 0})
		Expect(pixel.X()).To(BeNumerically("~", 400, 1e-2))
		Expect(pixel.Y()).To(BeNumerically("<", 300))
		Expect(depth).To(BeNumerically(">", 0))
		Expect(depth).To(BeNumerically("<", 1))
	})

	It("casts rays through the view", func() {
		from, dir := cam.Ray(mgl32.Vec2{})
		expectNear(from, mgl32.Vec3{0, 0, 4.5}, 1e-3)
		expectNear(dir, mgl32.Vec3{0, 0, -1}, 1e-4)

		_, dir = cam.Ray(mgl32.Vec2{1, 0})
		Expect(dir.X()).To(BeNumerically(">", 0))
	})

	It("extracts world space clip planes", func() {
		planes := cam.ClipPlanes()
		for _, pl := range planes {
			Expect(pl.Normal.Len()).To(BeNumerically("~", 1, 1e-4))
		}
		Expect(gfx.InFrustum(planes, origin)).To(BeTrue())
		Expect(gfx.InFrustum(planes, eye)).To(BeFalse())
		Expect(planes[4].Distance(mgl32.Vec3{0, 0, 4.5})).To(BeNumerically("~", 0, 1e-3))
		Expect(planes[5].Distance(mgl32.Vec3{0, 0, -45})).To(BeNumerically("~", 0, 1e-2))
		Expect(planes[5].Distance(mgl32.Vec3{0, 0, -100})).To(BeNumerically("<", 0))
		Expect(planes[1].Distance(mgl32.Vec3{100, 0, 0})).To(BeNumerically("<", 0))
		Expect(planes[0].Distance(mgl32.Vec3{-100, 0, 0})).To(BeNumerically("<", 0))
		Expect(gfx.SphereInFrustum(planes, mgl32.Vec3{0, 0, 6}, 2)).To(BeTrue())
		Expect(gfx.SphereInFrustum(planes, mgl32.Vec3{0, 0, -100}, 2)).To(BeFalse())
	})

	When("driven by events", func() {
		It("orbits on a left drag", func() {
			before := cam.View()
			cam.Update([]input.Event{
				input.PointerMove(400, 300),
				input.ButtonChange(input.ButtonLeft, true, 0),
				input.PointerMove(600, 300),
			}, 16*time.Millisecond)

			Expect(cam.View()).NotTo(Equal(before))
			f := cam.Frame()
			Expect(f.Distance()).To(BeNumerically("~", 5, 1e-4))
			Expect(f.Eye.X()).To(BeNumerically("<", 0))
			Expect(cam.View()).To(Equal(mgl32.LookAtV(f.Eye, f.Target, f.Up)))
		})

		It("keeps cached matrices when nothing changes", func() {
			view, planes := cam.View(), cam.ClipPlanes()
			revision := cam.Controller().Revision()
			cam.Update([]input.Event{input.PointerMove(10, 10), input.KeyChange(input.KeyQ, true, 0)}, time.Second)
			Expect(cam.Controller().Revision()).To(Equal(revision))
			Expect(cam.View()).To(Equal(view))
			Expect(cam.ClipPlanes()).To(Equal(planes))
		})

		It("ignores an empty viewport", func() {
			view, projection := cam.View(), cam.Projection(0)
			cam.Update([]input.Event{input.Resize(0, 0)}, 0)
			Expect(cam.View()).To(Equal(view))
			Expect(cam.Projection(0)).To(Equal(projection))
			Expect(cam.Controller().Viewport()).To(Equal(mgl32.Vec2{800, 600}))
		})

		It("follows resizes", func() {
			cam.Update([]input.Event{input.Resize(1000, 500)}, 0)
			near, far := cam.Controller().ClipPlanes()
			Expect(cam.Projection(0)).To(Equal(mgl32.Perspective(trackball.DefaultFov, 2, near, far)))
		})

		It("switches to an orthographic projection", func() {
			Expect(cam.Projection(0)[15]).To(Equal(float32(0)))
			cam.Update([]input.Event{input.KeyChange(input.KeyO, true, 0)}, 0)
			Expect(cam.Controller().Orthographic()).To(BeTrue())

			p := cam.Projection(0)
			Expect(p[15]).To(Equal(float32(1)))
			h := 5 * math32.Tan(trackball.DefaultFov/2)
			Expect(p[5]).To(BeNumerically("~", 1/h, 1e-5))

			from, dir := cam.Ray(mgl32.Vec2{1, 0})
			expectNear(dir, mgl32.Vec3{0, 0, -1}, 1e-4)
			Expect(from.X()).To(BeNumerically("~", h*4/3, 1e-3))
		})
	})

	It("rejects an invalid input configuration", func() {
		cfg := input.DefaultConfig()
		cfg.ZoomSensitivity = -1
		_, err := gfx.NewCamera(trackball.LookAt(eye, origin, up), testScope(), cfg)
		Expect(err).To(HaveOccurred())
	})

	It("wraps an existing controller", func() {
		ctrl, err := trackball.NewController(trackball.LookAt(eye, origin, up), testScope())
		Expect(err).NotTo(HaveOccurred())
		c := gfx.NewTrackballCamera(ctrl, input.NewDefaultMapper())
		Expect(c.Controller()).To(BeIdenticalTo(ctrl))
		Expect(c.Eye()).To(Equal(eye))

		var _ gfx.Camera = c
	})
})

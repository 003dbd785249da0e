package gfx

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/trackball/pkg/input"
	"github.com/mgnsk/trackball/pkg/trackball"
)

// Camera is the capability a host renderer consumes.
type Camera interface {
	// View returns the world to view space transform.
	View() mgl32.Mat4

	// Projection returns the view to clip space transform for a viewport aspect ratio.
	Projection(aspect float32) mgl32.Mat4

	// Unproject maps a normalized device coordinate and a depth in [0, 1] to world space.
	Unproject(ndc mgl32.Vec2, depth float32) mgl32.Vec3

	// ClipPlanes returns the world space frustum planes.
	ClipPlanes() [6]Plane

	// Update applies a frame's raw input events.
	Update(events []input.Event, dt time.Duration)
}

var _ Camera = &TrackballCamera{}

// TrackballCamera derives view and projection transforms from a trackball
// controller. Matrices are cached until the controller changes.
type TrackballCamera struct {
	ctrl   *trackball.Controller
	mapper *input.Mapper

	cached   bool
	revision uint64
	aspect   float32

	view       mgl32.Mat4
	projection mgl32.Mat4
	inverse    mgl32.Mat4
	planes     [6]Plane
}

// NewTrackballCamera creates a camera over an existing controller and mapper.
func NewTrackballCamera(ctrl *trackball.Controller, mapper *input.Mapper) *TrackballCamera {
	c := &TrackballCamera{
		ctrl:       ctrl,
		mapper:     mapper,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
		inverse:    mgl32.Ident4(),
	}
	c.refresh()
	return c
}

// NewCamera creates a camera with its own controller and mapping table.
// The input configuration's sensitivities are passed to the controller before
// options, so options may override them.
func NewCamera(frame trackball.Frame, scope trackball.Scope, cfg input.Config, options ...trackball.Option) (*TrackballCamera, error) {
	table, err := input.NewTable(cfg)
	if err != nil {
		return nil, errorx.Decorate(err, "new camera")
	}
	options = append([]trackball.Option{trackball.WithInputConfig(cfg)}, options...)
	ctrl, err := trackball.NewController(frame, scope, options...)
	if err != nil {
		return nil, errorx.Decorate(err, "new camera")
	}
	return NewTrackballCamera(ctrl, input.NewMapper(table)), nil
}

// Controller returns the underlying controller.
func (c *TrackballCamera) Controller() *trackball.Controller {
	return c.ctrl
}

// Frame returns the current camera frame.
func (c *TrackballCamera) Frame() trackball.Frame {
	return c.ctrl.Frame()
}

// Eye returns the camera position.
func (c *TrackballCamera) Eye() mgl32.Vec3 {
	return c.ctrl.Frame().Eye
}

// Update maps events to trackball operations and applies them.
func (c *TrackballCamera) Update(events []input.Event, dt time.Duration) {
	c.ctrl.Update(c.mapper.MapAll(events), dt)
}

// View returns the right-handed look-at matrix.
func (c *TrackballCamera) View() mgl32.Mat4 {
	c.refresh()
	return c.view
}

// Projection returns the projection matrix for aspect. An invalid aspect
// returns the matrix for the controller's viewport.
func (c *TrackballCamera) Projection(aspect float32) mgl32.Mat4 {
	c.refresh()
	if math32.IsNaN(aspect) || math32.IsInf(aspect, 0) || aspect <= 0 || aspect == c.aspect {
		return c.projection
	}
	return c.project(aspect)
}

// ViewProjection returns the combined projection and view matrix for the
// controller's viewport.
func (c *TrackballCamera) ViewProjection() mgl32.Mat4 {
	c.refresh()
	return c.projection.Mul4(c.view)
}

// Unproject maps ndc, x and y in [-1, 1], and depth in [0, 1] from the near
// to the far plane to a world space point.
func (c *TrackballCamera) Unproject(ndc mgl32.Vec2, depth float32) mgl32.Vec3 {
	c.refresh()
	p := c.inverse.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 2*depth - 1, 1})
	if p.W() == 0 {
		return c.ctrl.Frame().Eye
	}
	return p.Vec3().Mul(1 / p.W())
}

// UnprojectPixel is Unproject for a pixel position with the origin at the top left.
func (c *TrackballCamera) UnprojectPixel(x, y, depth float32) (mgl32.Vec3, error) {
	c.refresh()
	vp := c.ctrl.Viewport()
	return mgl32.UnProject(
		mgl32.Vec3{x, vp.Y() - y, depth},
		c.view, c.projection,
		0, 0, int(vp.X()), int(vp.Y()),
	)
}

// Project maps a world point to a pixel position with the origin at the top
// left and its depth in [0, 1]. The point is visible when depth is in range.
func (c *TrackballCamera) Project(p mgl32.Vec3) (pixel mgl32.Vec2, depth float32) {
	c.refresh()
	vp := c.ctrl.Viewport()
	win := mgl32.Project(p, c.view, c.projection, 0, 0, int(vp.X()), int(vp.Y()))
	return mgl32.Vec2{win.X(), vp.Y() - win.Y()}, win.Z()
}

// Ray returns the picking ray through ndc, starting on the near plane.
func (c *TrackballCamera) Ray(ndc mgl32.Vec2) (origin, dir mgl32.Vec3) {
	near := c.Unproject(ndc, 0)
	far := c.Unproject(ndc, 1)
	return near, far.Sub(near).Normalize()
}

// ClipPlanes returns the frustum planes ordered left, right, bottom, top, near, far.
func (c *TrackballCamera) ClipPlanes() [6]Plane {
	c.refresh()
	return c.planes
}

// refresh recomputes the cached matrices when the controller has changed.
// A zero viewport keeps the previous matrices.
func (c *TrackballCamera) refresh() {
	if c.cached && c.revision == c.ctrl.Revision() {
		return
	}
	vp := c.ctrl.Viewport()
	if vp.X() <= 0 || vp.Y() <= 0 {
		return
	}

	f := c.ctrl.Frame()
	aspect := vp.X() / vp.Y()
	view := mgl32.LookAtV(f.Eye, f.Target, f.Up)
	projection := c.project(aspect)
	inverse := projection.Mul4(view).Inv()
	if inverse == (mgl32.Mat4{}) {
		return
	}

	c.view = view
	c.projection = projection
	c.inverse = inverse
	c.planes = FrustumPlanes(projection.Mul4(view))
	c.aspect = aspect
	c.revision = c.ctrl.Revision()
	c.cached = true
}

func (c *TrackballCamera) project(aspect float32) mgl32.Mat4 {
	near, far := c.ctrl.ClipPlanes()
	fov := c.ctrl.Fov()
	if c.ctrl.Orthographic() {
		h := c.ctrl.Frame().Distance() * math32.Tan(fov/2)
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, near, far)
	}
	return mgl32.Perspective(fov, aspect, near, far)
}

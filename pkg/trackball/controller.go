package trackball

import (
	"io"
	"log"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/trackball/pkg/input"
)

// DefaultFov is the vertical field of view used when none is given.
const DefaultFov = math32.Pi / 4

// drag is the state of a gesture between button down and button up.
// Everything during a drag is computed from the anchor, never incrementally.
type drag struct {
	kind   DragKind
	anchor mgl32.Vec2
	frame  Frame
	moved  bool
}

// Controller turns trackball operations into Frame mutations.
//
// A Controller is owned by a single goroutine. Hosts that render from another
// goroutine must serialize access around frame boundaries.
type Controller struct {
	scope   Scope
	frame   Frame
	initial Frame

	fov        float32
	initialFov float32

	mode       Mode
	ortho      bool
	projection Projection

	rotateSensitivity float32
	panSensitivity    float32
	zoomSensitivity   float32

	viewport   mgl32.Vec2
	pointer    mgl32.Vec2
	hasPointer bool

	session *drag
	smooth  *smoother

	zoomAtCursor bool
	clickFocus   bool
	pivot        mgl32.Vec3
	pivoting     bool

	revision uint64
	log      *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithFov sets the initial vertical field of view in radians.
func WithFov(fov float32) Option {
	return func(c *Controller) {
		c.fov = fov
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(c *Controller) {
		c.mode = m
	}
}

// WithOrthographic starts with an orthographic projection.
func WithOrthographic(ortho bool) Option {
	return func(c *Controller) {
		c.ortho = ortho
	}
}

// WithProjection selects the trackball sphere projection.
func WithProjection(p Projection) Option {
	return func(c *Controller) {
		c.projection = p
	}
}

// WithSensitivity sets rotation, pan and zoom sensitivities.
func WithSensitivity(rotate, pan, zoom float32) Option {
	return func(c *Controller) {
		c.rotateSensitivity = rotate
		c.panSensitivity = pan
		c.zoomSensitivity = zoom
	}
}

// WithInputConfig takes the sensitivities and the cursor behaviour from an
// input configuration.
func WithInputConfig(cfg input.Config) Option {
	return func(c *Controller) {
		WithSensitivity(cfg.RotationSensitivity, cfg.PanSensitivity, cfg.ZoomSensitivity)(c)
		c.zoomAtCursor = cfg.ZoomAtCursor
		c.clickFocus = cfg.ClickToFocus
	}
}

// WithZoomAtCursor keeps the point under the pointer fixed while zooming in
// orbit mode instead of zooming towards the target.
func WithZoomAtCursor(enabled bool) Option {
	return func(c *Controller) {
		c.zoomAtCursor = enabled
	}
}

// WithClickFocus slides the target to the clicked point when a rotate drag
// ends without the pointer having moved, in orbit mode.
func WithClickFocus(enabled bool) Option {
	return func(c *Controller) {
		c.clickFocus = enabled
	}
}

// WithViewport sets the initial viewport size in pixels.
func WithViewport(width, height float32) Option {
	return func(c *Controller) {
		c.viewport = mgl32.Vec2{width, height}
	}
}

// WithZoomSmoothing eases zoom with a damped spring advanced by Update.
// Frequency is the angular frequency, damping 1 is critically damped.
// A zero frequency disables smoothing.
func WithZoomSmoothing(frequency, damping float64) Option {
	return func(c *Controller) {
		c.smooth = &smoother{frequency: frequency, damping: damping}
	}
}

// WithLogger logs skipped operations to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController creates a controller in orbit mode around frame.
// It fails for invalid scope bounds or an initial state outside them.
func NewController(frame Frame, scope Scope, options ...Option) (*Controller, error) {
	if err := scope.Validate(); err != nil {
		return nil, errorx.Decorate(err, "new controller")
	}

	if !frame.Valid() {
		return nil, ErrInvalidFrame.New("degenerate frame: eye %v, target %v, up %v", frame.Eye, frame.Target, frame.Up)
	}
	frame = frame.Orthonormalize()

	c := &Controller{
		scope:             scope,
		frame:             frame,
		initial:           frame,
		fov:               DefaultFov,
		projection:        ExponentialMap,
		rotateSensitivity: 1,
		panSensitivity:    1,
		zoomSensitivity:   0.1,
		viewport:          mgl32.Vec2{800, 600},
		log:               log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(c)
	}
	c.initialFov = c.fov

	if d := frame.Distance(); !scope.Distance.Contains(d) {
		return nil, ErrInvalidFrame.New("distance %v outside [%v, %v]", d, scope.Distance.Min, scope.Distance.Max)
	}
	if !finite(c.fov) || !scope.Fov.Contains(c.fov) {
		return nil, ErrInvalidFrame.New("field of view %v outside [%v, %v]", c.fov, scope.Fov.Min, scope.Fov.Max)
	}
	for _, s := range []float32{c.rotateSensitivity, c.panSensitivity, c.zoomSensitivity} {
		if !finite(s) || s <= 0 {
			return nil, errorx.IllegalArgument.New("sensitivity %v must be positive and finite", s)
		}
	}
	if !finite2(c.viewport) || c.viewport.X() <= 0 || c.viewport.Y() <= 0 {
		return nil, errorx.IllegalArgument.New("viewport %v must be positive", c.viewport)
	}
	if c.smooth != nil && c.smooth.frequency != 0 && !(c.smooth.frequency > 0 && c.smooth.damping > 0) {
		return nil, errorx.IllegalArgument.New("zoom smoothing frequency %v, damping %v", c.smooth.frequency, c.smooth.damping)
	}

	return c, nil
}

// Frame returns the current frame.
func (c *Controller) Frame() Frame { return c.frame }

// Initial returns the frame restored by Reset.
func (c *Controller) Initial() Frame { return c.initial }

// Scope returns the bounds the controller enforces.
func (c *Controller) Scope() Scope { return c.scope }

// Fov returns the current vertical field of view in radians.
func (c *Controller) Fov() float32 { return c.fov }

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Orthographic reports whether an orthographic projection is selected.
func (c *Controller) Orthographic() bool { return c.ortho }

// Viewport returns the viewport size in pixels.
func (c *Controller) Viewport() mgl32.Vec2 { return c.viewport }

// Revision increases with every change visible to a camera.
func (c *Controller) Revision() uint64 { return c.revision }

// ClipPlanes returns the near and far clip plane distances.
func (c *Controller) ClipPlanes() (near, far float32) {
	return c.scope.Clip.Planes(c.frame.Distance())
}

// Dragging returns the active drag kind.
func (c *Controller) Dragging() (DragKind, bool) {
	if c.session == nil {
		return 0, false
	}
	return c.session.kind, true
}

// SetReset replaces the frame restored by Reset.
func (c *Controller) SetReset(frame Frame) error {
	if !frame.Valid() {
		return ErrInvalidFrame.New("degenerate reset frame: eye %v, target %v, up %v", frame.Eye, frame.Target, frame.Up)
	}
	frame = frame.Orthonormalize()
	if d := frame.Distance(); !c.scope.Distance.Contains(d) {
		return ErrInvalidFrame.New("reset distance %v outside [%v, %v]", d, c.scope.Distance.Min, c.scope.Distance.Max)
	}
	c.initial = frame
	return nil
}

// Update applies a frame's operations in order and advances zoom smoothing by dt.
func (c *Controller) Update(ops []input.Op, dt time.Duration) {
	for _, op := range ops {
		c.Apply(op)
	}
	c.settle(dt)
}

// Apply applies a single operation. Operations that cannot be applied leave
// the controller unchanged.
func (c *Controller) Apply(op input.Op) {
	switch op.Kind {
	case input.BeginRotate:
		c.begin(DragRotate)
	case input.BeginPan:
		c.begin(DragPan)
	case input.ContinueDrag:
		c.continueDrag(op.Pos)
	case input.EndDrag:
		c.end()
	case input.Zoom:
		c.zoom(op.Delta)
	case input.Reset:
		c.reset()
	case input.ToggleFirstPerson:
		c.toggleMode()
	case input.ToggleOrthographic:
		c.ortho = !c.ortho
		c.revision++
	case input.SetViewport:
		c.setViewport(op.Size)
	default:
		c.log.Printf("trackball: ignoring unknown operation %v", op.Kind)
	}
}

func (c *Controller) begin(kind DragKind) {
	if !c.viewportValid() {
		c.log.Printf("trackball: ignoring %v begin: viewport %v", kind, c.viewport)
		return
	}
	anchor := c.viewport.Mul(0.5)
	if c.hasPointer {
		anchor = c.pointer
	}
	c.pivoting = false
	c.session = &drag{kind: kind, anchor: anchor, frame: c.frame}
}

// end finishes a drag. A rotate click that never moved focuses the clicked point.
func (c *Controller) end() {
	s := c.session
	c.session = nil
	if s == nil || s.moved || s.kind != DragRotate || !c.clickFocus || c.mode != Orbit || !c.viewportValid() {
		return
	}
	offset := c.pointAt(c.frame, s.anchor).Sub(c.frame.Target)
	next := c.frame
	next.Eye = next.Eye.Add(offset)
	next.Target = next.Target.Add(offset)
	c.commit(next, "focus")
}

// pointAt returns the world point under pixel position pos in the plane
// through the target facing the camera.
func (c *Controller) pointAt(f Frame, pos mgl32.Vec2) mgl32.Vec3 {
	v := Normalize(pos, c.viewport).Mul(c.worldPerUnit(f.Distance()))
	return f.Target.Add(f.Right().Mul(v.X())).Add(f.Up.Mul(v.Y()))
}

// worldPerUnit is the world length of one normalized screen unit at distance d.
func (c *Controller) worldPerUnit(d float32) float32 {
	radius := math32.Max(c.viewport.X(), c.viewport.Y()) / 2
	return c.viewHalfHeight(d) * radius / (c.viewport.Y() / 2)
}

func (c *Controller) continueDrag(pos mgl32.Vec2) {
	if !finite2(pos) {
		c.log.Printf("trackball: ignoring non-finite pointer %v", pos)
		return
	}
	c.pointer = pos
	c.hasPointer = true

	if c.session == nil {
		return
	}
	if !c.viewportValid() {
		c.log.Printf("trackball: ignoring drag: viewport %v", c.viewport)
		return
	}
	if pos == c.session.anchor {
		c.set(c.session.frame)
		return
	}
	c.session.moved = true

	switch c.session.kind {
	case DragRotate:
		c.rotate(pos)
	case DragPan:
		c.pan(pos)
	}
}

func (c *Controller) rotate(pos mgl32.Vec2) {
	s := c.session
	from := Normalize(s.anchor, c.viewport).Mul(c.rotateSensitivity)
	to := Normalize(pos, c.viewport).Mul(c.rotateSensitivity)

	rot := c.projection.Rotation(from, to)
	if rot.IsIdentity() {
		c.set(s.frame)
		return
	}

	// The sphere rolls by rot in view space, so the camera turns the other way.
	// Up is carried along by the same rotation.
	anchor := s.frame
	q := mgl32.QuatRotate(-rot.Angle, anchor.ToWorld(rot.Axis))

	next := anchor
	next.Up = q.Rotate(anchor.Up)
	switch c.mode {
	case Orbit:
		next.Eye = anchor.Target.Add(q.Rotate(anchor.Eye.Sub(anchor.Target)))
	case FirstPerson:
		next.Target = anchor.Eye.Add(q.Rotate(anchor.Target.Sub(anchor.Eye)))
	}
	c.commit(next, "rotate")
}

func (c *Controller) pan(pos mgl32.Vec2) {
	s := c.session
	d := Normalize(pos, c.viewport).Sub(Normalize(s.anchor, c.viewport))

	scale := c.worldPerUnit(s.frame.Distance()) * c.panSensitivity

	anchor := s.frame
	offset := anchor.Right().Mul(-d.X() * scale).Add(anchor.Up.Mul(-d.Y() * scale))

	next := anchor
	next.Eye = anchor.Eye.Add(offset)
	next.Target = anchor.Target.Add(offset)
	c.commit(next, "pan")
}

// viewHalfHeight is the half height of the view at distance d.
func (c *Controller) viewHalfHeight(d float32) float32 {
	return d * math32.Tan(c.fov/2)
}

func (c *Controller) zoom(delta float32) {
	factor := math32.Exp(-delta * c.zoomSensitivity)
	if !finite(factor) || factor <= 0 {
		c.log.Printf("trackball: ignoring zoom by %v", delta)
		return
	}

	switch c.mode {
	case Orbit:
		c.pivoting = c.zoomAtCursor && c.session == nil && c.hasPointer && c.viewportValid()
		if c.pivoting {
			c.pivot = c.pointAt(c.frame, c.pointer)
		}
		goal := c.scope.Distance.Clamp(c.zoomTarget(c.frame.Distance()) * factor)
		if c.smooth.enabled() {
			c.smooth.aim(goal)
			return
		}
		c.setDistance(goal)
		c.pivoting = false
	case FirstPerson:
		goal := c.scope.Fov.Clamp(c.zoomTarget(c.fov) * factor)
		if c.smooth.enabled() {
			c.smooth.aim(goal)
			return
		}
		c.setFov(goal)
	}
}

func (c *Controller) zoomTarget(current float32) float32 {
	if c.smooth.enabled() {
		return c.smooth.target(current)
	}
	return current
}

// settle advances zoom smoothing.
func (c *Controller) settle(dt time.Duration) {
	if !c.smooth.enabled() || !c.smooth.active {
		return
	}
	switch c.mode {
	case Orbit:
		c.setDistance(c.scope.Distance.Clamp(c.smooth.step(c.frame.Distance(), dt)))
		if !c.smooth.active {
			c.pivoting = false
		}
	case FirstPerson:
		c.setFov(c.scope.Fov.Clamp(c.smooth.step(c.fov, dt)))
	}
}

// finishSmoothing jumps to a pending zoom goal.
func (c *Controller) finishSmoothing() {
	if !c.smooth.enabled() || !c.smooth.active {
		return
	}
	goal := float32(c.smooth.goal)
	c.smooth.stop()
	switch c.mode {
	case Orbit:
		c.setDistance(c.scope.Distance.Clamp(goal))
		c.pivoting = false
	case FirstPerson:
		c.setFov(c.scope.Fov.Clamp(goal))
	}
}

// setDistance moves the eye along the view direction. With a zoom pivot the
// target scales towards it so the pivot stays under the pointer. An active drag
// keeps the new distance.
func (c *Controller) setDistance(d float32) {
	next := c.frame
	if c.pivoting && c.session == nil {
		ratio := d / c.frame.Distance()
		next.Target = c.pivot.Add(next.Target.Sub(c.pivot).Mul(ratio))
	}
	next.Eye = next.Target.Add(c.frame.Back().Mul(d))
	if !c.commit(next, "zoom") {
		return
	}
	if c.session != nil {
		a := c.session.frame
		a.Eye = a.Target.Add(a.Back().Mul(d))
		if a.Valid() {
			c.session.frame = a
		}
	}
}

func (c *Controller) setFov(fov float32) {
	if !finite(fov) {
		c.log.Printf("trackball: ignoring field of view %v", fov)
		return
	}
	c.fov = fov
	c.revision++
}

func (c *Controller) reset() {
	c.session = nil
	c.pivoting = false
	if c.smooth != nil {
		c.smooth.stop()
	}
	c.fov = c.initialFov
	c.set(c.initial)
}

func (c *Controller) toggleMode() {
	c.finishSmoothing()
	switch c.mode {
	case Orbit:
		c.mode = FirstPerson
	default:
		c.mode = Orbit
	}
	// A drag carries on from where the pointer is, under the new mode's rule.
	if s := c.session; s != nil {
		if c.hasPointer {
			s.anchor = c.pointer
		}
		s.frame = c.frame
	}
	c.revision++
}

func (c *Controller) setViewport(size mgl32.Vec2) {
	if !finite2(size) || size.X() <= 0 || size.Y() <= 0 {
		c.log.Printf("trackball: ignoring viewport %v", size)
		return
	}
	if size == c.viewport {
		return
	}
	c.viewport = size
	c.revision++
}

func (c *Controller) viewportValid() bool {
	return c.viewport.X() > 0 && c.viewport.Y() > 0
}

// set replaces the frame as is.
func (c *Controller) set(f Frame) {
	c.frame = f
	c.revision++
}

// commit orthonormalizes and stores f, keeping the previous frame when f is invalid.
func (c *Controller) commit(f Frame, what string) bool {
	f = f.Orthonormalize()
	if !f.Valid() {
		c.log.Printf("trackball: skipping %s: invalid frame %v", what, f)
		return false
	}
	c.set(f)
	return true
}

// Command trackball-ebiten draws a wireframe scene orbited with the trackball camera.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mgnsk/trackball/internal/cli"
	"github.com/mgnsk/trackball/internal/ebitenhost"
	"github.com/mgnsk/trackball/pkg/gfx"
	"github.com/mgnsk/trackball/pkg/input"
	"github.com/mgnsk/trackball/pkg/trackball"
	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	fov        float32
	hyperbolic bool
	smoothing  float64
	verbose    bool
)

var cubeCorners = []mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var (
	background = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	edgeColor  = color.RGBA{R: 230, G: 180, B: 80, A: 255}
	axisColors = [3]color.RGBA{{R: 220, A: 255}, {G: 220, A: 255}, {B: 255, G: 100, A: 255}}
)

type game struct {
	cam    *gfx.TrackballCamera
	queue  *input.Queue
	poller ebitenhost.Poller
	width  int
	height int
}

func (g *game) Update() error {
	g.poller.Poll(g.queue, g.width, g.height)
	events := g.queue.Drain()
	for _, e := range events {
		if e.Kind != input.KeyChanged || !e.Pressed {
			continue
		}
		switch e.Key {
		case input.KeyEscape:
			return ebiten.Termination
		case input.KeyP:
			spew.Fdump(os.Stderr, g.cam.Frame())
		}
	}
	g.cam.Update(events, time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) line(screen *ebiten.Image, a, b mgl32.Vec3, clr color.Color) {
	pa, da := g.cam.Project(a)
	pb, db := g.cam.Project(b)
	if da < 0 || da > 1 || db < 0 || db > 1 {
		return
	}
	vector.StrokeLine(screen, pa.X(), pa.Y(), pb.X(), pb.Y(), 1, clr, true)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	planes := g.cam.ClipPlanes()
	drawn := 0
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			offset := mgl32.Vec3{float32(x) * 4, 0, float32(z) * 4}
			if !gfx.SphereInFrustum(planes, offset, math32.Sqrt(3)) {
				continue
			}
			drawn++
			for _, e := range cubeEdges {
				g.line(screen, cubeCorners[e[0]].Add(offset), cubeCorners[e[1]].Add(offset), edgeColor)
			}
		}
	}
	for i, clr := range axisColors {
		var axis mgl32.Vec3
		axis[i] = 2
		g.line(screen, mgl32.Vec3{}, axis, clr)
	}

	ctrl := g.cam.Controller()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"mode: %v  ortho: %v  distance: %.2f  fov: %.1f°  cubes: %d\nleft drag rotate, right or shift drag pan, scroll zoom\nclick focus, enter reset, f first person, o orthographic, p dump frame",
		ctrl.Mode(), ctrl.Orthographic(), ctrl.Frame().Distance(), mgl32.RadToDeg(ctrl.Fov()), drawn,
	))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func run() error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	options := []trackball.Option{
		trackball.WithViewport(float32(width), float32(height)),
		trackball.WithFov(mgl32.DegToRad(fov)),
		trackball.WithZoomSmoothing(smoothing, 1),
	}
	if hyperbolic {
		options = append(options, trackball.WithProjection(trackball.Hyperbolic))
	}
	if verbose {
		options = append(options, trackball.WithLogger(logger))
	}

	frame := trackball.LookAt(mgl32.Vec3{6, 5, 12}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam, err := gfx.NewCamera(frame, trackball.DefaultScope(), input.DefaultConfig(), options...)
	if err != nil {
		return err
	}

	g := &game{
		cam:    cam,
		queue:  input.NewQueue(input.DefaultQueueCapacity),
		width:  width,
		height: height,
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("trackball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	if n := g.queue.Dropped(); n > 0 {
		logger.Printf("dropped %d input events", n)
	}
	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "trackball-ebiten",
		Short: "Orbit a wireframe scene with a trackball camera",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().IntVar(&width, "width", 800, "Window width")
	cmd.Flags().IntVar(&height, "height", 600, "Window height")
	cmd.Flags().Float32Var(&fov, "fov", 45, "Vertical field of view in degrees")
	cmd.Flags().BoolVar(&hyperbolic, "hyperbolic", false, "Use the hyperbolic sheet projection")
	cmd.Flags().Float64Var(&smoothing, "smoothing", 0, "Zoom spring frequency, 0 disables smoothing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log ignored operations")

	os.Exit(cli.Run(cmd, log.New(os.Stderr, "", log.LstdFlags)))
}

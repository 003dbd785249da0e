// Command trackball-glfw drives a trackball camera from a GLFW window and logs
// the resulting camera frames.
package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/trackball/internal/cli"
	"github.com/mgnsk/trackball/internal/glfwhost"
	"github.com/mgnsk/trackball/pkg/gfx"
	"github.com/mgnsk/trackball/pkg/input"
	"github.com/mgnsk/trackball/pkg/trackball"
	"github.com/spf13/cobra"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

var (
	width  int
	height int
	fov    float32
	rate   int
)

func run() error {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if rate <= 0 {
		return errorx.IllegalArgument.New("rate must be positive, got %d", rate)
	}

	if err := glfw.Init(); err != nil {
		return errorx.Decorate(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(width, height, "trackball", nil, nil)
	if err != nil {
		return errorx.Decorate(err, "create window")
	}
	defer win.Destroy()

	frame := trackball.LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam, err := gfx.NewCamera(frame, trackball.DefaultScope(), input.DefaultConfig(),
		trackball.WithFov(mgl32.DegToRad(fov)),
		trackball.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	q := input.NewQueue(input.DefaultQueueCapacity)
	glfwhost.Attach(win, q)

	tick := time.Second / time.Duration(rate)
	last := time.Now()
	revision := cam.Controller().Revision()

	for !win.ShouldClose() {
		glfw.WaitEventsTimeout(tick.Seconds())

		events := q.Drain()
		for _, e := range events {
			if e.Kind != input.KeyChanged || !e.Pressed {
				continue
			}
			switch e.Key {
			case input.KeyEscape:
				win.SetShouldClose(true)
			case input.KeyP:
				spew.Fdump(os.Stderr, cam.Frame(), cam.View())
			}
		}

		now := time.Now()
		cam.Update(events, now.Sub(last))
		last = now

		if r := cam.Controller().Revision(); r != revision {
			revision = r
			f := cam.Frame()
			logger.Printf("eye %v target %v up %v fov %.3f mode %v",
				f.Eye, f.Target, f.Up, cam.Controller().Fov(), cam.Controller().Mode())
		}
	}

	if n := q.Dropped(); n > 0 {
		logger.Printf("dropped %d input events", n)
	}
	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "trackball-glfw",
		Short: "Drive a trackball camera from a GLFW window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().IntVar(&width, "width", 800, "Window width")
	cmd.Flags().IntVar(&height, "height", 600, "Window height")
	cmd.Flags().Float32Var(&fov, "fov", 45, "Vertical field of view in degrees")
	cmd.Flags().IntVar(&rate, "rate", 60, "Updates per second")

	os.Exit(cli.Run(cmd, log.New(os.Stderr, "", log.LstdFlags)))
}

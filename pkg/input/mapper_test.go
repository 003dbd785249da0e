package input_test

import (
	"github.com/joomcode/errorx"
	"github.com/mgnsk/trackball/pkg/input"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mapper", func() {
	var m *input.Mapper

	BeforeEach(func() {
		m = input.NewDefaultMapper()
	})

	DescribeTable("default bindings",
		func(e input.Event, expected input.OpKind) {
			op, ok := m.Map(e)
			Expect(ok).To(BeTrue())
			Expect(op.Kind).To(Equal(expected))
		},
		Entry("left button", input.ButtonChange(input.ButtonLeft, true, 0), input.BeginRotate),
		Entry("left button with control", input.ButtonChange(input.ButtonLeft, true, input.ModControl), input.BeginRotate),
		Entry("left button with shift", input.ButtonChange(input.ButtonLeft, true, input.ModShift), input.BeginPan),
		Entry("right button", input.ButtonChange(input.ButtonRight, true, 0), input.BeginPan),
		Entry("left release", input.ButtonChange(input.ButtonLeft, false, 0), input.EndDrag),
		Entry("right release", input.ButtonChange(input.ButtonRight, false, input.ModAlt), input.EndDrag),
		Entry("pointer move", input.PointerMove(3, 4), input.ContinueDrag),
		Entry("scroll", input.Scroll(-1), input.Zoom),
		Entry("enter", input.KeyChange(input.KeyEnter, true, 0), input.Reset),
		Entry("f", input.KeyChange(input.KeyF, true, input.ModShift), input.ToggleFirstPerson),
		Entry("o", input.KeyChange(input.KeyO, true, 0), input.ToggleOrthographic),
		Entry("resize", input.Resize(800, 600), input.SetViewport),
	)

	DescribeTable("ignored events",
		func(e input.Event) {
			_, ok := m.Map(e)
			Expect(ok).To(BeFalse())
		},
		Entry("middle button", input.ButtonChange(input.ButtonMiddle, true, 0)),
		Entry("middle release", input.ButtonChange(input.ButtonMiddle, false, 0)),
		Entry("key release", input.KeyChange(input.KeyEnter, false, 0)),
		Entry("unbound key", input.KeyChange(input.KeyQ, true, 0)),
		Entry("zero scroll", input.Scroll(0)),
	)

	It("carries event arguments", func() {
		op, _ := m.Map(input.PointerMove(10, 20))
		Expect(op.Pos.X()).To(Equal(float32(10)))
		Expect(op.Pos.Y()).To(Equal(float32(20)))

		op, _ = m.Map(input.Scroll(2.5))
		Expect(op.Delta).To(Equal(float32(2.5)))

		op, _ = m.Map(input.Resize(640, 480))
		Expect(op.Size.X()).To(Equal(float32(640)))
		Expect(op.Size.Y()).To(Equal(float32(480)))
	})

	It("maps a batch in arrival order", func() {
		ops := m.MapAll([]input.Event{
			input.PointerMove(1, 1),
			input.ButtonChange(input.ButtonLeft, true, 0),
			input.KeyChange(input.KeyQ, true, 0),
			input.PointerMove(2, 2),
			input.ButtonChange(input.ButtonLeft, false, 0),
		})
		kinds := make([]input.OpKind, len(ops))
		for i, op := range ops {
			kinds[i] = op.Kind
		}
		Expect(kinds).To(Equal([]input.OpKind{
			input.ContinueDrag,
			input.BeginRotate,
			input.ContinueDrag,
			input.EndDrag,
		}))
	})

	When("scroll zoom is disabled", func() {
		BeforeEach(func() {
			cfg := input.DefaultConfig()
			cfg.ZoomScroll = false
			cfg.ResetKey = input.KeyR
			t, err := input.NewTable(cfg)
			Expect(err).NotTo(HaveOccurred())
			m = input.NewMapper(t)
		})

		It("ignores scrolling", func() {
			_, ok := m.Map(input.Scroll(1))
			Expect(ok).To(BeFalse())
		})

		It("uses the configured reset key", func() {
			_, ok := m.Map(input.KeyChange(input.KeyEnter, true, 0))
			Expect(ok).To(BeFalse())
			op, ok := m.Map(input.KeyChange(input.KeyR, true, 0))
			Expect(ok).To(BeTrue())
			Expect(op.Kind).To(Equal(input.Reset))
		})
	})
})

var _ = Describe("Config", func() {
	DescribeTable("rejects invalid configuration",
		func(mutate func(*input.Config)) {
			cfg := input.DefaultConfig()
			mutate(&cfg)
			_, err := input.NewTable(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errorx.IsOfType(err, errorx.IllegalArgument)).To(BeTrue())
		},
		Entry("zero rotation sensitivity", func(c *input.Config) { c.RotationSensitivity = 0 }),
		Entry("negative zoom sensitivity", func(c *input.Config) { c.ZoomSensitivity = -1 }),
		Entry("shared rotate and pan binding", func(c *input.Config) {
			c.PanButton = c.RotateButton
			c.PanMods = c.RotateMods
		}),
		Entry("shared rotate and alternate pan binding", func(c *input.Config) {
			c.AltPanMods = c.RotateMods
		}),
		Entry("shared reset and first person key", func(c *input.Config) {
			c.ToggleFirstPersonKey = c.ResetKey
		}),
		Entry("shared toggle keys", func(c *input.Config) {
			c.ToggleOrthographicKey = input.KeyF
		}),
	)

	It("allows several disabled keys", func() {
		cfg := input.DefaultConfig()
		cfg.ResetKey = input.KeyUnknown
		cfg.ToggleFirstPersonKey = input.KeyUnknown
		Expect(cfg.Validate()).To(Succeed())
	})

	It("accepts the defaults", func() {
		Expect(input.DefaultConfig().Validate()).To(Succeed())
	})
})

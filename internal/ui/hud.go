//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor       = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor       = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonHoverColor = color.RGBA{R: 70, G: 74, B: 86, A: 255}
	trackColor       = color.RGBA{R: 64, G: 70, B: 83, A: 255}
	knobColor        = color.RGBA{R: 196, G: 209, B: 238, A: 255}
)

var helpLines = []string{
	"Click a cell to toggle it",
	"Space start/stop  N step",
	"R random  C clear  G grid",
	"Q quit",
}

// HUD renders the control panel to the right of the board.
type HUD struct {
	ctl   Controller
	width int
	panel *ebiten.Image

	buttons []Button
	sliders []Slider
	values  []int

	intSetter core.IntParameterSetter
	intGetter core.IntParameterGetter

	panelOffsetX int
	dragging     int
	hover        Action
	title        string
}

// NewHUD constructs a HUD for the provided controller and panel width.
func NewHUD(ctl Controller, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		ctl:      ctl,
		width:    width,
		buttons:  LayoutButtons(width),
		dragging: -1,
		title:    "Conway's Game of Life",
	}
	if provider, ok := ctl.(core.ParameterControlsProvider); ok {
		h.sliders = LayoutSliders(provider.ParameterControls(), width)
		h.values = make([]int, len(h.sliders))
	}
	if setter, ok := ctl.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if getter, ok := ctl.(core.IntParameterGetter); ok {
		h.intGetter = getter
	}
	return h
}

// Update refreshes slider values, applies slider drags and returns the action
// of a button clicked this frame.
func (h *HUD) Update(panelOffsetX int) Action {
	if h == nil {
		return ActionNone
	}
	h.panelOffsetX = panelOffsetX
	h.refreshValues()

	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	h.hover = ButtonAt(h.buttons, px, my)

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.dragging = -1
	}
	if h.dragging >= 0 {
		h.applySlider(h.dragging, px)
		return ActionNone
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || px < 0 {
		return ActionNone
	}
	if action := ButtonAt(h.buttons, px, my); action != ActionNone {
		return action
	}
	for i := range h.sliders {
		if pointInRect(px, my, grabRect(h.sliders[i].Track)) {
			h.dragging = i
			h.applySlider(i, px)
			break
		}
	}
	return ActionNone
}

// Contains reports whether screen x lies on the panel.
func (h *HUD) Contains(x int) bool {
	return h != nil && PanelContains(h.panelOffsetX, h.width, x)
}

func (h *HUD) refreshValues() {
	if h.intGetter == nil {
		return
	}
	for i := range h.sliders {
		if v, ok := h.intGetter.IntParameter(h.sliders[i].Control.Key); ok {
			h.values[i] = v
		}
	}
}

func (h *HUD) applySlider(i, px int) {
	if h.intSetter == nil {
		return
	}
	s := h.sliders[i]
	target := int(math.Round(SliderValue(px, s.Track, s.Control)))
	if target == h.values[i] {
		return
	}
	if h.intSetter.SetIntParameter(s.Control.Key, target) {
		h.values[i] = target
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	running := h.ctl.Running()
	for _, b := range h.buttons {
		label := b.Label
		if b.Action == ActionStartStop && running {
			label = "Stop"
		}
		h.drawButton(b.Rect, label, b.Action == h.hover)
	}

	for i, s := range h.sliders {
		h.drawSlider(s, h.values[i])
	}

	y := StatusTop(len(h.sliders))
	for _, p := range h.ctl.Parameters() {
		text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, labelColor)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, hover bool) {
	bg := buttonColor
	if hover {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, labelColor)
}

func (h *HUD) drawSlider(s Slider, value int) {
	face := basicfont.Face7x13
	text.Draw(h.panel, s.Control.Label+": "+FormatSeconds(value), face, panelPadding, s.LabelY, labelColor)

	t := s.Track
	vector.DrawFilledRect(h.panel, float32(t.Min.X), float32(t.Min.Y), float32(t.Dx()), float32(t.Dy()), trackColor, false)
	cx := float32(SliderX(float64(value), t, s.Control))
	cy := float32(t.Min.Y) + float32(t.Dy())/2
	vector.DrawFilledCircle(h.panel, cx, cy, sliderKnob/2, knobColor, true)

	minLabel := FormatSeconds(int(s.Control.Min))
	maxLabel := FormatSeconds(int(s.Control.Max))
	below := t.Max.Y + lineHeight
	text.Draw(h.panel, minLabel, face, t.Min.X, below, dimColor)
	maxBounds := text.BoundString(face, maxLabel)
	text.Draw(h.panel, maxLabel, face, t.Max.X-maxBounds.Dx(), below, dimColor)
}

package ui

import (
	"image"
	"math"
	"strconv"

	"lifeboard/internal/core"
)

const (
	panelPadding   = 12
	headerBaseline = 18
	buttonHeight   = 28
	buttonGap      = 8
	sliderLabelGap = 22
	sliderHeight   = 8
	sliderKnob     = 12
	sliderSpacing  = 64
	lineHeight     = 18

	controlsTop = panelPadding + headerBaseline + 16
)

// PanelWidth is the default HUD width in pixels.
const PanelWidth = 232

// Button is a clickable HUD rectangle bound to an Action.
type Button struct {
	Action Action
	Label  string
	Rect   image.Rectangle
}

// Slider places a parameter control on the panel.
type Slider struct {
	Control core.ParameterControl
	// LabelY is the text baseline of the value label.
	LabelY int
	Track  image.Rectangle
}

// LayoutButtons lays out the Start/Stop, Random and Clear buttons in one row
// across a panel of the given width.
func LayoutButtons(width int) []Button {
	specs := []struct {
		action Action
		label  string
	}{
		{ActionStartStop, "Start"},
		{ActionRandom, "Random"},
		{ActionClear, "Clear"},
	}
	inner := width - 2*panelPadding - (len(specs)-1)*buttonGap
	bw := inner / len(specs)
	if bw < 1 {
		bw = 1
	}
	buttons := make([]Button, len(specs))
	for i, s := range specs {
		x := panelPadding + i*(bw+buttonGap)
		buttons[i] = Button{
			Action: s.action,
			Label:  s.label,
			Rect:   image.Rect(x, controlsTop, x+bw, controlsTop+buttonHeight),
		}
	}
	return buttons
}

// LayoutSliders stacks one slider per control below the buttons.
func LayoutSliders(controls []core.ParameterControl, width int) []Slider {
	top := controlsTop + buttonHeight + buttonGap
	sliders := make([]Slider, len(controls))
	for i, ctrl := range controls {
		labelY := top + i*sliderSpacing + lineHeight
		trackY := labelY + sliderLabelGap - sliderHeight
		sliders[i] = Slider{
			Control: ctrl,
			LabelY:  labelY,
			Track:   image.Rect(panelPadding, trackY, width-panelPadding, trackY+sliderHeight),
		}
	}
	return sliders
}

// StatusTop returns the baseline of the first status line below the sliders.
func StatusTop(sliderCount int) int {
	return controlsTop + buttonHeight + buttonGap + sliderCount*sliderSpacing + lineHeight
}

// SliderValue maps a cursor x position on track to a control value.
func SliderValue(x int, track image.Rectangle, ctrl core.ParameterControl) float64 {
	span := track.Dx() - 1
	if span <= 0 {
		return ctrl.Clamp(ctrl.Min)
	}
	t := float64(x-track.Min.X) / float64(span)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ctrl.Clamp(ctrl.Min + t*(ctrl.Max-ctrl.Min))
}

// SliderX maps a control value to the x position of the knob centre.
func SliderX(v float64, track image.Rectangle, ctrl core.ParameterControl) int {
	if ctrl.Max <= ctrl.Min {
		return track.Min.X
	}
	t := (ctrl.Clamp(v) - ctrl.Min) / (ctrl.Max - ctrl.Min)
	return track.Min.X + int(math.Round(t*float64(track.Dx()-1)))
}

// FormatSeconds renders a millisecond count as seconds, e.g. 500 -> "0.5s".
func FormatSeconds(ms int) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + "s"
}

// PanelContains reports whether screen x falls on a panel of the given width
// drawn at offsetX.
func PanelContains(offsetX, width, x int) bool {
	return x >= offsetX && x < offsetX+width
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// ButtonAt returns the action of the button under (x, y), if any.
func ButtonAt(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

// grabRect widens a slider track vertically so the knob is easy to hit.
func grabRect(track image.Rectangle) image.Rectangle {
	pad := (sliderKnob - sliderHeight) / 2
	return image.Rect(track.Min.X-pad, track.Min.Y-pad-2, track.Max.X+pad, track.Max.Y+pad+2)
}

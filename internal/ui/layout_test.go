package ui

import (
	"image"
	"testing"

	"lifeboard/internal/core"
)

var delayControl = core.ParameterControl{Key: "delay_ms", Type: core.ParamTypeInt, Step: 1, Min: 25, Max: 1000}

func TestLayoutButtonsFitPanel(t *testing.T) {
	buttons := LayoutButtons(PanelWidth)
	if len(buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(buttons))
	}
	wantActions := []Action{ActionStartStop, ActionRandom, ActionClear}
	for i, b := range buttons {
		if b.Action != wantActions[i] {
			t.Fatalf("button %d action %v, expected %v", i, b.Action, wantActions[i])
		}
		if b.Rect.Min.X < panelPadding || b.Rect.Max.X > PanelWidth-panelPadding {
			t.Fatalf("button %d %v outside padded panel", i, b.Rect)
		}
		if i > 0 && b.Rect.Min.X < buttons[i-1].Rect.Max.X {
			t.Fatalf("button %d overlaps its neighbour", i)
		}
	}
}

func TestButtonAt(t *testing.T) {
	buttons := LayoutButtons(PanelWidth)
	c := buttons[1].Rect
	if got := ButtonAt(buttons, c.Min.X+2, c.Min.Y+2); got != ActionRandom {
		t.Fatalf("ButtonAt inside Random = %v", got)
	}
	if got := ButtonAt(buttons, 0, 0); got != ActionNone {
		t.Fatalf("ButtonAt outside buttons = %v", got)
	}
}

func TestSliderValueMapsTrackEnds(t *testing.T) {
	track := image.Rect(10, 100, 211, 108)
	if got := SliderValue(track.Min.X, track, delayControl); got != 25 {
		t.Fatalf("left end = %v, expected 25", got)
	}
	if got := SliderValue(track.Max.X-1, track, delayControl); got != 1000 {
		t.Fatalf("right end = %v, expected 1000", got)
	}
	if got := SliderValue(-50, track, delayControl); got != 25 {
		t.Fatalf("left of track = %v, expected 25", got)
	}
	if got := SliderValue(500, track, delayControl); got != 1000 {
		t.Fatalf("right of track = %v, expected 1000", got)
	}
	mid := SliderValue(110, track, delayControl)
	if mid < 500 || mid > 525 {
		t.Fatalf("middle = %v, expected about 512", mid)
	}
}

func TestSliderRoundTrip(t *testing.T) {
	track := image.Rect(12, 0, 220, 8)
	for _, v := range []float64{25, 500, 1000} {
		x := SliderX(v, track, delayControl)
		got := SliderValue(x, track, delayControl)
		if diff := got - v; diff > 5 || diff < -5 {
			t.Fatalf("value %v -> x %d -> %v", v, x, got)
		}
	}
}

func TestLayoutSlidersBelowButtons(t *testing.T) {
	buttons := LayoutButtons(PanelWidth)
	sliders := LayoutSliders([]core.ParameterControl{delayControl}, PanelWidth)
	if len(sliders) != 1 {
		t.Fatalf("expected one slider, got %d", len(sliders))
	}
	if sliders[0].Track.Min.Y <= buttons[0].Rect.Max.Y {
		t.Fatal("slider overlaps the button row")
	}
	if StatusTop(1) <= sliders[0].Track.Max.Y {
		t.Fatal("status lines overlap the slider")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int]string{25: "0.025s", 500: "0.5s", 1000: "1s"}
	for ms, want := range tests {
		if got := FormatSeconds(ms); got != want {
			t.Fatalf("FormatSeconds(%d) = %q, expected %q", ms, got, want)
		}
	}
}

func TestPanelContains(t *testing.T) {
	tests := []struct {
		x    int
		want bool
	}{
		{699, false},
		{700, true},
		{931, true},
		{932, false},
	}
	for _, tt := range tests {
		if got := PanelContains(700, PanelWidth, tt.x); got != tt.want {
			t.Fatalf("PanelContains(700, %d, %d) = %v, expected %v", PanelWidth, tt.x, got, tt.want)
		}
	}
}

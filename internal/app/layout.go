package app

import "lifeboard/internal/core"

// minPanelHeight keeps the HUD readable on very short boards.
const minPanelHeight = 380

// WindowSize returns the logical screen size for a board drawn at scale with
// a HUD panel of panelWidth to its right.
func WindowSize(size core.Size, scale, panelWidth int) (w, h int) {
	if scale <= 0 {
		scale = 1
	}
	w = size.Cols*scale + panelWidth
	h = max(size.Rows*scale, minPanelHeight)
	return w, h
}

package picker

import "github.com/five82/swatch/internal/colormodel"

// TooWhiteThreshold is the contrast ratio against a white background below
// which a swatch gets an outline to stand out.
const TooWhiteThreshold = 1.25

// SwatchStyle is the presentation of the always-visible swatch.
type SwatchStyle struct {
	Fill          string
	ShowOutline   bool
	ShowFocusRing bool
}

// Present derives the swatch style for a color and dialog state.
func Present(color string, dialogOpen bool) SwatchStyle {
	style := SwatchStyle{Fill: color, ShowFocusRing: dialogOpen}
	if color == "" {
		return style
	}
	if ratio, err := colormodel.ContrastRatio(color); err == nil && ratio < TooWhiteThreshold {
		style.ShowOutline = true
	}
	return style
}

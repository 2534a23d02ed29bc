package ui

import (
	"testing"

	"github.com/five82/swatch/internal/picker"
)

func TestSliderAdjust_HueWraps(t *testing.T) {
	st := picker.NewState("hsl(355, 50%, 50%)")
	hueSlider.adjust(st, 10)
	if got := st.Components().H; got != 5 {
		t.Fatalf("hue = %v, want 5", got)
	}
	hueSlider.adjust(st, -10)
	if got := st.Components().H; got != 355 {
		t.Fatalf("hue = %v, want 355", got)
	}
}

func TestSliderAdjust_Clamps(t *testing.T) {
	st := picker.NewState("hsl(0, 95%, 50%)")
	satSlider.adjust(st, 10)
	if got := st.Components().S; got != 100 {
		t.Fatalf("saturation = %v, want 100", got)
	}

	alphaSlider.adjust(st, -200)
	if got := st.Components().A; got != 0 {
		t.Fatalf("alpha = %v, want 0", got)
	}
}

func TestPlaneAdjust(t *testing.T) {
	st := picker.NewState("hsl(120, 50%, 50%)")
	var notified int
	st.OnChange(func(string) { notified++ })

	plane{width: 10, height: 4}.adjust(st, 5, -5)
	c := st.Components()
	if c.S != 55 || c.L != 45 {
		t.Fatalf("components = %+v, want S=55 L=45", c)
	}
	if notified != 1 {
		t.Fatalf("notified %d times, want 1", notified)
	}
}

func TestSliderFormat(t *testing.T) {
	st := picker.NewState("hsla(200, 40%, 30%, 0.25)")
	c := st.Components()
	if got := hueSlider.format(c); got != "200°" {
		t.Fatalf("hue format = %q", got)
	}
	if got := satSlider.format(c); got != "40%" {
		t.Fatalf("saturation format = %q", got)
	}
	if got := alphaSlider.format(c); got != "0.25" {
		t.Fatalf("alpha format = %q", got)
	}
}

func TestMarkerColor(t *testing.T) {
	if got := markerColor("#ffffff"); got != "#000000" {
		t.Fatalf("markerColor(white) = %q, want black", got)
	}
	if got := markerColor("#000000"); got != "#ffffff" {
		t.Fatalf("markerColor(black) = %q, want white", got)
	}
}

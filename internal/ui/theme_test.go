package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("ThemeNames()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %s", name, got, name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", unknown.Name)
	}
}

func TestThemesDefineChromeColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, v := range map[string]string{
			"Background":  th.Background,
			"Surface":     th.Surface,
			"SurfaceAlt":  th.SurfaceAlt,
			"SelectionBg": th.SelectionBg,
			"Border":      th.Border,
			"BorderFocus": th.BorderFocus,
			"Text":        th.Text,
		} {
			if v == "" {
				t.Fatalf("%s.%s is empty", name, field)
			}
		}
	}
}

func TestMix(t *testing.T) {
	if got := mix("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("mix at 0 = %q, want #000000", got)
	}
	if got := mix("nope", "#ffffff", 0.5); got != "nope" {
		t.Fatalf("mix with bad input = %q, want input back", got)
	}
}

func TestDerivedSurfacesDiffer(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Surface == th.Background || th.SurfaceAlt == th.Surface {
			t.Fatalf("%s surfaces not stepped: %s %s %s", name, th.Background, th.Surface, th.SurfaceAlt)
		}
	}
}

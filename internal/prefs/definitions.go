package prefs

import "fmt"

// Definition describes one editable color preference.
type Definition struct {
	Name  string
	Label string
	// Default is the value used when the preference is unset.
	Default string
	// AllowTransparency is false for palette entries, which the terminal
	// renders opaque.
	AllowTransparency bool
}

// Tango palette.
var ansiDefaults = [16]string{
	"#000000", "#CC0000", "#4E9A06", "#C4A000",
	"#3465A4", "#75507B", "#06989A", "#D3D7CF",
	"#555753", "#EF2929", "#8AE234", "#FCE94F",
	"#729FCF", "#AD7FA8", "#34E2E2", "#EEEEEC",
}

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var definitions = buildDefinitions()

func buildDefinitions() []Definition {
	defs := []Definition{
		{Name: "background-color", Label: "Background", Default: "rgb(16, 16, 16)", AllowTransparency: true},
		{Name: "foreground-color", Label: "Foreground", Default: "rgb(240, 240, 240)", AllowTransparency: true},
		{Name: "cursor-color", Label: "Cursor", Default: "hsla(100, 60%, 80%, 0.5)", AllowTransparency: true},
	}
	for i, def := range ansiDefaults {
		label := ansiNames[i%8]
		if i >= 8 {
			label = "bright " + label
		}
		defs = append(defs, Definition{
			Name:    fmt.Sprintf("color-%d", i),
			Label:   label,
			Default: def,
		})
	}
	return defs
}

// Definitions returns every known color preference in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for name.
func Lookup(name string) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

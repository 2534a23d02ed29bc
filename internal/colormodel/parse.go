package colormodel

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	tdparse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// parsed is the normalized form of a color string. hsl is set when the
// input was written in hsl()/hsla() notation so the components can be
// returned without an RGB round trip.
type parsed struct {
	rgb   colorful.Color
	alpha float64
	hsl   *HSLA
}

func parse(input string) (parsed, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case s == "":
		return parsed{}, newParseError(input, "empty string")
	case s == "transparent":
		return parsed{alpha: 0}, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(input, s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return parsed{
			rgb:   colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255},
			alpha: 1,
		}, nil
	}
	return parseFunc(input, s)
}

func parseHex(input, digits string) (parsed, error) {
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return parsed{}, newParseError(input, "invalid hex digit %q", r)
		}
	}

	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 4:
		alpha = hexByte(strings.Repeat(digits[3:], 2))
		digits = digits[:3]
	case 8:
		alpha = hexByte(digits[6:])
		digits = digits[:6]
	default:
		return parsed{}, newParseError(input, "hex color must have 3, 4, 6 or 8 digits")
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return parsed{}, newParseError(input, "%v", err)
	}
	return parsed{rgb: c, alpha: alpha}, nil
}

func hexByte(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 1
	}
	return float64(v) / 255
}

// arg is one numeric argument of a functional color notation.
type arg struct {
	value float64
	unit  string // "", "%", "deg", "rad", "grad" or "turn"
}

var angleUnits = []string{"deg", "grad", "rad", "turn"}

// tokenizeFunc splits "name(a, b, c)" or "name(a b c / d)" into its name
// and arguments. Separators may not be mixed: either every argument is
// comma separated, or they are space separated with a "/" before the alpha
// argument, which is returned as the fourth argument.
func tokenizeFunc(input, s string) (string, []arg, error) {
	lexer := css.NewLexer(tdparse.NewInputString(s))

	name := ""
	var args []arg
	closed := false
	commas := 0
	slash := false
	expectArg := false
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if lexer.Err() != io.EOF {
				return "", nil, newParseError(input, "%v", lexer.Err())
			}
			if !closed {
				return "", nil, newParseError(input, "missing closing parenthesis")
			}
			return name, args, nil
		case css.WhitespaceToken:
			continue
		}

		if closed {
			return "", nil, newParseError(input, "unexpected %q after color", data)
		}

		switch tt {
		case css.FunctionToken:
			if name != "" {
				return "", nil, newParseError(input, "nested function %q", data)
			}
			name = strings.TrimSuffix(string(data), "(")
			expectArg = true
		case css.CommaToken:
			switch {
			case name == "":
				return "", nil, newParseError(input, "unexpected comma")
			case expectArg:
				return "", nil, newParseError(input, "empty argument")
			case slash || len(args) != commas+1:
				return "", nil, newParseError(input, "mixed comma and space separators")
			}
			commas++
			expectArg = true
		case css.DelimToken:
			if string(data) != "/" || len(args) != 3 || expectArg || commas > 0 {
				return "", nil, newParseError(input, "unexpected %q", data)
			}
			slash = true
			expectArg = true
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			switch {
			case name == "":
				return "", nil, newParseError(input, "number outside of function")
			case commas > 0 && !expectArg:
				return "", nil, newParseError(input, "missing comma")
			case commas == 0 && len(args) == 3 && !slash:
				return "", nil, newParseError(input, "alpha must follow \"/\"")
			}
			a, err := parseArg(string(data))
			if err != nil {
				return "", nil, newParseError(input, "%v", err)
			}
			args = append(args, a)
			expectArg = false
		case css.RightParenthesisToken:
			if name == "" {
				return "", nil, newParseError(input, "unexpected parenthesis")
			}
			if expectArg && (commas > 0 || slash) {
				return "", nil, newParseError(input, "missing argument before \")\"")
			}
			closed = true
		default:
			return "", nil, newParseError(input, "unexpected %q", data)
		}
	}
}

func parseArg(tok string) (arg, error) {
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		return arg{value: v, unit: "%"}, err
	}
	for _, u := range angleUnits {
		if strings.HasSuffix(tok, u) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(tok, u), 64)
			return arg{value: v, unit: u}, err
		}
	}
	v, err := strconv.ParseFloat(tok, 64)
	return arg{value: v}, err
}

func parseFunc(input, s string) (parsed, error) {
	name, args, err := tokenizeFunc(input, s)
	if err != nil {
		return parsed{}, err
	}
	if len(args) != 3 && len(args) != 4 {
		return parsed{}, newParseError(input, "%s() takes 3 or 4 arguments, got %d", name, len(args))
	}

	alpha := 1.0
	if len(args) == 4 {
		a := args[3]
		switch a.unit {
		case "":
			alpha = clamp(a.value, 0, 1)
		case "%":
			alpha = clamp(a.value/100, 0, 1)
		default:
			return parsed{}, newParseError(input, "invalid alpha unit %q", a.unit)
		}
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, a := range args[:3] {
			switch a.unit {
			case "":
				ch[i] = clamp(a.value/255, 0, 1)
			case "%":
				ch[i] = clamp(a.value/100, 0, 1)
			default:
				return parsed{}, newParseError(input, "invalid channel unit %q", a.unit)
			}
		}
		return parsed{rgb: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha: alpha}, nil

	case "hsl", "hsla":
		h, err := hueDegrees(args[0])
		if err != nil {
			return parsed{}, newParseError(input, "%v", err)
		}
		for _, a := range args[1:3] {
			if a.unit != "" && a.unit != "%" {
				return parsed{}, newParseError(input, "invalid percentage unit %q", a.unit)
			}
		}
		c := HSLA{
			H: wrapHue(h),
			S: clamp(args[1].value, 0, 100),
			L: clamp(args[2].value, 0, 100),
			A: alpha,
		}
		return parsed{
			rgb:   colorful.Hsl(c.H, c.S/100, c.L/100),
			alpha: alpha,
			hsl:   &c,
		}, nil
	}
	return parsed{}, newParseError(input, "unknown color function %q", name)
}

func hueDegrees(a arg) (float64, error) {
	switch a.unit {
	case "", "deg":
		return a.value, nil
	case "grad":
		return a.value * 0.9, nil
	case "rad":
		return a.value * 180 / math.Pi, nil
	case "turn":
		return a.value * 360, nil
	}
	return 0, fmt.Errorf("invalid hue unit %q", a.unit)
}

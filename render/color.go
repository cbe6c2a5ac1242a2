package render

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a fill colour with its own opacity
type Paint struct {
	Color colorful.Color
	Alpha float64
}

var namedColors = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
}

var paintCache sync.Map

// ParseColor accepts #rrggbb, rgba(r,g,b,a) and a few CSS names
// Unknown input yields opaque magenta so mistakes are visible
func ParseColor(s string) Paint {
	if v, ok := paintCache.Load(s); ok {
		return v.(Paint)
	}
	p := parseColor(s)
	paintCache.Store(s, p)
	return p
}

func parseColor(s string) Paint {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}

	if strings.HasPrefix(key, "rgba(") || strings.HasPrefix(key, "rgb(") {
		var r, g, b int
		a := 1.0
		body := key[strings.Index(key, "(")+1 : len(key)-1]
		body = strings.ReplaceAll(body, " ", "")
		n, _ := fmt.Sscanf(strings.ReplaceAll(body, ",", " "), "%d %d %d %g", &r, &g, &b, &a)
		if n >= 3 {
			return Paint{Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, Alpha: a}
		}
	}

	if c, err := colorful.Hex(key); err == nil {
		return Paint{Color: c, Alpha: 1}
	}
	return Paint{Color: colorful.Color{R: 1, B: 1}, Alpha: 1}
}

// WithAlpha returns a copy with opacity multiplied by a
func (p Paint) WithAlpha(a float64) Paint {
	p.Alpha *= a
	return p
}

// NRGBA converts to a non-premultiplied stdlib colour
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(p.Alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

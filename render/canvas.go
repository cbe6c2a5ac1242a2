package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/pixel-survivor/core"
)

// TextAlign anchors text horizontally at its x coordinate
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Label is text placed on the canvas, kept in device space for cell-based presenters
type Label struct {
	X, Y  int // anchor, Y is the baseline
	Align TextAlign
	Text  string
	Color colorful.Color
}

type drawState struct {
	m     Affine
	alpha float64
}

// Canvas is a software raster target with a save/restore transform stack
// Not safe for concurrent use
type Canvas struct {
	img    *image.RGBA
	state  drawState
	stack  []drawState
	labels []Label
	face   font.Face

	// RasterText draws glyphs into pixels in addition to recording labels
	RasterText bool

	scratch []float64
}

// NewCanvas allocates a w x h canvas
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		face:       basicfont.Face7x13,
		RasterText: true,
	}
	c.Resize(w, h)
	return c
}

// Resize reallocates the pixel buffer when dimensions change
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.state = drawState{m: Identity(), alpha: 1}
	c.stack = c.stack[:0]
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing pixels
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Labels returns text placed since the last Reset
func (c *Canvas) Labels() []Label {
	return c.labels
}

// Reset clears transforms, alpha and labels, then fills with bg
func (c *Canvas) Reset(bg Paint) {
	c.state = drawState{m: Identity(), alpha: 1}
	c.stack = c.stack[:0]
	c.labels = c.labels[:0]

	col := bg.NRGBA()
	fill := color.RGBA{R: col.R, G: col.G, B: col.B, A: 255}
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = fill.R, fill.G, fill.B, fill.A
	}
}

// Save pushes the current transform and alpha
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved state, unbalanced calls are ignored
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(x, y float64) { c.state.m = c.state.m.Translate(x, y) }
func (c *Canvas) Scale(sx, sy float64)   { c.state.m = c.state.m.Scale(sx, sy) }
func (c *Canvas) Rotate(theta float64)   { c.state.m = c.state.m.Rotate(theta) }

// Transform returns the current user-to-device transform
func (c *Canvas) Transform() Affine {
	return c.state.m
}

// SetAlpha sets the global opacity applied to every fill
func (c *Canvas) SetAlpha(a float64) {
	c.state.alpha = clamp01(a)
}

func (c *Canvas) Alpha() float64 {
	return c.state.alpha
}

// At returns the device pixel colour, out of range reads as black
func (c *Canvas) At(x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return colorful.Color{}
	}
	px := c.img.RGBAAt(x, y)
	return colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
}

// UserBounds returns the device rectangle expressed in user space
func (c *Canvas) UserBounds() (minX, minY, maxX, maxY float64) {
	inv, ok := c.state.m.Invert()
	if !ok {
		return 0, 0, 0, 0
	}
	w, h := float64(c.Width()), float64(c.Height())
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x, y := inv.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// FillRect fills an axis-aligned rectangle in user space
func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	if w == 0 || h == 0 {
		return
	}
	c.FillPolygon(p, core.V(x, y), core.V(x+w, y), core.V(x+w, y+h), core.V(x, y+h))
}

// FillPolygon fills a closed polygon using the even-odd rule
func (c *Canvas) FillPolygon(p Paint, pts ...core.Vec2) {
	if len(pts) < 3 {
		return
	}
	dev := make([]core.Vec2, len(pts))
	for i, pt := range pts {
		x, y := c.state.m.Apply(pt.X, pt.Y)
		dev[i] = core.V(x, y)
	}
	c.fillDevice(dev, p)
}

// FillEllipse fills an axis-aligned ellipse
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	n := c.segments(math.Max(rx, ry), 2*math.Pi)
	pts := make([]core.Vec2, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = core.V(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	c.FillPolygon(p, pts...)
}

// FillCircle fills a circle of radius r
func (c *Canvas) FillCircle(cx, cy, r float64, p Paint) {
	c.FillEllipse(cx, cy, r, r, p)
}

// StrokeLine draws a butt-capped segment of the given width
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, p Paint) {
	d := core.V(x2-x1, y2-y1).Normalize()
	if d.IsZero() || width <= 0 {
		return
	}
	n := core.V(-d.Y, d.X).Scale(width / 2)
	c.FillPolygon(p,
		core.V(x1+n.X, y1+n.Y),
		core.V(x2+n.X, y2+n.Y),
		core.V(x2-n.X, y2-n.Y),
		core.V(x1-n.X, y1-n.Y),
	)
}

// StrokeArc draws an arc band from start to end angle, increasing clockwise on screen
func (c *Canvas) StrokeArc(cx, cy, r, start, end, width float64, p Paint) {
	if end < start || width <= 0 || r <= 0 {
		return
	}
	outer, inner := r+width/2, math.Max(0, r-width/2)
	n := c.segments(outer, end-start)
	pts := make([]core.Vec2, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, core.V(cx+outer*math.Cos(a), cy+outer*math.Sin(a)))
	}
	for i := n; i >= 0; i-- {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, core.V(cx+inner*math.Cos(a), cy+inner*math.Sin(a)))
	}
	c.FillPolygon(p, pts...)
}

// DrawImage scales src into the user rectangle with nearest sampling
func (c *Canvas) DrawImage(src image.Image, x, y, w, h float64) {
	if src == nil || w == 0 || h == 0 {
		return
	}
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	c.sampleRect(x, y, w, h, func(ux, uy float64) color.NRGBA {
		sx := int((ux - x) / w * sw)
		sy := int((uy - y) / h * sh)
		return color.NRGBAModel.Convert(src.At(b.Min.X+sx, b.Min.Y+sy)).(color.NRGBA)
	})
}

// FillPattern fills the user rectangle with src repeated from the user origin
func (c *Canvas) FillPattern(src image.Image, x, y, w, h float64) {
	if src == nil || w == 0 || h == 0 {
		return
	}
	b := src.Bounds()
	if b.Empty() {
		return
	}
	sw, sh := b.Dx(), b.Dy()
	c.sampleRect(x, y, w, h, func(ux, uy float64) color.NRGBA {
		sx := floorMod(int(math.Floor(ux)), sw)
		sy := floorMod(int(math.Floor(uy)), sh)
		return color.NRGBAModel.Convert(src.At(b.Min.X+sx, b.Min.Y+sy)).(color.NRGBA)
	})
}

// FillText places text with its baseline at (x, y)
// The anchor is transformed; glyphs are never rotated or scaled
func (c *Canvas) FillText(text string, x, y float64, align TextAlign, p Paint) {
	if text == "" {
		return
	}
	dx, dy := c.state.m.Apply(x, y)
	ax, ay := int(math.Round(dx)), int(math.Round(dy))
	c.labels = append(c.labels, Label{X: ax, Y: ay, Align: align, Text: text, Color: p.Color})

	if !c.RasterText {
		return
	}
	width := font.MeasureString(c.face, text).Ceil()
	switch align {
	case AlignCenter:
		ax -= width / 2
	case AlignRight:
		ax -= width
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(p.WithAlpha(c.state.alpha).NRGBA()),
		Face: c.face,
		Dot:  fixed.P(ax, ay),
	}
	d.DrawString(text)
}

// WritePNG encodes the current pixels
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) segments(radius, sweep float64) int {
	r := radius * c.state.m.ScaleFactor()
	n := int(math.Ceil(r * sweep / 2))
	if n < 8 {
		n = 8
	}
	if n > 128 {
		n = 128
	}
	return n
}

// fillDevice scan-converts a device-space polygon sampling pixel centres
func (c *Canvas) fillDevice(pts []core.Vec2, p Paint) {
	a := p.Alpha * c.state.alpha
	if a <= 0 {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	y0 := int(math.Ceil(minY - 0.5))
	y1 := int(math.Ceil(maxY-0.5)) - 1
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.Height() {
		y1 = c.Height() - 1
	}

	width := c.Width()
	n := len(pts)
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs := c.scratch[:0]
		for i := 0; i < n; i++ {
			p1, p2 := pts[i], pts[(i+1)%n]
			if (p1.Y <= yc) != (p2.Y <= yc) {
				xs = append(xs, p1.X+(yc-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k] - 0.5))
			x1 := int(math.Ceil(xs[k+1] - 0.5))
			if x0 < 0 {
				x0 = 0
			}
			if x1 > width {
				x1 = width
			}
			for x := x0; x < x1; x++ {
				c.blend(x, y, p.Color, a)
			}
		}
		c.scratch = xs
	}
}

// sampleRect visits device pixels whose centres fall inside the transformed user rectangle
func (c *Canvas) sampleRect(x, y, w, h float64, sample func(ux, uy float64) color.NRGBA) {
	inv, ok := c.state.m.Invert()
	if !ok {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		dx, dy := c.state.m.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, dx), math.Max(maxX, dx)
		minY, maxY = math.Min(minY, dy), math.Max(maxY, dy)
	}
	bx0 := max(0, int(math.Floor(minX)))
	by0 := max(0, int(math.Floor(minY)))
	bx1 := min(c.Width(), int(math.Ceil(maxX)))
	by1 := min(c.Height(), int(math.Ceil(maxY)))

	for py := by0; py < by1; py++ {
		for px := bx0; px < bx1; px++ {
			ux, uy := inv.Apply(float64(px)+0.5, float64(py)+0.5)
			if ux < x || ux >= x+w || uy < y || uy >= y+h {
				continue
			}
			s := sample(ux, uy)
			if s.A == 0 {
				continue
			}
			col := colorful.Color{R: float64(s.R) / 255, G: float64(s.G) / 255, B: float64(s.B) / 255}
			c.blend(px, py, col, float64(s.A)/255*c.state.alpha)
		}
	}
}

func (c *Canvas) blend(x, y int, src colorful.Color, a float64) {
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]
	out := src
	if a < 1 {
		dst := colorful.Color{R: float64(pix[0]) / 255, G: float64(pix[1]) / 255, B: float64(pix[2]) / 255}
		out = dst.BlendRgb(src, a)
	}
	r, g, b := out.Clamped().RGB255()
	pix[0], pix[1], pix[2], pix[3] = r, g, b, 255
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

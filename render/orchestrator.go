package render

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/status"
)

// ClearColor is the backdrop behind every frame
const ClearColor = "#1a1a1a"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
// Frames are serialized; it may be driven by the loop goroutine or, between games, by the main goroutine
type RenderOrchestrator struct {
	mu        sync.Mutex
	presenter Presenter
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
	zoom      float64

	statErrors *atomic.Int64
}

// NewRenderOrchestrator creates an orchestrator with the given presenter and canvas dimensions
func NewRenderOrchestrator(presenter Presenter, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		presenter: presenter,
		canvas:    NewCanvas(width, height),
		renderers: make([]rendererEntry, 0, 16),
		zoom:      1,
	}
}

// SetMetrics counts presentation failures into the registry
func (o *RenderOrchestrator) SetMetrics(reg *status.Registry) {
	if reg != nil {
		o.statErrors = reg.Ints.Get("render.present_errors")
	}
}

// SetZoom sets the magnification of the logical viewport
func (o *RenderOrchestrator) SetZoom(z float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if z > 0 {
		o.zoom = z
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates canvas dimensions
func (o *RenderOrchestrator) Resize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.canvas.Resize(width, height)
}

// SetRasterText toggles glyph rasterization on the canvas
func (o *RenderOrchestrator) SetRasterText(on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.canvas.RasterText = on
}

// RenderWorld implements engine.Renderer
func (o *RenderOrchestrator) RenderWorld(w *engine.World, paused bool) {
	state := core.StatePlaying
	if paused {
		state = core.StatePaused
	}
	o.RenderState(w, state)
}

// RenderState renders one frame for the given application state; w may be nil
func (o *RenderOrchestrator) RenderState(w *engine.World, state core.GameState) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	ctx := NewRenderContext(w, state, o.canvas.Width(), o.canvas.Height(), o.zoom)
	o.draw(ctx)

	if o.presenter == nil {
		return nil
	}
	err := o.presenter.Present(o.canvas)
	if err != nil && o.statErrors != nil {
		o.statErrors.Add(1)
	}
	return err
}

// Snapshot runs fn with the last rendered canvas under the frame lock
func (o *RenderOrchestrator) Snapshot(fn func(c *Canvas) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fn(o.canvas)
}

// RenderFrame executes the render pipeline into the canvas without presenting
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) *Canvas {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.draw(ctx)
	return o.canvas
}

func (o *RenderOrchestrator) draw(ctx RenderContext) {
	o.canvas.Reset(ParseColor(ClearColor))

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		o.canvas.Save()
		entry.renderer.Render(ctx, o.canvas)
		o.canvas.Restore()
		o.canvas.SetAlpha(1)
	}
}

package render

// SystemRenderer draws one layer of the frame
// Render must not mutate world state
type SystemRenderer interface {
	Render(ctx RenderContext, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Presenter shows a finished canvas
type Presenter interface {
	Present(c *Canvas) error
}

package terminal

import (
	"fmt"
	"image/color"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// halfBlock shows the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Screen presents canvases on a tcell screen and polls its input
// Each cell carries two vertically stacked pixels
type Screen struct {
	screen tcell.Screen
	logger zerolog.Logger

	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	inited  bool
	running bool
	stopped bool
}

// NewScreen wraps screen; nil creates the platform terminal on Init
func NewScreen(screen tcell.Screen, logger zerolog.Logger) *Screen {
	return &Screen{
		screen: screen,
		logger: logger,
		events: make(chan tcell.Event, 256),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Screen) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *Screen) Dependencies() []string {
	return nil
}

// Init implements service.Service, switching the terminal to raw mode
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inited {
		return nil
	}

	if s.screen == nil {
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal create: %w", err)
		}
		s.screen = scr
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()

	core.SetCrashHook(s.screen.Fini)
	s.inited = true

	w, h := s.screen.Size()
	s.logger.Debug().Int("cols", w).Int("rows", h).Int("colors", s.screen.Colors()).Msg("terminal ready")
	return nil
}

// Start implements service.Service, launching the input poller
func (s *Screen) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inited {
		return fmt.Errorf("terminal start: not initialized")
	}
	if s.running || s.stopped {
		return nil
	}
	s.running = true
	core.Go(s.pollLoop)
	return nil
}

// Events delivers terminal events in arrival order
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

func (s *Screen) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-s.stopCh:
			return
		default:
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements service.Service, stopping the poller and restoring the terminal
func (s *Screen) Stop() error {
	s.mu.Lock()
	if !s.inited || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	if wasRunning {
		// Synthetic event unblocks PollEvent
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}
	s.screen.Fini()
	core.SetCrashHook(nil)
	return nil
}

// CanvasSize returns the pixel dimensions matching the terminal grid
func (s *Screen) CanvasSize() (int, int) {
	w, h := s.screen.Size()
	return w, h * 2
}

// Sync redraws the whole terminal after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Present implements render.Presenter
func (s *Screen) Present(c *render.Canvas) error {
	s.mu.Lock()
	active := s.inited && !s.stopped
	s.mu.Unlock()
	if !active {
		return fmt.Errorf("terminal present: screen not active")
	}

	img := c.Image()
	cols, rows := s.screen.Size()
	cw, ch := c.Width(), c.Height()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := tcell.ColorBlack, tcell.ColorBlack
			if x < cw && 2*y < ch {
				top = rgbColor(img.RGBAAt(x, 2*y))
			}
			if x < cw && 2*y+1 < ch {
				bottom = rgbColor(img.RGBAAt(x, 2*y+1))
			}
			s.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	for _, l := range c.Labels() {
		s.drawLabel(l, cols, rows)
	}

	s.screen.Show()
	return nil
}

// drawLabel prints text on the row holding the pixel just above the baseline
func (s *Screen) drawLabel(l render.Label, cols, rows int) {
	if l.Y <= 0 {
		return
	}
	row := (l.Y - 1) / 2
	if row >= rows {
		return
	}

	n := utf8.RuneCountInString(l.Text)
	col := l.X
	switch l.Align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}

	r, g, b := l.Color.Clamped().RGB255()
	fg := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	for _, ch := range l.Text {
		if col >= cols {
			break
		}
		if col >= 0 {
			// Keep the cell's lower pixel as the text background
			_, _, st, _ := s.screen.GetContent(col, row)
			_, bg, _ := st.Decompose()
			s.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		col++
	}
}

func rgbColor(p color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

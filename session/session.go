// Package session drives the application state machine around one game world
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/input"
	"github.com/lixenwraith/pixel-survivor/quest"
	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/render/renderers"
	"github.com/lixenwraith/pixel-survivor/save"
	"github.com/lixenwraith/pixel-survivor/status"
	"github.com/lixenwraith/pixel-survivor/systems"
	"github.com/lixenwraith/pixel-survivor/vmath"
	"github.com/lixenwraith/pixel-survivor/worldgen"
)

// messageTTL is how long a status line stays on screen
const messageTTL = 3 * time.Second

// Audio is the sound sink with a user-facing mute switch
type Audio interface {
	engine.AudioPlayer
	ToggleMute() bool
	IsMuted() bool
}

// SaveStore persists a single save slot
type SaveStore interface {
	Save(gs save.GameSave) error
	Load() (save.GameSave, error)
	Exists() bool
}

// Toggler flips an overlay on or off
type Toggler interface {
	Toggle() bool
}

// Deps are the collaborators a session drives
type Deps struct {
	Orchestrator *render.RenderOrchestrator
	Audio        Audio
	Quests       *quest.Board
	Store        SaveStore
	Input        *input.State
	Debug        Toggler
	Registry     *status.Registry
	Logger       zerolog.Logger
}

// Options tune world creation and the frame loop
type Options struct {
	FPS           int
	Deterministic bool
	ScreenshotDir string
	Clock         engine.Clock
}

// NoticeKind distinguishes loop notifications
type NoticeKind int

const (
	NoticeSnapshot NoticeKind = iota
	NoticeGameOver
)

// Notice carries a loop notification to the main goroutine
// Gen identifies the world that produced it; stale notices are ignored
type Notice struct {
	Kind   NoticeKind
	Gen    uint64
	Player components.Player
}

// Session owns the menu form, the running world and the user commands around it
// Handle, HandleNotice and Redraw run on the main goroutine; the sources are read by the render path
type Session struct {
	deps Deps
	opts Options
	log  zerolog.Logger
	rng  *vmath.FastRand

	state   atomic.Int32
	notices chan Notice

	ctx    context.Context
	cancel context.CancelFunc

	// Main goroutine only
	gen      uint64
	world    *engine.World
	loop     *engine.Loop
	snapshot components.Player

	// Shared with the render path
	mu         sync.Mutex
	code       []rune
	role       core.Role
	seed       string
	message    string
	messageEnd time.Time
}

// New creates a session showing the menu
func New(deps Deps, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.FPS <= 0 {
		opts.FPS = constants.DefaultFPS
	}
	if deps.Audio == nil {
		deps.Audio = silentAudio{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		deps:    deps,
		opts:    opts,
		log:     deps.Logger.With().Str("component", "session").Logger(),
		rng:     vmath.NewFastRand(uint64(time.Now().UnixNano())),
		notices: make(chan Notice, 16),
		ctx:     ctx,
		cancel:  cancel,
	}
	s.state.Store(int32(core.StateMenu))
	return s
}

// State returns the current application phase
func (s *Session) State() core.GameState {
	return core.GameState(s.state.Load())
}

func (s *Session) setState(gs core.GameState) {
	prev := core.GameState(s.state.Swap(int32(gs)))
	if prev != gs {
		s.log.Debug().Stringer("from", prev).Stringer("to", gs).Msg("state change")
	}
}

// Notices delivers loop notifications; the receiver passes each to HandleNotice
func (s *Session) Notices() <-chan Notice {
	return s.notices
}

// World returns the current world, nil in the menu before the first game
func (s *Session) World() *engine.World {
	return s.world
}

// Seed returns the room code of the current world
func (s *Session) Seed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Snapshot returns the latest player snapshot received from the loop
func (s *Session) Snapshot() components.Player {
	return s.snapshot
}

func (s *Session) setMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.messageEnd = s.opts.Clock.Now().Add(messageTTL)
	s.mu.Unlock()
}

func (s *Session) currentMessageLocked() string {
	if s.message == "" || !s.opts.Clock.Now().Before(s.messageEnd) {
		return ""
	}
	return s.message
}

// HUDInfo implements renderers.HUDSource
func (s *Session) HUDInfo() renderers.HUDInfo {
	s.mu.Lock()
	info := renderers.HUDInfo{
		RoomCode: s.seed,
		Message:  s.currentMessageLocked(),
	}
	s.mu.Unlock()

	if s.deps.Quests != nil {
		info.Quests = s.deps.Quests.Quests()
		info.QuestPending = s.deps.Quests.Pending()
	}
	info.Muted = s.deps.Audio.IsMuted()
	return info
}

// MenuInfo implements renderers.MenuSource
func (s *Session) MenuInfo() renderers.MenuInfo {
	s.mu.Lock()
	info := renderers.MenuInfo{
		Code:    string(s.code),
		Role:    s.role,
		Message: s.currentMessageLocked(),
	}
	s.mu.Unlock()

	info.CanContinue = s.deps.Store != nil && s.deps.Store.Exists()
	return info
}

// SetDebugToggle attaches the metrics overlay switched by the debug key
func (s *Session) SetDebugToggle(t Toggler) {
	s.deps.Debug = t
}

// Sources wires the session into the interface layers
func (s *Session) Sources() renderers.Sources {
	return renderers.Sources{HUD: s.HUDInfo, Menu: s.MenuInfo}
}

// Redraw renders one frame when no loop is driving the screen
func (s *Session) Redraw() {
	if s.deps.Orchestrator == nil || (s.loop != nil && s.loop.Running()) {
		return
	}
	state := s.State()
	w := s.world
	if state == core.StateMenu {
		w = nil
	}
	if err := s.deps.Orchestrator.RenderState(w, state); err != nil {
		s.log.Warn().Err(err).Msg("redraw failed")
	}
}

// StartGame builds a fresh world for code and role and starts its loop
func (s *Session) StartGame(code string, role core.Role) {
	seed := NormalizeCode(code, s.rng)
	layout := worldgen.Generate(seed, worldgen.Options{Deterministic: s.opts.Deterministic})
	s.launch(layout, components.NewPlayer(role), nil)
	s.log.Info().Str("seed", seed).Stringer("role", role).Int("enemies", len(layout.Enemies)).Msg("game started")
}

// Continue resumes the saved game; false when there is nothing to resume
func (s *Session) Continue() bool {
	if s.deps.Store == nil {
		return false
	}
	gs, err := s.deps.Store.Load()
	if err != nil {
		if err == save.ErrNoSave {
			s.setMessage("No saved game")
		} else {
			s.log.Error().Err(err).Msg("load save failed")
			s.setMessage("Save file unreadable")
		}
		return false
	}

	player := gs.Player
	layout := worldgen.Generate(gs.Seed, worldgen.Options{Deterministic: s.opts.Deterministic})
	s.launch(layout, &player, gs.Quests)
	s.log.Info().Str("seed", gs.Seed).Str("save", gs.ID).Time("saved_at", gs.SavedAt).Msg("game resumed")
	return true
}

func (s *Session) launch(layout worldgen.Layout, player *components.Player, quests []components.Quest) {
	s.stopLoop()

	s.gen++
	gen := s.gen

	w := engine.NewWorld(layout, player)
	systems.RegisterAll(w)
	w.Audio = s.deps.Audio
	w.SetMetrics(s.deps.Registry)
	w.Observer = engine.ObserverFuncs{
		Snapshot: func(p components.Player) {
			// The loop is the only sender; one slot stays free for game over
			if len(s.notices) < cap(s.notices)-1 {
				s.notices <- Notice{Kind: NoticeSnapshot, Gen: gen, Player: p}
			}
		},
		GameOver: func() {
			s.notices <- Notice{Kind: NoticeGameOver, Gen: gen}
		},
	}

	if s.deps.Quests != nil {
		s.deps.Quests.Restore(quests)
	}
	if s.deps.Input != nil {
		s.deps.Input.Release()
	}

	s.world = w
	s.snapshot = player.Clone()
	s.mu.Lock()
	s.seed = layout.Seed
	s.mu.Unlock()

	var src engine.InputSource
	if s.deps.Input != nil {
		src = s.deps.Input
	}
	var renderer engine.Renderer
	if s.deps.Orchestrator != nil {
		renderer = s.deps.Orchestrator
	}
	s.loop = engine.NewLoop(w, src, renderer, s.opts.Clock, s.opts.FPS)
	s.loop.SetMetrics(s.deps.Registry)

	s.setState(core.StatePlaying)
	s.loop.Start()
}

func (s *Session) stopLoop() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

// HandleNotice applies a loop notification on the main goroutine
func (s *Session) HandleNotice(n Notice) {
	if n.Gen != s.gen {
		return
	}
	switch n.Kind {
	case NoticeSnapshot:
		s.snapshot = n.Player
	case NoticeGameOver:
		s.stopLoop()
		s.snapshot = s.world.Player.Clone()
		s.setState(core.StateGameOver)
		s.log.Info().Int("level", s.snapshot.Level).Str("seed", s.Seed()).Msg("player died")
		s.Redraw()
	}
}

// Name implements service.Service
func (s *Session) Name() string {
	return "session"
}

// Dependencies implements service.Service
func (s *Session) Dependencies() []string {
	return []string{"terminal", "audio", "assets"}
}

// Init implements service.Service
func (s *Session) Init() error {
	return nil
}

// Start implements service.Service, showing the menu
func (s *Session) Start() error {
	s.Redraw()
	return nil
}

// Stop implements service.Service, halting the loop and pending quest work
func (s *Session) Stop() error {
	s.stopLoop()
	s.cancel()
	if s.deps.Quests != nil {
		s.deps.Quests.Wait()
	}
	return nil
}

type silentAudio struct{}

func (silentAudio) Play(core.Cue)     {}
func (silentAudio) ToggleMute() bool { return false }
func (silentAudio) IsMuted() bool    { return false }

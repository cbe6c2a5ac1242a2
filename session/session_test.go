package session

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/input"
	"github.com/lixenwraith/pixel-survivor/quest"
	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/render/renderers"
	"github.com/lixenwraith/pixel-survivor/save"
	"github.com/lixenwraith/pixel-survivor/status"
	"github.com/lixenwraith/pixel-survivor/vmath"
)

type recordingAudio struct {
	mu    sync.Mutex
	cues  []core.Cue
	muted bool
}

func (a *recordingAudio) Play(c core.Cue) {
	a.mu.Lock()
	a.cues = append(a.cues, c)
	a.mu.Unlock()
}

func (a *recordingAudio) ToggleMute() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = !a.muted
	return a.muted
}

func (a *recordingAudio) IsMuted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

func (a *recordingAudio) played(c core.Cue) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, got := range a.cues {
		if got == c {
			return true
		}
	}
	return false
}

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, p components.Player) components.Quest {
	return components.Quest{ID: "q-" + p.Role.String(), Title: "Hold the Bridge"}
}

type fixture struct {
	s     *Session
	audio *recordingAudio
	store *save.JSONStore
	board *quest.Board
	in    *input.State
	dir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	reg := status.NewRegistry()
	f := &fixture{
		audio: &recordingAudio{},
		store: save.NewJSONStore(filepath.Join(dir, "save.json")),
		board: quest.NewBoard(stubGenerator{}),
		in:    input.NewState(nil, 0),
		dir:   dir,
	}

	orch := render.NewRenderOrchestrator(nil, 80, 60)
	f.s = New(Deps{
		Orchestrator: orch,
		Audio:        f.audio,
		Quests:       f.board,
		Store:        f.store,
		Input:        f.in,
		Registry:     reg,
		Logger:       zerolog.Nop(),
	}, Options{FPS: 120, Deterministic: true, ScreenshotDir: filepath.Join(dir, "shots")})
	f.s.SetDebugToggle(renderers.RegisterAll(orch, nil, reg, f.s.Sources()))

	t.Cleanup(func() { f.s.Stop() })
	return f
}

func (f *fixture) typeCode(code string) {
	for _, r := range code {
		f.s.Handle(input.Event{Action: input.ActionChar, Rune: r})
	}
}

// waitNotice pumps notices until one of kind arrives
func (f *fixture) waitNotice(t *testing.T, kind NoticeKind) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case n := <-f.s.Notices():
			f.s.HandleNotice(n)
			if n.Kind == kind {
				return
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for notice %d", kind)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	rng := vmath.NewFastRand(7)
	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{"full", "abc123", true},
		{"padded", "  ZZ9ZZ9 ", true},
		{"short", "abc", false},
		{"empty", "", false},
		{"long", "ABCDEFG", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCode(tt.in, rng)
			if len(got) != 6 {
				t.Fatalf("Expected 6 characters, got %q", got)
			}
			if tt.keep && got != strings.ToUpper(strings.TrimSpace(tt.in)) {
				t.Errorf("Expected %q kept, got %q", tt.in, got)
			}
			for _, r := range got {
				if !strings.ContainsRune(codeAlphabet, r) {
					t.Errorf("Unexpected character %q in %q", r, got)
				}
			}
		})
	}
}

func TestMenuForm(t *testing.T) {
	f := newFixture(t)

	f.typeCode("ABCDEFGH")
	if got := f.s.MenuInfo().Code; got != "ABCDEF" {
		t.Errorf("Expected code capped at 6, got %q", got)
	}
	f.s.Handle(input.Event{Action: input.ActionBackspace})
	if got := f.s.MenuInfo().Code; got != "ABCDE" {
		t.Errorf("Expected backspace to trim, got %q", got)
	}

	roles := []struct {
		action input.Action
		want   core.Role
	}{
		{input.ActionRolePrev, core.RoleTank},
		{input.ActionRoleNext, core.RoleSoldier},
		{input.ActionRoleNext, core.RoleScout},
		{input.ActionRoleNext, core.RoleMedic},
	}
	for _, step := range roles {
		f.s.Handle(input.Event{Action: step.action})
		if got := f.s.MenuInfo().Role; got != step.want {
			t.Errorf("Expected %v, got %v", step.want, got)
		}
	}

	if f.s.State() != core.StateMenu {
		t.Errorf("Expected menu state, got %v", f.s.State())
	}
	if f.s.MenuInfo().CanContinue {
		t.Error("Expected no continue without a save")
	}
}

func TestQuitFromAnyState(t *testing.T) {
	f := newFixture(t)
	if !f.s.Handle(input.Event{Action: input.ActionQuit}) {
		t.Error("Expected quit from menu")
	}
	f.s.StartGame("ABCDEF", core.RoleSoldier)
	if !f.s.Handle(input.Event{Action: input.ActionQuit}) {
		t.Error("Expected quit while playing")
	}
}

func TestStartGameAndGameOver(t *testing.T) {
	f := newFixture(t)
	f.typeCode("ABCDEF")
	f.s.Handle(input.Event{Action: input.ActionRoleNext})
	f.s.Handle(input.Event{Action: input.ActionConfirm})

	if f.s.State() != core.StatePlaying {
		t.Fatalf("Expected playing, got %v", f.s.State())
	}
	w := f.s.World()
	if w.Seed != "ABCDEF" || f.s.Seed() != "ABCDEF" {
		t.Errorf("Expected seed ABCDEF, got %q", w.Seed)
	}
	if len(w.Structures) != 5 {
		t.Errorf("Expected 5 structures, got %d", len(w.Structures))
	}
	if f.s.Snapshot().Role != core.RoleScout {
		t.Errorf("Expected scout snapshot, got %v", f.s.Snapshot().Role)
	}
	if !f.audio.played(core.CueBackgroundStart) {
		t.Error("Expected background music started")
	}
	if hud := f.s.HUDInfo(); hud.RoomCode != "ABCDEF" {
		t.Errorf("Expected HUD room code, got %q", hud.RoomCode)
	}

	w.Enqueue(func(w *engine.World) { w.Player.HP = 0 })
	f.waitNotice(t, NoticeGameOver)

	if f.s.State() != core.StateGameOver {
		t.Fatalf("Expected game over, got %v", f.s.State())
	}
	if f.s.loop.Running() {
		t.Error("Expected loop stopped after game over")
	}
	if !f.audio.played(core.CueBackgroundStop) {
		t.Error("Expected background music stopped")
	}
	if f.s.Snapshot().HP > 0 {
		t.Errorf("Expected final snapshot of the dead player, got HP %v", f.s.Snapshot().HP)
	}

	// Controls are dead on the game over screen
	f.s.Handle(input.Event{Action: input.ActionPause})
	if f.s.State() != core.StateGameOver {
		t.Errorf("Expected game over to ignore pause, got %v", f.s.State())
	}

	f.s.Handle(input.Event{Action: input.ActionMenu})
	if f.s.State() != core.StateMenu {
		t.Errorf("Expected menu, got %v", f.s.State())
	}
}

func TestRandomCodeWhenShort(t *testing.T) {
	f := newFixture(t)
	f.typeCode("AB")
	f.s.Handle(input.Event{Action: input.ActionConfirm})

	seed := f.s.Seed()
	if len(seed) != 6 || seed == "AB" {
		t.Errorf("Expected random 6 character code, got %q", seed)
	}
}

func TestPauseToggle(t *testing.T) {
	f := newFixture(t)
	f.s.StartGame("ABCDEF", core.RoleTank)

	f.in.Press(input.ActionMoveRight)
	f.s.Handle(input.Event{Action: input.ActionPause})
	if f.s.State() != core.StatePaused || !f.s.loop.Paused() {
		t.Fatalf("Expected paused, got %v", f.s.State())
	}
	if f.in.Snapshot().Move != (core.Vec2{}) {
		t.Error("Expected held keys released on pause")
	}

	f.s.Handle(input.Event{Action: input.ActionPause})
	if f.s.State() != core.StatePlaying || f.s.loop.Paused() {
		t.Errorf("Expected resumed, got %v", f.s.State())
	}
}

func TestMenuLeavesWorld(t *testing.T) {
	f := newFixture(t)
	f.s.StartGame("ABCDEF", core.RoleSoldier)
	loop := f.s.loop

	f.s.Handle(input.Event{Action: input.ActionMenu})
	if f.s.State() != core.StateMenu {
		t.Fatalf("Expected menu, got %v", f.s.State())
	}
	if loop.Running() {
		t.Error("Expected loop stopped on return to menu")
	}
}

func TestStaleNoticeIgnored(t *testing.T) {
	f := newFixture(t)
	f.s.StartGame("ABCDEF", core.RoleSoldier)

	f.s.HandleNotice(Notice{Kind: NoticeGameOver, Gen: f.s.gen + 1})
	if f.s.State() != core.StatePlaying {
		t.Errorf("Expected stale game over ignored, got %v", f.s.State())
	}

	p := components.NewPlayer(core.RoleMedic)
	f.s.HandleNotice(Notice{Kind: NoticeSnapshot, Gen: f.s.gen - 1, Player: *p})
	if f.s.Snapshot().Role != core.RoleSoldier {
		t.Error("Expected stale snapshot ignored")
	}
}

func TestSaveAndContinue(t *testing.T) {
	f := newFixture(t)
	f.s.StartGame("QWERTY", core.RoleMedic)

	if !f.s.RequestQuest() {
		t.Fatal("Expected quest request accepted")
	}
	f.board.Wait()

	f.s.Handle(input.Event{Action: input.ActionSave})
	if !f.store.Exists() {
		t.Fatal("Expected save file written")
	}
	if msg := f.s.HUDInfo().Message; msg != "Game saved" {
		t.Errorf("Expected save message, got %q", msg)
	}

	f.s.Handle(input.Event{Action: input.ActionMenu})
	f.board.Restore(nil)
	if !f.s.MenuInfo().CanContinue {
		t.Error("Expected continue offered with a save present")
	}

	f.s.Handle(input.Event{Action: input.ActionContinue})
	if f.s.State() != core.StatePlaying {
		t.Fatalf("Expected playing after continue, got %v", f.s.State())
	}
	if f.s.Seed() != "QWERTY" {
		t.Errorf("Expected seed restored, got %q", f.s.Seed())
	}
	if f.s.World().Player.Role != core.RoleMedic {
		t.Errorf("Expected medic restored, got %v", f.s.World().Player.Role)
	}
	qs := f.s.HUDInfo().Quests
	if len(qs) != 1 || qs[0].Title != "Hold the Bridge" {
		t.Errorf("Expected quest board restored, got %+v", qs)
	}
}

func TestContinueWithoutSave(t *testing.T) {
	f := newFixture(t)
	f.s.Handle(input.Event{Action: input.ActionContinue})

	if f.s.State() != core.StateMenu {
		t.Errorf("Expected to stay in menu, got %v", f.s.State())
	}
	if msg := f.s.MenuInfo().Message; msg != "No saved game" {
		t.Errorf("Expected no save message, got %q", msg)
	}
}

func TestMuteToggle(t *testing.T) {
	f := newFixture(t)
	f.s.StartGame("ABCDEF", core.RoleSoldier)

	f.s.Handle(input.Event{Action: input.ActionMute})
	if !f.s.HUDInfo().Muted || f.s.HUDInfo().Message != "Sound off" {
		t.Errorf("Expected muted, got %+v", f.s.HUDInfo())
	}
	f.s.Handle(input.Event{Action: input.ActionMute})
	if f.s.HUDInfo().Muted {
		t.Error("Expected unmuted")
	}
}

func TestScreenshot(t *testing.T) {
	f := newFixture(t)
	f.s.Redraw()

	path, err := f.s.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Expected PNG, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("Expected 80x60 screenshot, got %v", b)
	}
}

func TestServiceIdentity(t *testing.T) {
	f := newFixture(t)
	if f.s.Name() != "session" {
		t.Errorf("Expected session, got %q", f.s.Name())
	}
	deps := strings.Join(f.s.Dependencies(), ",")
	if deps != "terminal,audio,assets" {
		t.Errorf("Unexpected dependencies %q", deps)
	}
	if err := f.s.Init(); err != nil {
		t.Error(err)
	}
	if err := f.s.Start(); err != nil {
		t.Error(err)
	}
}

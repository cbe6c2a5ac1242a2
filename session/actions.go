package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/input"
	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/save"
)

// Handle applies one translated input event; returns true when the application should exit
func (s *Session) Handle(ev input.Event) bool {
	switch ev.Action {
	case input.ActionNone:
		return false
	case input.ActionQuit:
		return true
	case input.ActionScreenshot:
		s.Screenshot()
		return false
	case input.ActionDebug:
		if s.deps.Debug != nil {
			s.deps.Debug.Toggle()
		}
		s.Redraw()
		return false
	}

	switch s.State() {
	case core.StateMenu:
		s.handleMenu(ev)
	case core.StatePlaying, core.StatePaused:
		s.handlePlay(ev)
	case core.StateGameOver:
		if ev.Action == input.ActionMenu {
			s.ToMenu()
		}
	}
	return false
}

func (s *Session) handleMenu(ev input.Event) {
	switch ev.Action {
	case input.ActionChar:
		s.mu.Lock()
		if len(s.code) < constants.InviteCodeLength {
			s.code = append(s.code, ev.Rune)
		}
		s.mu.Unlock()
	case input.ActionBackspace:
		s.mu.Lock()
		if n := len(s.code); n > 0 {
			s.code = s.code[:n-1]
		}
		s.mu.Unlock()
	case input.ActionRoleNext:
		s.cycleRole(1)
	case input.ActionRolePrev:
		s.cycleRole(-1)
	case input.ActionConfirm:
		s.mu.Lock()
		code, role := string(s.code), s.role
		s.mu.Unlock()
		s.StartGame(code, role)
		return
	case input.ActionContinue:
		if s.Continue() {
			return
		}
	}
	s.Redraw()
}

func (s *Session) cycleRole(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(core.Roles)
	idx := 0
	for i, r := range core.Roles {
		if r == s.role {
			idx = i
		}
	}
	s.role = core.Roles[((idx+step)%n+n)%n]
}

func (s *Session) handlePlay(ev input.Event) {
	switch ev.Action {
	case input.ActionPause:
		s.TogglePause()
	case input.ActionMute:
		muted := s.deps.Audio.ToggleMute()
		if muted {
			s.setMessage("Sound off")
		} else {
			s.setMessage("Sound on")
		}
	case input.ActionSave:
		s.Save()
	case input.ActionQuest:
		s.RequestQuest()
	case input.ActionUseItem:
		if s.State() == core.StatePlaying && s.world != nil {
			s.world.Enqueue(engine.ConsumeItem(ev.Slot))
		}
	case input.ActionMenu:
		s.ToMenu()
	}
}

// TogglePause suspends or resumes updates; held controls are released either way
func (s *Session) TogglePause() {
	if s.loop == nil {
		return
	}
	paused := s.State() != core.StatePaused
	s.loop.SetPaused(paused)
	if s.deps.Input != nil {
		s.deps.Input.Release()
	}
	if paused {
		s.setState(core.StatePaused)
	} else {
		s.setState(core.StatePlaying)
	}
}

// ToMenu abandons the current world and shows the menu
func (s *Session) ToMenu() {
	s.stopLoop()
	if s.deps.Input != nil {
		s.deps.Input.Release()
	}
	s.setState(core.StateMenu)
	s.Redraw()
}

// Save writes the latest player snapshot with the seed and quest board
func (s *Session) Save() error {
	if s.deps.Store == nil || s.world == nil {
		return nil
	}
	gs := save.NewGameSave(s.snapshot, s.Seed(), s.snapshotQuests())
	if err := s.deps.Store.Save(gs); err != nil {
		s.log.Error().Err(err).Msg("save failed")
		s.setMessage("Save failed")
		return err
	}
	s.log.Info().Str("save", gs.ID).Str("seed", gs.Seed).Int("level", gs.Player.Level).Msg("game saved")
	s.setMessage("Game saved")
	return nil
}

func (s *Session) snapshotQuests() []components.Quest {
	if s.deps.Quests == nil {
		return nil
	}
	return s.deps.Quests.Quests()
}

// RequestQuest asks HQ for a new quest for the latest snapshot; ignored while one is pending
func (s *Session) RequestQuest() bool {
	if s.deps.Quests == nil {
		return false
	}
	if !s.deps.Quests.Request(s.ctx, s.snapshot) {
		return false
	}
	s.log.Debug().Int("level", s.snapshot.Level).Msg("quest requested")
	return true
}

// Screenshot writes the last rendered canvas as PNG into the screenshot directory
func (s *Session) Screenshot() (string, error) {
	if s.deps.Orchestrator == nil {
		return "", nil
	}
	dir := s.opts.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	path := filepath.Join(dir, "screenshot-"+s.opts.Clock.Now().Format("20060102-150405.000")+".png")

	err := s.deps.Orchestrator.Snapshot(func(c *render.Canvas) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := c.WritePNG(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("screenshot failed")
		s.setMessage("Screenshot failed")
		return "", fmt.Errorf("screenshot: %w", err)
	}

	s.log.Info().Str("path", path).Msg("screenshot saved")
	s.setMessage("Saved " + filepath.Base(path))
	return path, nil
}

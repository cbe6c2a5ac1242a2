package input

import (
	"fmt"
	"strings"
)

// actionRegistry maps canonical action names used in key bindings
var actionRegistry = map[string]Action{
	"none":       ActionNone,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"attack":     ActionAttack,
	"quit":       ActionQuit,
	"pause":      ActionPause,
	"mute":       ActionMute,
	"save":       ActionSave,
	"quest":      ActionQuest,
	"menu":       ActionMenu,
	"screenshot": ActionScreenshot,
	"debug":      ActionDebug,
}

func resolveAction(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// ActionName returns the binding name of a bindable action
func ActionName(a Action) string {
	for name, v := range actionRegistry {
		if v == a && name != "none" {
			return name
		}
	}
	return ""
}

package input

// Action is what a key press means in the current game state
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, fed to the frame input snapshot
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionAttack

	// Session commands
	ActionQuit
	ActionPause
	ActionMute
	ActionSave
	ActionQuest
	ActionMenu
	ActionUseItem
	ActionScreenshot
	ActionDebug

	// Menu form
	ActionChar
	ActionBackspace
	ActionConfirm
	ActionRoleNext
	ActionRolePrev
	ActionContinue

	ActionResize
)

// Held reports whether the action is a continuous control rather than a command
func (a Action) Held() bool {
	return a >= ActionMoveUp && a <= ActionAttack
}

// Event is a translated terminal event
type Event struct {
	Action Action
	Rune   rune // ActionChar
	Slot   int  // ActionUseItem, zero-based
}

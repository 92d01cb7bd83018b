package core

// Action is a semantic player intent, decoupled from the key that
// produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionUndo
	ActionNewGame
	ActionTheme
	ActionPause
	ActionHelp
	ActionLeaderboard
	ActionScreenshot
	ActionConfirm
	ActionBack
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionUndo:        "Undo",
	ActionNewGame:     "NewGame",
	ActionTheme:       "Theme",
	ActionPause:       "Pause",
	ActionHelp:        "Help",
	ActionLeaderboard: "Leaderboard",
	ActionScreenshot:  "Screenshot",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction looks an action up by its String name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// IsMove reports whether a is one of the four slide directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input collected between two game steps. Order
// matters: two queued moves are played in the order they were pressed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}

// Push appends an action. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether a was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops all queued actions, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

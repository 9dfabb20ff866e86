package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, W, Up - held control, lifts the character
	ActionFire         // F, X, mouse click - one-shot, launches a projectile
	ActionStart        // Enter, R - one-shot, starts or resets the run
	ActionQuit         // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input consumed by a single simulation tick.
// Held carries level-triggered controls that were down when the tick began;
// Pressed carries edge-triggered actions in arrival order.
type InputFrame struct {
	Held    map[Action]bool
	Pressed []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Hold marks a control as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records a one-shot action for this frame.
func (f *InputFrame) Press(a Action) {
	f.Pressed = append(f.Pressed, a)
}

// IsHeld returns true if the control was held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// WasPressed returns true if the action was pressed at least once this frame.
func (f InputFrame) WasPressed(a Action) bool {
	for _, p := range f.Pressed {
		if p == a {
			return true
		}
	}
	return false
}

// Clear resets all controls and actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Pressed = f.Pressed[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	if len(f.Pressed) > 0 {
		clone.Pressed = append([]Action(nil), f.Pressed...)
	}
	return clone
}

package core

// Action is a semantic input, abstracted from the physical key that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W - upward impulse while running
	ActionStart             // Enter, or Space while idle - start a round with the typed name
	ActionAbandon           // Esc - leave the running round without a result
	ActionScreenshot        // Ctrl+S - dump the current frame to a text file
	ActionQuit              // Ctrl+C - exit the program or session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionAbandon:
		return "Abandon"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

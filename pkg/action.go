package pkg

// Action is a label on a board button
type Action string

const (
	ActionPause   Action = "Pause"
	ActionResume         = "Resume"
	ActionRestart        = "Restart"
	ActionQuit           = "Quit"
)

package ui

// RunMode is the lifecycle state of the dashboard loop. The loop stops only in
// RunModeExiting.
type RunMode int

const (
	RunModeRunning RunMode = iota
	RunModeExiting
	// RunModeRestartComms asks the comms collaborators to reconnect; the loop keeps running.
	RunModeRestartComms
)

func (m RunMode) String() string {
	switch m {
	case RunModeRunning:
		return "Running"
	case RunModeExiting:
		return "Exiting"
	case RunModeRestartComms:
		return "RestartComms"
	default:
		return "Unknown"
	}
}

// InputMode selects the key dispatch table and what the content region shows.
type InputMode int

const (
	InputNormal InputMode = iota
	InputEditing
)

func (m InputMode) String() string {
	switch m {
	case InputNormal:
		return "Normal"
	case InputEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

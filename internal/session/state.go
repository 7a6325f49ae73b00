package session

type State int

const (
	Uninitialized State = iota
	DeviceSelectionPending
	Ready
	Dispatching
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case DeviceSelectionPending:
		return "device selection pending"
	case Ready:
		return "ready"
	case Dispatching:
		return "dispatching"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

package device

import (
	"fmt"
)

// State is the status tag adb reports next to each serial.
type State string

const (
	Online       State = "device"
	Offline      State = "offline"
	Unauthorized State = "unauthorized"
)

type Device struct {
	ID    string
	State State
	Model string
}

func New(deviceId string, state string) *Device {
	return &Device{
		ID:    deviceId,
		State: State(state),
	}
}

// Available reports whether the device is online and authorized for debugging.
func (d *Device) Available() bool {
	return d.State == Online
}

func (d *Device) Label() string {
	if d.Model == "" {
		return d.ID
	}
	return fmt.Sprintf("%v (%v)", d.ID, d.Model)
}

func (d *Device) String() string {
	return fmt.Sprintf("id=%v state=%v", d.ID, d.State)
}

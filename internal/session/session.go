//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Prompter,Enumerator
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gitlab.com/adbfm/adb-file-manager/internal/device"
	"gitlab.com/adbfm/adb-file-manager/internal/devicediscovery"
	"gitlab.com/adbfm/adb-file-manager/internal/dispatch"
)

const (
	DefaultRemotePath = "/sdcard/"

	actionQuit = "quit"
)

var (
	ErrNotReady       = errors.New("session is not ready")
	ErrAlreadyStarted = errors.New("session already started")
)

var actions = []string{"send", "list", "delete", "pull", "mirror", actionQuit}

// Prompter is everything the session needs from a presentation layer.
// Every method reports ok=false when the user cancelled.
type Prompter interface {
	SelectFiles() ([]string, bool)
	SelectDirectory(title string) (string, bool)
	PromptText(title, initial string) (string, bool)
	PromptChoice(title string, options []string) (int, bool)
}

// Sink receives rendered log entries in order. Entries are never removed.
type Sink interface {
	Append(entry string)
}

type Enumerator interface {
	ListDevices(ctx context.Context) ([]*device.Device, error)
	DescribeDevices(ctx context.Context, devices []*device.Device)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, action dispatch.Action, target *device.Device) []dispatch.LogEntry
}

type Config struct {
	Enumerator        Enumerator
	Dispatcher        Dispatcher
	Prompter          Prompter
	Sink              Sink
	DefaultRemotePath string
	Logger            *logrus.Logger
}

type Session struct {
	id                string
	state             State
	device            *device.Device
	enumerator        Enumerator
	dispatcher        Dispatcher
	prompter          Prompter
	sink              Sink
	defaultRemotePath string
	logger            *logrus.Entry
}

func New(config *Config) *Session {
	id := uuid.New().String()
	remotePath := config.DefaultRemotePath
	if remotePath == "" {
		remotePath = DefaultRemotePath
	}
	return &Session{
		id:                id,
		state:             Uninitialized,
		enumerator:        config.Enumerator,
		dispatcher:        config.Dispatcher,
		prompter:          config.Prompter,
		sink:              config.Sink,
		defaultRemotePath: remotePath,
		logger:            config.Logger.WithField("session", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Device returns the selected device, or nil before the session is ready.
func (s *Session) Device() *device.Device {
	return s.device
}

// Start enumerates devices and selects one. A failed selection terminates
// the session; it is never retried.
func (s *Session) Start(ctx context.Context) error {
	if s.state != Uninitialized {
		return fmt.Errorf("%w: %v", ErrAlreadyStarted, s.state)
	}
	s.state = DeviceSelectionPending

	s.logger.Debug("enumerating devices")
	devices, err := s.enumerator.ListDevices(ctx)
	if err != nil {
		return s.terminate(err)
	}
	if len(devices) > 1 {
		s.enumerator.DescribeDevices(ctx, devices)
	}

	selected, err := devicediscovery.Resolve(devices, func(options []string) (int, bool) {
		return s.prompter.PromptChoice("Choose a device by number", options)
	})
	if err != nil {
		return s.terminate(err)
	}

	s.device = selected
	s.state = Ready
	s.logger.WithField("deviceId", selected.ID).Infof("using device %v", selected.Label())
	return nil
}

// Execute dispatches one action against the selected device and appends its
// entries to the sink. Failed commands leave the session ready.
func (s *Session) Execute(ctx context.Context, action dispatch.Action) error {
	if s.state != Ready {
		return fmt.Errorf("%w: %v", ErrNotReady, s.state)
	}
	s.state = Dispatching
	for _, entry := range s.dispatcher.Dispatch(ctx, action, s.device) {
		if entry.Failed() {
			s.logger.WithField("action", action.Name()).Debugf("action reported failure: %v", entry.Err)
		}
		s.sink.Append(entry.String())
	}
	s.state = Ready
	return nil
}

// Run starts the session and serves user actions until the user quits or
// ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			s.Close()
			return nil
		}
		name, ok := s.chooseAction()
		if !ok || name == actionQuit {
			s.Close()
			return nil
		}
		action := s.buildAction(name)
		if action == nil {
			s.logger.Debugf("%v cancelled", name)
			continue
		}
		if err := s.Execute(ctx, action); err != nil {
			return err
		}
	}
}

func (s *Session) Close() {
	if s.state != Terminated {
		s.logger.Debugf("session terminated from state %v", s.state)
	}
	s.state = Terminated
}

func (s *Session) terminate(err error) error {
	switch {
	case errors.Is(err, devicediscovery.ErrNoDeviceFound):
		s.sink.Append(dispatch.ErrorMarker + "No connected devices. Check adb and the device.")
	case errors.Is(err, devicediscovery.ErrInvalidSelection):
		s.sink.Append(dispatch.ErrorMarker + "Invalid device selection.")
	default:
		s.sink.Append(dispatch.ErrorMarker + fmt.Sprintf("Unable to connect to device: %v", err))
	}
	s.state = Terminated
	return err
}

func (s *Session) chooseAction() (string, bool) {
	options := make([]string, len(actions))
	for i, name := range actions {
		options[i] = fmt.Sprintf("%d. %v", i+1, name)
	}
	for {
		choice, ok := s.prompter.PromptChoice("Choose an action", options)
		if !ok {
			return "", false
		}
		if choice >= 1 && choice <= len(actions) {
			return actions[choice-1], true
		}
		s.sink.Append(dispatch.ErrorMarker + fmt.Sprintf("unknown action %d", choice))
	}
}

// buildAction gathers the parameters for name. A nil action means the user
// cancelled and nothing is dispatched.
func (s *Session) buildAction(name string) dispatch.Action {
	switch name {
	case "send":
		files, ok := s.prompter.SelectFiles()
		if !ok || len(files) == 0 {
			return nil
		}
		destination, ok := s.prompter.PromptText("Destination path on device", s.defaultRemotePath)
		if !ok || destination == "" {
			destination = s.defaultRemotePath
		}
		return dispatch.Send{Files: files, Destination: destination}
	case "list":
		path, ok := s.prompter.PromptText("Path on device to list", s.defaultRemotePath)
		if !ok || path == "" {
			return nil
		}
		return dispatch.List{Path: path}
	case "delete":
		path, ok := s.prompter.PromptText("Path on device to delete", "")
		if !ok || path == "" {
			return nil
		}
		return dispatch.Delete{Path: path}
	case "pull":
		remote, ok := s.prompter.PromptText("Path on device to copy", "")
		if !ok || remote == "" {
			return nil
		}
		dir, ok := s.prompter.SelectDirectory("Folder to save into")
		if !ok || dir == "" {
			return nil
		}
		return dispatch.Pull{RemotePath: remote, LocalDir: dir}
	case "mirror":
		return dispatch.Mirror{}
	}
	return nil
}

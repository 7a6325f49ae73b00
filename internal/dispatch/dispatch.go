//go:generate mockgen -destination=mocks/mocks.go -package=mocks . BridgeTool,MirrorTool
package dispatch

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/adbfm/adb-file-manager/internal/device"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

var (
	ErrCommandFailure = errors.New("command failed")
)

type BridgeTool interface {
	Push(ctx context.Context, deviceId, local, remote string) (*runner.Result, error)
	Pull(ctx context.Context, deviceId, remote, local string) (*runner.Result, error)
	List(ctx context.Context, deviceId, path string) (*runner.Result, error)
	Remove(ctx context.Context, deviceId, path string) (*runner.Result, error)
}

type MirrorTool interface {
	Launch() error
}

type Config struct {
	Bridge BridgeTool
	Mirror MirrorTool
	Logger *logrus.Logger
}

type Dispatcher struct {
	bridge BridgeTool
	mirror MirrorTool
	logger *logrus.Logger
}

func New(config *Config) *Dispatcher {
	return &Dispatcher{
		bridge: config.Bridge,
		mirror: config.Mirror,
		logger: config.Logger,
	}
}

// Dispatch runs action against d and returns one entry per unit of work.
// A failing unit is reported in its entry and never stops the others.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, target *device.Device) []LogEntry {
	logger := d.logger.WithFields(logrus.Fields{
		"action":   action.Name(),
		"deviceId": target.ID,
	})
	logger.Debug("dispatching action")

	switch a := action.(type) {
	case Send:
		return d.send(ctx, logger, a, target)
	case List:
		return d.list(ctx, a, target)
	case Delete:
		return d.delete(ctx, a, target)
	case Pull:
		return d.pull(ctx, a, target)
	case Mirror:
		return d.launchMirror(logger)
	}
	logger.Warnf("ignoring unsupported action %T", action)
	return nil
}

func (d *Dispatcher) send(ctx context.Context, logger *logrus.Entry, a Send, target *device.Device) []LogEntry {
	var entries []LogEntry
	for _, file := range a.Files {
		result, err := d.bridge.Push(ctx, target.ID, file, a.Destination)
		switch {
		case err != nil:
			entries = append(entries, launchFailed(err))
		case !result.Success():
			logger.WithField("file", file).Debugf("push exited with %d", result.ExitCode)
			entries = append(entries, commandFailed(result))
		default:
			entries = append(entries, succeeded("%v -> %v", file, strings.TrimSpace(result.Stdout)))
		}
	}
	return entries
}

func (d *Dispatcher) list(ctx context.Context, a List, target *device.Device) []LogEntry {
	if a.Path == "" {
		return nil
	}
	result, err := d.bridge.List(ctx, target.ID, a.Path)
	if err != nil {
		return []LogEntry{launchFailed(err)}
	}
	if !result.Success() {
		return []LogEntry{commandFailed(result)}
	}
	return []LogEntry{succeeded("Files in %v:\n%v", a.Path, strings.TrimSpace(result.Stdout))}
}

func (d *Dispatcher) delete(ctx context.Context, a Delete, target *device.Device) []LogEntry {
	if a.Path == "" {
		return nil
	}
	result, err := d.bridge.Remove(ctx, target.ID, a.Path)
	if err != nil {
		return []LogEntry{launchFailed(err)}
	}
	if !result.Success() {
		return []LogEntry{commandFailed(result)}
	}
	return []LogEntry{succeeded("Deleted %v.", a.Path)}
}

func (d *Dispatcher) pull(ctx context.Context, a Pull, target *device.Device) []LogEntry {
	if a.RemotePath == "" || a.LocalDir == "" {
		return nil
	}
	result, err := d.bridge.Pull(ctx, target.ID, a.RemotePath, a.LocalDir)
	if err != nil {
		return []LogEntry{launchFailed(err)}
	}
	if !result.Success() {
		return []LogEntry{commandFailed(result)}
	}
	local := filepath.Join(a.LocalDir, path.Base(a.RemotePath))
	return []LogEntry{succeeded("Saved %v to %v.", a.RemotePath, local)}
}

func (d *Dispatcher) launchMirror(logger *logrus.Entry) []LogEntry {
	err := d.mirror.Launch()
	if err != nil {
		return []LogEntry{launchFailed(err)}
	}
	logger.Debug("screen mirroring started")
	return nil
}

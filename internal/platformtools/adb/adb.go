//go:generate mockgen -destination=mocks/mocks.go -package=mocks . CommandRunner
package adb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

const (
	adbExecutable = "adb"
)

var (
	ErrCommandFailure = errors.New("adb command failed")
)

type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*runner.Result, error)
}

type Tool struct {
	executable string
	runner     CommandRunner
}

func New(executable string, r CommandRunner) *Tool {
	if executable == "" {
		executable = adbExecutable
	}
	return &Tool{
		executable: executable,
		runner:     r,
	}
}

// Devices runs `adb devices`. Parsing is left to the caller.
func (t *Tool) Devices(ctx context.Context) (*runner.Result, error) {
	return t.command(ctx, "devices")
}

func (t *Tool) Push(ctx context.Context, deviceId, local, remote string) (*runner.Result, error) {
	return t.command(ctx, "-s", deviceId, "push", local, remote)
}

func (t *Tool) Pull(ctx context.Context, deviceId, remote, local string) (*runner.Result, error) {
	return t.command(ctx, "-s", deviceId, "pull", remote, local)
}

func (t *Tool) List(ctx context.Context, deviceId, path string) (*runner.Result, error) {
	return t.command(ctx, "-s", deviceId, "shell", "ls", path)
}

func (t *Tool) Remove(ctx context.Context, deviceId, path string) (*runner.Result, error) {
	return t.command(ctx, "-s", deviceId, "shell", "rm", "-r", path)
}

// GetProp returns a system property with the brackets and line endings
// some adb builds print stripped off.
func (t *Tool) GetProp(ctx context.Context, deviceId, prop string) (string, error) {
	resp, err := t.command(ctx, "-s", deviceId, "shell", "getprop", prop)
	if err != nil {
		return "", err
	}
	if !resp.Success() {
		return "", fmt.Errorf("%w: %v", ErrCommandFailure, strings.TrimSpace(resp.Stderr))
	}
	return strings.Trim(resp.Stdout, "[]\n\r"), nil
}

func (t *Tool) StartServer(ctx context.Context) (*runner.Result, error) {
	return t.command(ctx, "start-server")
}

func (t *Tool) KillServer(ctx context.Context) (*runner.Result, error) {
	return t.command(ctx, "kill-server")
}

func (t *Tool) Name() string {
	return adbExecutable
}

func (t *Tool) command(ctx context.Context, args ...string) (*runner.Result, error) {
	return t.runner.Run(ctx, t.executable, args...)
}

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrLaunchFailure = errors.New("failed to launch command")
)

// Result is the captured outcome of one finished process. A non-zero
// ExitCode is a normal result, not an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

type Config struct {
	Env    []string
	Logger *logrus.Logger
}

type Runner struct {
	env    []string
	logger *logrus.Logger
}

func New(config *Config) *Runner {
	return &Runner{
		env:    config.Env,
		logger: config.Logger,
	}
}

// Run executes name with args and blocks until it exits.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	logger := r.logger.WithField("command", commandLine(name, args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running command")
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		logger.Debugf("command failed to launch: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLaunchFailure, err)
	}

	result := &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	logger.WithField("exitCode", result.ExitCode).Debug("command finished")
	return result, nil
}

// Start launches name detached and returns as soon as it is spawned.
func (r *Runner) Start(name string, args ...string) error {
	logger := r.logger.WithField("command", commandLine(name, args))

	cmd := exec.Command(name, args...)
	cmd.Env = r.environ()

	logger.Debug("starting detached command")
	if err := cmd.Start(); err != nil {
		logger.Debugf("command failed to launch: %v", err)
		return fmt.Errorf("%w: %v", ErrLaunchFailure, err)
	}
	go func() {
		// reap the child; its outcome is not reported to anyone
		err := cmd.Wait()
		logger.Debugf("detached command exited: %v", err)
	}()
	return nil
}

func (r *Runner) environ() []string {
	if len(r.env) == 0 {
		return nil
	}
	return append(os.Environ(), r.env...)
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

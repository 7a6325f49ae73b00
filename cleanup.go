package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

type serverKiller interface {
	KillServer(ctx context.Context) (*runner.Result, error)
}

type rulesRemover interface {
	Cleanup(ctx context.Context) error
}

// cleaner undoes what startup changed on the host. It runs at most once,
// whichever of normal return, a fatal log or an interrupt gets there first.
type cleaner struct {
	once   sync.Once
	mu     sync.Mutex
	dirs   []string
	server serverKiller
	rules  rulesRemover
	out    io.Writer
}

func newCleaner(out io.Writer) *cleaner {
	return &cleaner{out: out}
}

func (c *cleaner) removeDirectory(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs = append(c.dirs, dir)
}

func (c *cleaner) killServer(k serverKiller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.server = k
}

func (c *cleaner) removeRules(r rulesRemover) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = r
}

func (c *cleaner) run() {
	c.once.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		ctx := context.Background()
		if c.server != nil {
			if _, err := c.server.KillServer(ctx); err != nil {
				fmt.Fprintf(c.out, "cleanup error killing adb server: %v\n", err)
			}
		}
		for _, dir := range c.dirs {
			if err := os.RemoveAll(dir); err != nil {
				fmt.Fprintf(c.out, "cleanup error removing dir %v: %v\n", dir, err)
			}
		}
		if c.rules != nil {
			if err := c.rules.Cleanup(ctx); err != nil {
				fmt.Fprintf(c.out, "cleanup error removing udev rules: %v\n", err)
			}
		}
	})
}

// exitFunc is installed as the logger's ExitFunc so Fatal paths clean up
// before exiting.
func (c *cleaner) exitFunc(exit func(int)) func(int) {
	return func(code int) {
		c.run()
		exit(code)
	}
}

func (c *cleaner) onInterrupt(cancel context.CancelFunc, exit func(int)) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		fmt.Fprintln(c.out, "\r- interrupted, cleaning up")
		cancel()
		c.run()
		exit(0)
	}()
}

// tempDir creates a scratch directory that is removed on cleanup.
func (c *cleaner) tempDir(usage string) (string, error) {
	dir, err := ioutil.TempDir("", fmt.Sprintf("adb-file-manager-extracted-%v", usage))
	if err != nil {
		return "", err
	}
	c.removeDirectory(dir)
	return dir, nil
}

// platformToolsDirs returns the shared zip cache for version and a fresh
// extraction directory.
func (c *cleaner) platformToolsDirs(version string) (string, string, error) {
	cacheDir := filepath.Join(os.TempDir(), "platform-tools", version)
	if err := os.MkdirAll(cacheDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("failed to setup tools cache dir %v: %w", cacheDir, err)
	}
	extractDir, err := c.tempDir("platformtools")
	if err != nil {
		return "", "", err
	}
	return cacheDir, extractDir, nil
}

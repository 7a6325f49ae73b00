package udev

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

const (
	DefaultRules = "# Google\nSUBSYSTEM==\"usb\", ATTR{idVendor}==\"18d1\", MODE=\"0660\", GROUP=\"plugdev\"\n" +
		"# Xiaomi\nSUBSYSTEM==\"usb\", ATTR{idVendor}==\"2717\", MODE=\"0660\", GROUP=\"plugdev\"\n" +
		"# Samsung\nSUBSYSTEM==\"usb\", ATTR{idVendor}==\"04e8\", MODE=\"0660\", GROUP=\"plugdev\"\n"
	RulesFile = "51-adb-file-manager.rules"
	RulesPath = "/etc/udev/rules.d"
)

var (
	ErrSetup = errors.New("failed to setup udev rules")
)

type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*runner.Result, error)
}

type Config struct {
	Runner    CommandRunner
	RulesPath string
	Logger    *logrus.Logger
}

// Installer writes udev rules with sudo so adb can open USB devices
// without running as root.
type Installer struct {
	runner    CommandRunner
	rulesFile string
	logger    *logrus.Logger
}

func New(config *Config) *Installer {
	rulesPath := config.RulesPath
	if rulesPath == "" {
		rulesPath = RulesPath
	}
	return &Installer{
		runner:    config.Runner,
		rulesFile: filepath.Join(rulesPath, RulesFile),
		logger:    config.Logger,
	}
}

func (i *Installer) RulesFile() string {
	return i.rulesFile
}

// Setup installs rules unless a rules file is already in place. It reports
// whether it installed anything.
func (i *Installer) Setup(ctx context.Context, rules string) (bool, error) {
	if _, err := os.Stat(i.rulesFile); err == nil {
		i.logger.Debugf("udev rules already present at %v", i.rulesFile)
		return false, nil
	}

	tmp, err := ioutil.TempFile("", RulesFile)
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(rules); err != nil {
		tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}

	steps := [][]string{
		{"mkdir", "-p", filepath.Dir(i.rulesFile)},
		{"cp", tmp.Name(), i.rulesFile},
		{"chmod", "644", i.rulesFile},
	}
	for _, step := range steps {
		if err := i.sudo(ctx, step...); err != nil {
			return false, err
		}
	}

	if err := i.sudo(ctx, "udevadm", "control", "--reload-rules"); err != nil {
		i.logger.Debugf("udevadm control --reload-rules failed: %v", err)
	}
	if err := i.sudo(ctx, "udevadm", "trigger"); err != nil {
		i.logger.Debugf("udevadm trigger failed: %v", err)
	}
	return true, nil
}

func (i *Installer) Cleanup(ctx context.Context) error {
	if _, err := os.Stat(i.rulesFile); os.IsNotExist(err) {
		return nil
	}
	return i.sudo(ctx, "rm", "-f", i.rulesFile)
}

func (i *Installer) sudo(ctx context.Context, args ...string) error {
	i.logger.Debugf("running sudo %v", strings.Join(args, " "))
	result, err := i.runner.Run(ctx, "sudo", args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSetup, err)
	}
	if !result.Success() {
		return fmt.Errorf("%w: sudo %v: %v", ErrSetup, args[0], strings.TrimSpace(result.Stderr))
	}
	return nil
}

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . DeviceLister
package devicediscovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/adbfm/adb-file-manager/internal/device"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
	"golang.org/x/sync/errgroup"
)

const (
	modelProp = "ro.product.model"
)

var (
	ErrNoDeviceFound    = errors.New("no connected devices found, check adb and the device")
	ErrInvalidSelection = errors.New("invalid device selection")
	ErrGetDevices       = errors.New("unable to get devices")
)

type DeviceLister interface {
	Devices(ctx context.Context) (*runner.Result, error)
	GetProp(ctx context.Context, deviceId, prop string) (string, error)
	Name() string
}

// Chooser asks for one of the numbered options. ok is false when the
// prompt was cancelled.
type Chooser func(options []string) (choice int, ok bool)

type Discovery struct {
	tool   DeviceLister
	logger *logrus.Logger
}

func New(tool DeviceLister, logger *logrus.Logger) *Discovery {
	return &Discovery{
		tool:   tool,
		logger: logger,
	}
}

// ListDevices returns the devices that are online and authorized, in the
// order adb reports them.
func (d *Discovery) ListDevices(ctx context.Context) ([]*device.Device, error) {
	toolName := d.tool.Name()
	d.logger.Debugf("discovering %v devices", toolName)
	resp, err := d.tool.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%v %w: %v", toolName, ErrGetDevices, err)
	}
	if !resp.Success() {
		return nil, fmt.Errorf("%v %w: %v", toolName, ErrGetDevices, strings.TrimSpace(resp.Stderr))
	}

	var devices []*device.Device
	for _, found := range ParseDevices(resp.Stdout) {
		if !found.Available() {
			d.logger.Warnf("%v skipping device %v in state %v", toolName, found.ID, found.State)
			continue
		}
		devices = append(devices, found)
	}
	return devices, nil
}

// DescribeDevices looks up the model of every device concurrently. A failed
// lookup leaves the model empty.
func (d *Discovery) DescribeDevices(ctx context.Context, devices []*device.Device) {
	g, ctx := errgroup.WithContext(ctx)
	for _, dev := range devices {
		current := dev
		g.Go(func() error {
			model, err := d.tool.GetProp(ctx, current.ID, modelProp)
			if err != nil {
				d.logger.Warnf("unable to get model for device %v: %v", current.ID, err)
				return nil
			}
			current.Model = model
			return nil
		})
	}
	_ = g.Wait()
}

// ParseDevices parses `adb devices` output. The first line is always
// treated as the header and dropped.
func ParseDevices(output string) []*device.Device {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	var devices []*device.Device
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		devices = append(devices, device.New(fields[0], fields[1]))
	}
	return devices
}

// Resolve picks the session device. A single device is selected without
// asking; several devices require an explicit, in range choice.
func Resolve(devices []*device.Device, choose Chooser) (*device.Device, error) {
	switch len(devices) {
	case 0:
		return nil, ErrNoDeviceFound
	case 1:
		return devices[0], nil
	}

	options := make([]string, len(devices))
	for i, d := range devices {
		options[i] = fmt.Sprintf("%d. %v", i+1, d.Label())
	}
	choice, ok := choose(options)
	if !ok {
		return nil, fmt.Errorf("%w: no choice made", ErrInvalidSelection)
	}
	if choice < 1 || choice > len(devices) {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, choice, len(devices))
	}
	return devices[choice-1], nil
}

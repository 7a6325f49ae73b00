package devicediscovery

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/adbfm/adb-file-manager/internal/device"
	"gitlab.com/adbfm/adb-file-manager/internal/devicediscovery/mocks"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

func TestListDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := map[string]struct {
		prepare     func(*mocks.MockDeviceLister)
		expectedErr error
		expectedIds []string
	}{
		"unauthorized and offline devices are excluded": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{
					Stdout: "List of devices attached\nABC123\tdevice\nXYZ999\tunauthorized\nOFF001\toffline\n\n",
				}, nil)
			},
			expectedIds: []string{"ABC123"},
		},
		"duplicate header lines never produce a device": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{
					Stdout: "List of devices attached\nList of devices attached\nABC123\tdevice\n",
				}, nil)
			},
			expectedIds: []string{"ABC123"},
		},
		"first line is dropped whatever it contains": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{
					Stdout: "HEAD001\tdevice\nABC123\tdevice\n",
				}, nil)
			},
			expectedIds: []string{"ABC123"},
		},
		"space separated and windows line endings are parsed": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{
					Stdout: "List of devices attached\r\nABC123    device\r\n192.168.1.5:5555\tdevice\r\n",
				}, nil)
			},
			expectedIds: []string{"ABC123", "192.168.1.5:5555"},
		},
		"no devices is an empty list": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{Stdout: "List of devices attached\n\n"}, nil)
			},
			expectedIds: nil,
		},
		"adb launch failure is returned": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(nil, runner.ErrLaunchFailure)
			},
			expectedErr: ErrGetDevices,
		},
		"adb non zero exit is returned": {
			prepare: func(m *mocks.MockDeviceLister) {
				m.EXPECT().Devices(ctx).Return(&runner.Result{ExitCode: 1, Stderr: "cannot connect to daemon"}, nil)
			},
			expectedErr: ErrGetDevices,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockADB := mocks.NewMockDeviceLister(ctrl)
			mockADB.EXPECT().Name().Return("adb").AnyTimes()
			tc.prepare(mockADB)

			devices, err := New(mockADB, logrus.StandardLogger()).ListDevices(ctx)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, d := range devices {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tc.expectedIds, ids)
		})
	}
}

func TestParseDevices(t *testing.T) {
	devices := ParseDevices("List of devices attached\nABC123\tdevice\nXYZ999\tunauthorized\nlonely\n")
	assert.Equal(t, []*device.Device{
		{ID: "ABC123", State: device.Online},
		{ID: "XYZ999", State: device.Unauthorized},
	}, devices)

	assert.Nil(t, ParseDevices(""))
}

func TestDescribeDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockADB := mocks.NewMockDeviceLister(ctrl)
	mockADB.EXPECT().GetProp(gomock.Any(), "ABC123", "ro.product.model").Return("Pixel 7", nil)
	mockADB.EXPECT().GetProp(gomock.Any(), "XYZ999", "ro.product.model").Return("", errors.New("device offline"))

	devices := []*device.Device{device.New("ABC123", "device"), device.New("XYZ999", "device")}
	New(mockADB, logrus.StandardLogger()).DescribeDevices(context.Background(), devices)

	assert.Equal(t, "Pixel 7", devices[0].Model)
	assert.Equal(t, "", devices[1].Model)
}

func TestResolve(t *testing.T) {
	first := device.New("ABC123", "device")
	second := device.New("DEF456", "device")
	second.Model = "Pixel 7"

	tests := map[string]struct {
		devices         []*device.Device
		choice          int
		ok              bool
		expectPrompt    bool
		expectedErr     error
		expectedDevice  *device.Device
		expectedOptions []string
	}{
		"zero devices fails": {
			devices:     nil,
			expectedErr: ErrNoDeviceFound,
		},
		"single device is selected without prompting": {
			devices:        []*device.Device{first},
			expectedDevice: first,
		},
		"explicit choice selects device": {
			devices:         []*device.Device{first, second},
			choice:          2,
			ok:              true,
			expectPrompt:    true,
			expectedDevice:  second,
			expectedOptions: []string{"1. ABC123", "2. DEF456 (Pixel 7)"},
		},
		"choice below range fails": {
			devices:      []*device.Device{first, second},
			choice:       0,
			ok:           true,
			expectPrompt: true,
			expectedErr:  ErrInvalidSelection,
		},
		"choice above range fails": {
			devices:      []*device.Device{first, second},
			choice:       3,
			ok:           true,
			expectPrompt: true,
			expectedErr:  ErrInvalidSelection,
		},
		"cancelled prompt fails instead of defaulting to the first device": {
			devices:      []*device.Device{first, second},
			choice:       1,
			ok:           false,
			expectPrompt: true,
			expectedErr:  ErrInvalidSelection,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			prompted := false
			selected, err := Resolve(tc.devices, func(options []string) (int, bool) {
				prompted = true
				if tc.expectedOptions != nil {
					assert.Equal(t, tc.expectedOptions, options)
				}
				return tc.choice, tc.ok
			})
			assert.Equal(t, tc.expectPrompt, prompted)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				assert.Nil(t, selected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDevice, selected)
		})
	}
}

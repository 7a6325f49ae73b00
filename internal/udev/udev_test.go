package udev

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/adbfm/adb-file-manager/internal/platformtools/adb/mocks"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

func rulesDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "udev-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ok := &runner.Result{}
	dir := rulesDir(t)
	rulesFile := filepath.Join(dir, RulesFile)

	tests := map[string]struct {
		existing      bool
		prepare       func(*mocks.MockCommandRunner)
		expectedErr   error
		expectedSetup bool
	}{
		"installs rules": {
			prepare: func(m *mocks.MockCommandRunner) {
				gomock.InOrder(
					m.EXPECT().Run(ctx, "sudo", "mkdir", "-p", dir).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "cp", gomock.Any(), rulesFile).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "chmod", "644", rulesFile).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "udevadm", "control", "--reload-rules").Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "udevadm", "trigger").Return(ok, nil),
				)
			},
			expectedSetup: true,
		},
		"udevadm failures are not fatal": {
			prepare: func(m *mocks.MockCommandRunner) {
				gomock.InOrder(
					m.EXPECT().Run(ctx, "sudo", "mkdir", "-p", dir).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "cp", gomock.Any(), rulesFile).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "chmod", "644", rulesFile).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "udevadm", "control", "--reload-rules").Return(nil, runner.ErrLaunchFailure),
					m.EXPECT().Run(ctx, "sudo", "udevadm", "trigger").Return(&runner.Result{ExitCode: 1}, nil),
				)
			},
			expectedSetup: true,
		},
		"copy failure is returned": {
			prepare: func(m *mocks.MockCommandRunner) {
				gomock.InOrder(
					m.EXPECT().Run(ctx, "sudo", "mkdir", "-p", dir).Return(ok, nil),
					m.EXPECT().Run(ctx, "sudo", "cp", gomock.Any(), rulesFile).
						Return(&runner.Result{ExitCode: 1, Stderr: "sudo: a password is required"}, nil),
				)
			},
			expectedErr: ErrSetup,
		},
		"existing rules are left alone": {
			existing: true,
			prepare:  func(m *mocks.MockCommandRunner) {},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if tc.existing {
				require.NoError(t, ioutil.WriteFile(rulesFile, []byte(DefaultRules), 0644))
				defer os.Remove(rulesFile)
			}
			mockRunner := mocks.NewMockCommandRunner(ctrl)
			tc.prepare(mockRunner)

			installer := New(&Config{Runner: mockRunner, RulesPath: dir, Logger: logrus.StandardLogger()})
			installed, err := installer.Setup(ctx, DefaultRules)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSetup, installed)
		})
	}
}

func TestCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dir := rulesDir(t)
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	installer := New(&Config{Runner: mockRunner, RulesPath: dir, Logger: logrus.StandardLogger()})

	assert.NoError(t, installer.Cleanup(ctx))

	require.NoError(t, ioutil.WriteFile(installer.RulesFile(), []byte(DefaultRules), 0644))
	mockRunner.EXPECT().Run(ctx, "sudo", "rm", "-f", installer.RulesFile()).Return(&runner.Result{}, nil)
	assert.NoError(t, installer.Cleanup(ctx))
}

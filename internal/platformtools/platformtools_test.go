package platformtools

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVersion SupportedVersion = "0.0.1-test"

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "platformtools-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func testZip(t *testing.T) []byte {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	f, err := w.Create("platform-tools/adb")
	require.NoError(t, err)
	_, err = f.Write([]byte("#!/bin/sh\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func registerTestVersion(t *testing.T, checksum string) {
	Downloads[testVersion] = map[SupportedHostOS]VersionInfo{
		OSLinux: {testVersion, "%v/platform-tools_test-linux.zip", checksum},
	}
	t.Cleanup(func() { delete(Downloads, testVersion) })
}

func TestNew(t *testing.T) {
	data := testZip(t)
	sum := sha256.Sum256(data)
	registerTestVersion(t, hex.EncodeToString(sum[:]))

	downloads := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/platform-tools_test-linux.zip", r.URL.Path)
		downloads++
		_, _ = w.Write(data)
	}))
	defer server.Close()

	cacheDir := tempDir(t)
	newConfig := func() *Config {
		return &Config{
			BaseURI:              server.URL,
			HttpClient:           server.Client(),
			HostOS:               "linux",
			ToolsVersion:         testVersion,
			CacheDir:             cacheDir,
			DestinationDirectory: tempDir(t),
			Logger:               logrus.StandardLogger(),
		}
	}

	tools, err := New(newConfig())
	require.NoError(t, err)
	adb, err := Resolve(string(tools.Path()), ADB, "linux")
	require.NoError(t, err)
	assert.FileExists(t, adb)
	assert.Equal(t, 1, downloads)

	_, err = New(newConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, downloads, "cached zip should be reused")
}

func TestNewChecksumMismatch(t *testing.T) {
	registerTestVersion(t, "0000")

	data := testZip(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer server.Close()

	_, err := New(&Config{
		BaseURI:              server.URL,
		HttpClient:           server.Client(),
		HostOS:               "linux",
		ToolsVersion:         testVersion,
		CacheDir:             tempDir(t),
		DestinationDirectory: tempDir(t),
		Logger:               logrus.StandardLogger(),
	})
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
}

func TestNewBadStatus(t *testing.T) {
	registerTestVersion(t, "0000")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(&Config{
		BaseURI:              server.URL,
		HttpClient:           server.Client(),
		HostOS:               "linux",
		ToolsVersion:         testVersion,
		CacheDir:             tempDir(t),
		DestinationDirectory: tempDir(t),
		Logger:               logrus.StandardLogger(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad download status")
}

func TestNewUnsupported(t *testing.T) {
	_, err := New(&Config{
		HostOS:       "plan9",
		ToolsVersion: DefaultVersion,
		Logger:       logrus.StandardLogger(),
	})
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestResolve(t *testing.T) {
	dir := tempDir(t)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "adb"), []byte("x"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "adb.exe"), []byte("x"), 0755))

	tests := map[string]struct {
		location    string
		name        ToolName
		hostOS      string
		expected    string
		expectedErr error
	}{
		"directory containing the tool": {
			location: dir,
			name:     ADB,
			hostOS:   "linux",
			expected: filepath.Join(dir, "adb"),
		},
		"windows adds exe suffix": {
			location: dir,
			name:     ADB,
			hostOS:   "windows",
			expected: filepath.Join(dir, "adb.exe"),
		},
		"explicit executable path": {
			location: filepath.Join(dir, "adb"),
			name:     ADB,
			hostOS:   "linux",
			expected: filepath.Join(dir, "adb"),
		},
		"tool missing from directory": {
			location:    dir,
			name:        Scrcpy,
			hostOS:      "linux",
			expectedErr: ErrToolNotFound,
		},
		"location does not exist": {
			location:    filepath.Join(dir, "missing"),
			name:        ADB,
			hostOS:      "linux",
			expectedErr: ErrToolNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			found, err := Resolve(tc.location, tc.name, tc.hostOS)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		version     SupportedVersion
		hostOS      string
		expectedErr error
	}{
		"default version on linux": {
			version: DefaultVersion,
			hostOS:  string(OSLinux),
		},
		"known version on windows": {
			version: Version_30_0_4,
			hostOS:  string(OSWindows),
		},
		"unknown version": {
			version:     "1.0.0",
			hostOS:      string(OSLinux),
			expectedErr: ErrUnsupported,
		},
		"unknown host": {
			version:     DefaultVersion,
			hostOS:      "plan9",
			expectedErr: ErrUnsupported,
		},
	}

	for desc, tc := range tests {
		t.Run(desc, func(t *testing.T) {
			info, err := Lookup(tc.version, tc.hostOS)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.version, info.Release)
			assert.NotEmpty(t, info.CheckSum)
		})
	}
}

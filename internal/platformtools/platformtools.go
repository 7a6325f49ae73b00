package platformtools

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"github.com/mholt/archiver/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURI = "https://dl.google.com/android/repository"
)

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrUnsupported      = errors.New("unsupported platform tools")
)

type PlatformToolsPath string

type ToolName string

const (
	ADB    ToolName = "adb"
	Scrcpy ToolName = "scrcpy"
)

// Resolve finds the executable for name. location may be the executable
// itself, the directory holding it, or empty to search PATH.
func Resolve(location string, name ToolName, hostOS string) (string, error) {
	executable := string(name)
	if hostOS == string(OSWindows) {
		executable = executable + ".exe"
	}
	if location == "" {
		found, err := exec.LookPath(executable)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
		}
		return found, nil
	}
	info, err := os.Stat(location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	if !info.IsDir() {
		return location, nil
	}
	location = filepath.Join(location, executable)
	if _, err := os.Stat(location); err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	return location, nil
}

type Config struct {
	BaseURI              string
	HttpClient           *http.Client
	HostOS               string
	ToolsVersion         SupportedVersion
	CacheDir             string
	DestinationDirectory string
	Logger               *logrus.Logger
}

// PlatformTools is a downloaded and extracted copy of the Android SDK
// platform tools.
type PlatformTools struct {
	httpClient       *http.Client
	downloadURI      string
	sha256           string
	workingDirectory string
	zipFile          string
	path             string
	logger           *logrus.Logger
}

// Lookup returns the download for version on hostOS, or ErrUnsupported.
func Lookup(version SupportedVersion, hostOS string) (VersionInfo, error) {
	info, ok := Downloads[version][SupportedHostOS(hostOS)]
	if !ok {
		return VersionInfo{}, fmt.Errorf("%w: version %v for %v", ErrUnsupported, version, hostOS)
	}
	return info, nil
}

func New(config *Config) (*PlatformTools, error) {
	info, err := Lookup(config.ToolsVersion, config.HostOS)
	if err != nil {
		return nil, err
	}
	baseURI := config.BaseURI
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}
	downloadURI := fmt.Sprintf(info.TemplateURL, baseURI)

	platformTools := &PlatformTools{
		httpClient:       config.HttpClient,
		downloadURI:      downloadURI,
		sha256:           info.CheckSum,
		workingDirectory: config.DestinationDirectory,
		zipFile:          filepath.Join(config.CacheDir, path.Base(downloadURI)),
		path:             filepath.Join(config.DestinationDirectory, "platform-tools"),
		logger:           config.Logger,
	}

	err = platformTools.initialize()
	if err != nil {
		return nil, err
	}

	return platformTools, nil
}

func (p *PlatformTools) initialize() error {
	logger := p.logger.WithFields(logrus.Fields{
		"downloadURI": p.downloadURI,
		"sha256":      p.sha256,
		"zipFile":     p.zipFile,
	})

	if err := p.verify(); err == nil {
		logger.Debug("re-using cached tools download")
	} else {
		logger.Debug("starting tools download")
		err = p.download()
		if err != nil {
			return err
		}

		logger.Debug("starting tools verify")
		err = p.verify()
		if err != nil {
			return err
		}
	}

	logger.Debug("starting tools extract")
	return p.extract()
}

func (p *PlatformTools) Path() PlatformToolsPath {
	return PlatformToolsPath(p.path)
}

func (p *PlatformTools) download() error {
	p.logger.Debugf("creating file %v", p.zipFile)
	out, err := os.Create(p.zipFile)
	if err != nil {
		return err
	}
	defer out.Close()

	p.logger.Debugf("downloading %v", p.downloadURI)
	resp, err := p.httpClient.Get(p.downloadURI)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad download status from %v: %v", p.downloadURI, resp.Status)
	}

	p.logger.Debugf("copying data to %v", p.zipFile)
	_, err = io.Copy(out, resp.Body)
	return err
}

func (p *PlatformTools) extract() error {
	p.logger.Debugf("unzipping %v to directory %v", p.zipFile, p.workingDirectory)
	return archiver.Unarchive(p.zipFile, p.workingDirectory)
}

func (p *PlatformTools) verify() error {
	f, err := os.Open(p.zipFile)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	sum := hex.EncodeToString(h.Sum(nil))
	if p.sha256 != sum {
		return fmt.Errorf("%w: expected sha256 of %v to be %v but got %v", ErrChecksumMismatch, p.zipFile, p.sha256, sum)
	}
	return nil
}

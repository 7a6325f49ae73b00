package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gitlab.com/adbfm/adb-file-manager/internal/color"
	"gitlab.com/adbfm/adb-file-manager/internal/devicediscovery"
	"gitlab.com/adbfm/adb-file-manager/internal/dispatch"
	"gitlab.com/adbfm/adb-file-manager/internal/platformtools"
	"gitlab.com/adbfm/adb-file-manager/internal/platformtools/adb"
	"gitlab.com/adbfm/adb-file-manager/internal/platformtools/scrcpy"
	"gitlab.com/adbfm/adb-file-manager/internal/runner"
	"gitlab.com/adbfm/adb-file-manager/internal/session"
	"gitlab.com/adbfm/adb-file-manager/internal/terminal"
	"gitlab.com/adbfm/adb-file-manager/internal/udev"
)

var (
	adbLocation    string
	scrcpyLocation string
	remotePath     string
	toolsVersion   string
	debug          bool
	downloadTools  bool
	setupUdev      bool
	hostOS         = runtime.GOOS
)

func parseFlags() {
	flag.StringVar(&adbLocation, "adb", "", "adb executable or the directory holding it (default: search PATH)")
	flag.StringVar(&scrcpyLocation, "scrcpy", "", "scrcpy executable or the directory holding it (default: search PATH)")
	flag.StringVar(&remotePath, "remote-path", session.DefaultRemotePath, "default path on the device")
	flag.StringVar(&toolsVersion, "tools-version", string(platformtools.DefaultVersion), "platform tools version used with -download-tools")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.BoolVar(&downloadTools, "download-tools", false, "download android platform tools instead of using an installed adb")
	flag.BoolVar(&setupUdev, "setup-udev", false, "install udev rules for android devices (linux only)")
	flag.Parse()
}

func main() {
	parseFlags()
	ctx, cancel := context.WithCancel(context.Background())
	c := newCleaner(os.Stdout)
	c.onInterrupt(cancel, os.Exit)
	defer c.run()

	logger := logrus.New()
	logger.ExitFunc = c.exitFunc(os.Exit)
	formatter := &prefixed.TextFormatter{ForceColors: true, ForceFormatting: true}
	formatter.SetColorScheme(&prefixed.ColorScheme{
		PrefixStyle: "white",
	})
	logger.SetFormatter(formatter)
	logger.SetOutput(colorable.NewColorableStdout())
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	processRunner := runner.New(&runner.Config{Logger: logger})

	// setup udev if running linux
	if setupUdev && hostOS == "linux" {
		logger.Debug("setting up udev")
		installer := udev.New(&udev.Config{Runner: processRunner, Logger: logger})
		installed, err := installer.Setup(ctx, udev.DefaultRules)
		if err != nil {
			logger.Fatalf(color.Red("failed to setup udev: %v"), err)
		}
		if installed {
			c.removeRules(installer)
		}
	}

	// platform tools setup
	if downloadTools {
		logger.Debug("downloading platformtools")
		if _, err := platformtools.Lookup(platformtools.SupportedVersion(toolsVersion), hostOS); err != nil {
			logger.Fatalf(color.Red("failed to setup platformtools: %v"), err)
		}
		toolZipCacheDir, tmpToolExtractDir, err := c.platformToolsDirs(toolsVersion)
		if err != nil {
			logger.Fatalf(color.Red("failed to setup platformtools temp directories: %v"), err)
		}
		platformTools, err := platformtools.New(&platformtools.Config{
			HttpClient:           &http.Client{Timeout: time.Minute * 5},
			HostOS:               hostOS,
			ToolsVersion:         platformtools.SupportedVersion(toolsVersion),
			CacheDir:             toolZipCacheDir,
			DestinationDirectory: tmpToolExtractDir,
			Logger:               logger,
		})
		if err != nil {
			logger.Fatalf(color.Red("failed to setup platformtools: %v"), err)
		}
		adbLocation = string(platformTools.Path())
	}

	// adb setup
	logger.Debug("setting up adb")
	adbPath, err := platformtools.Resolve(adbLocation, platformtools.ADB, hostOS)
	if err != nil {
		logger.Fatalf(color.Red("failed to find adb: %v"), err)
	}
	tool := adb.New(adbPath, processRunner)
	result, err := tool.StartServer(ctx)
	if err != nil {
		logger.Fatalf(color.Red("failed to start adb server: %v"), err)
	}
	if !result.Success() {
		logger.Fatalf(color.Red("failed to start adb server: %v"), result.Stderr)
	}
	if downloadTools {
		// the downloaded adb is removed on exit, so its server goes with it
		c.killServer(tool)
	}

	// scrcpy is optional, a missing binary is reported when mirroring is chosen
	scrcpyPath, err := platformtools.Resolve(scrcpyLocation, platformtools.Scrcpy, hostOS)
	if err != nil {
		logger.Debugf("scrcpy not resolved, falling back to PATH at launch: %v", err)
		scrcpyPath = ""
	}

	term := terminal.New(&terminal.Config{
		In:     os.Stdin,
		Out:    colorable.NewColorableStdout(),
		Colors: true,
	})
	s := session.New(&session.Config{
		Enumerator: devicediscovery.New(tool, logger),
		Dispatcher: dispatch.New(&dispatch.Config{
			Bridge: tool,
			Mirror: scrcpy.New(scrcpyPath, processRunner),
			Logger: logger,
		}),
		Prompter:          term,
		Sink:              term,
		DefaultRemotePath: remotePath,
		Logger:            logger,
	})

	logger.Info(color.Yellow("Enable USB debugging on the device and allow this computer when prompted"))
	err = s.Run(ctx)
	sessionLogger := logger.WithField("session", s.ID())
	switch {
	case errors.Is(err, devicediscovery.ErrNoDeviceFound), errors.Is(err, devicediscovery.ErrInvalidSelection):
		sessionLogger.Debugf("session ended without a device: %v", err)
	case err != nil:
		sessionLogger.Error(err)
	default:
		sessionLogger.Debug("session finished")
	}
}

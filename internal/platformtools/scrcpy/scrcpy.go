//go:generate mockgen -destination=mocks/mocks.go -package=mocks . ProcessStarter
package scrcpy

const (
	scrcpyExecutable = "scrcpy"
)

type ProcessStarter interface {
	Start(name string, args ...string) error
}

// Tool launches the screen mirroring client. The launched process is not
// tracked after it starts.
type Tool struct {
	executable string
	starter    ProcessStarter
}

func New(executable string, starter ProcessStarter) *Tool {
	if executable == "" {
		executable = scrcpyExecutable
	}
	return &Tool{
		executable: executable,
		starter:    starter,
	}
}

func (t *Tool) Launch() error {
	return t.starter.Start(t.executable)
}

package dispatch

// Action is one user request against the selected device.
type Action interface {
	Name() string
}

// Send pushes every file to Destination, one push per file.
type Send struct {
	Files       []string
	Destination string
}

type List struct {
	Path string
}

// Delete removes Path recursively.
type Delete struct {
	Path string
}

type Pull struct {
	RemotePath string
	LocalDir   string
}

// Mirror launches the screen mirroring client detached.
type Mirror struct{}

func (Send) Name() string   { return "send" }
func (List) Name() string   { return "list" }
func (Delete) Name() string { return "delete" }
func (Pull) Name() string   { return "pull" }
func (Mirror) Name() string { return "mirror" }

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gitlab.com/adbfm/adb-file-manager/internal/color"
	"gitlab.com/adbfm/adb-file-manager/internal/dispatch"
)

type Config struct {
	In     io.Reader
	Out    io.Writer
	Colors bool
}

// Terminal is a line based prompter and log sink. End of input counts as a
// cancelled prompt.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	colors bool
}

func New(config *Config) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(config.In),
		out:    config.Out,
		colors: config.Colors,
	}
}

func (t *Terminal) Append(entry string) {
	if t.colors && strings.HasPrefix(entry, dispatch.ErrorMarker) {
		entry = color.Red(entry)
	}
	fmt.Fprintln(t.out, entry)
}

// SelectFiles reads local paths separated by ';' or one per line until a
// blank line.
func (t *Terminal) SelectFiles() ([]string, bool) {
	fmt.Fprintln(t.out, "Files to send (separate with ';' or one per line, blank line to finish):")
	var files []string
	for {
		line, ok := t.readLine()
		if !ok {
			return files, len(files) > 0
		}
		if strings.TrimSpace(line) == "" {
			return files, true
		}
		for _, f := range strings.Split(line, ";") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
	}
}

func (t *Terminal) SelectDirectory(title string) (string, bool) {
	fmt.Fprintf(t.out, "%v: ", title)
	dir, ok := t.readLine()
	if !ok {
		return "", false
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", true
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(t.out, "%v is not a directory\n", dir)
		return "", false
	}
	return dir, true
}

func (t *Terminal) PromptText(title, initial string) (string, bool) {
	if initial != "" {
		fmt.Fprintf(t.out, "%v [%v]: ", title, initial)
	} else {
		fmt.Fprintf(t.out, "%v: ", title)
	}
	text, ok := t.readLine()
	if !ok {
		return "", false
	}
	if text = strings.TrimSpace(text); text == "" {
		return initial, true
	}
	return text, true
}

// PromptChoice returns the number typed by the user. Non numeric input is
// returned as 0 so callers reject it as out of range.
func (t *Terminal) PromptChoice(title string, options []string) (int, bool) {
	heading := title + ":"
	if t.colors {
		heading = color.Blue(heading)
	}
	fmt.Fprintln(t.out, heading)
	for _, option := range options {
		fmt.Fprintln(t.out, "  "+option)
	}
	fmt.Fprint(t.out, "> ")
	line, ok := t.readLine()
	if !ok {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, true
	}
	return choice, true
}

func (t *Terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

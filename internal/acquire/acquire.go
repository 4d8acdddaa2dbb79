// Package acquire obtains raw power-management log text from the system or a file.
package acquire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// Default log command
const (
	DefaultCommand = "pmset"
	StdinSource    = "-"
)

var DefaultArgs = []string{"-g", "log"}

var (
	ErrCommandNotFound = errors.New("log command not found")
	ErrEmptyOutput     = errors.New("log source produced no output")
	ErrInvalidEncoding = errors.New("log output is not valid UTF-8")
)

// ExitError reports a log command that exited with a non-zero status.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

// Acquirer produces raw log text.
type Acquirer interface {
	Acquire(ctx context.Context) (string, error)
	Name() string
}

// CommandAcquirer runs an external command and returns its stdout.
type CommandAcquirer struct {
	Command string
	Args    []string
}

// NewCommandAcquirer creates an acquirer for `pmset -g log`.
func NewCommandAcquirer() *CommandAcquirer {
	return &CommandAcquirer{Command: DefaultCommand, Args: DefaultArgs}
}

func (c *CommandAcquirer) Name() string {
	return strings.TrimSpace(c.Command + " " + strings.Join(c.Args, " "))
}

// Acquire runs the command and returns its output.
func (c *CommandAcquirer) Acquire(ctx context.Context) (string, error) {
	path, err := exec.LookPath(c.Command)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, c.Command)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	util.LogDebug(fmt.Sprintf("Running %s", c.Name()))
	runErr := cmd.Run()

	if stderr.Len() > 0 {
		util.LogWarn(fmt.Sprintf("%s stderr: %s", c.Command, strings.TrimSpace(stderr.String())))
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return "", &ExitError{Command: c.Command, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("run %s: %w", c.Command, ctxErr)
		}
		return "", fmt.Errorf("run %s: %w", c.Command, runErr)
	}

	return decode(stdout.Bytes(), c.Name())
}

// FileAcquirer reads a saved log from a path, or stdin when the path is "-".
type FileAcquirer struct {
	Path  string
	Stdin io.Reader
}

// NewFileAcquirer creates an acquirer reading from path.
func NewFileAcquirer(path string) *FileAcquirer {
	return &FileAcquirer{Path: path, Stdin: os.Stdin}
}

func (f *FileAcquirer) Name() string {
	if f.Path == StdinSource {
		return "stdin"
	}
	return f.Path
}

// Acquire reads the whole file.
func (f *FileAcquirer) Acquire(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var data []byte
	var err error
	if f.Path == StdinSource {
		in := f.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(f.Path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name(), err)
	}

	return decode(data, f.Name())
}

func decode(data []byte, source string) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptyOutput
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	util.LogInfo(fmt.Sprintf("Successfully read %d bytes of log data from %s", len(data), source))
	return string(data), nil
}

// New picks the acquirer for source: empty or "pmset" runs the system command,
// anything else is treated as a file path ("-" for stdin).
func New(source string) Acquirer {
	switch strings.TrimSpace(source) {
	case "", DefaultCommand:
		return NewCommandAcquirer()
	default:
		return NewFileAcquirer(source)
	}
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/filetug/cdtug/pkg/fsutils"
)

var execCommandContext = exec.CommandContext

var ErrNotADirectory = errors.New("not a directory")

// Session describes the interactive shell started after browsing.
type Session struct {
	Shell  string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSession attaches the shell to the process's standard streams.
func NewSession(shellPath, dir string) Session {
	return Session{
		Shell:  shellPath,
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the shell in s.Dir and waits for it to exit.
// The exit status of the shell itself is not treated as an error.
func (s Session) Run(ctx context.Context) error {
	exists, err := fsutils.DirExists(s.Dir)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", s.Dir, err)
	}
	if !exists {
		return fmt.Errorf("can not start shell in %s: %w", s.Dir, ErrNotADirectory)
	}
	cmd := execCommandContext(ctx, s.Shell)
	cmd.Dir = s.Dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err = cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("failed to run %s: %w", s.Shell, err)
	}
	return nil
}

package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Run(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	s := Session{
		Shell:  "/bin/sh",
		Dir:    dir,
		Stdin:  strings.NewReader("pwd\nexit 3\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	err := s.Run(context.Background())
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(stdout.String()))
}

func TestSession_Run_Errors(t *testing.T) {
	t.Run("missing_dir", func(t *testing.T) {
		s := NewSession("/bin/sh", filepath.Join(t.TempDir(), "missing"))
		err := s.Run(context.Background())
		assert.ErrorIs(t, err, ErrNotADirectory)
	})

	t.Run("file_instead_of_dir", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		err := NewSession("/bin/sh", file).Run(context.Background())
		assert.ErrorIs(t, err, ErrNotADirectory)
	})

	t.Run("missing_shell", func(t *testing.T) {
		s := NewSession(filepath.Join(t.TempDir(), "no-such-shell"), t.TempDir())
		err := s.Run(context.Background())
		assert.ErrorContains(t, err, "failed to run")
	})
}

func TestNewSession(t *testing.T) {
	s := NewSession("/bin/zsh", "/tmp")
	assert.Equal(t, "/bin/zsh", s.Shell)
	assert.Equal(t, "/tmp", s.Dir)
	assert.Equal(t, os.Stdin, s.Stdin)
	assert.Equal(t, os.Stdout, s.Stdout)
	assert.Equal(t, os.Stderr, s.Stderr)
}

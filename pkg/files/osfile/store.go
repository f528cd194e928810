package osfile

import (
	"context"
	"os"
	"strings"

	"github.com/filetug/cdtug/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)
var _ files.Stater = (*Store)(nil)

// Store reads the local filesystem.
type Store struct {
	title string
}

// RootTitle is the host name without the ".local" suffix macOS adds.
func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symlinks.
func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

// NewStore returns a store titled with the host name, or untitled when it is unknown.
func NewStore() *Store {
	title, err := osHostname()
	if err != nil {
		title = ""
	}
	return &Store{title: title}
}

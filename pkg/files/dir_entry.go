package files

import (
	"os"
	"path/filepath"
)

func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if isDir {
		dirEntry.mode = os.ModeDir
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(dirEntry, o...)
	}
	return dirEntry
}

// NewSymlinkEntry creates an entry of symlink type. Whether it points to a
// directory is only known after resolving it through a Stater.
func NewSymlinkEntry(name string) DirEntry {
	entry := NewDirEntry(name, false)
	entry.mode = os.ModeSymlink
	return entry
}

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an in-memory os.DirEntry used by non-disk stores and tests.
type DirEntry struct {
	name  string
	isDir bool
	mode  os.FileMode
	info  *FileInfo
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.isDir }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

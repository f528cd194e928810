package listing

import (
	"context"
	"io"
	"os"
	"path"
	"sort"

	"github.com/filetug/cdtug/pkg/files"
	"github.com/sirupsen/logrus"
)

// ParentSentinel is the only entry of a listing that would otherwise be empty.
// Entering it navigates to the parent directory.
const ParentSentinel = ".."

// Lister produces directory listings from a store.
type Lister struct {
	store files.Store
	log   logrus.FieldLogger
}

func NewLister(store files.Store, log logrus.FieldLogger) *Lister {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Lister{store: store, log: log}
}

// List returns the ordered paths of the children of dir. It never fails:
// an unreadable dir yields []string{ParentSentinel}.
func (l *Lister) List(ctx context.Context, dir string, filter Filter) []string {
	entries := l.ListEntries(ctx, dir, filter)
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	return paths
}

// ListEntries is like List but keeps the kind and size of each child.
func (l *Lister) ListEntries(ctx context.Context, dir string, filter Filter) []files.Entry {
	children := l.readDir(ctx, dir)

	var dirs, other []files.Entry
	for _, child := range children {
		fullPath := path.Join(dir, child.Name())
		if !filter.IsVisible(fullPath) {
			continue
		}
		entry := files.Entry{
			Path: fullPath,
			Kind: l.kindOf(ctx, fullPath, child),
		}
		if entry.Kind != files.KindDirectory {
			if info, err := child.Info(); err == nil && info != nil {
				entry.Size = info.Size()
			}
		}
		if filter.MixDirsAndFiles || entry.Kind == files.KindDirectory {
			dirs = append(dirs, entry)
		} else {
			other = append(other, entry)
		}
	}

	sortByPath(dirs)
	sortByPath(other)

	result := append(dirs, other...)
	if len(result) == 0 {
		return []files.Entry{{Path: ParentSentinel, Kind: files.KindDirectory}}
	}
	return result
}

func (l *Lister) readDir(ctx context.Context, dir string) []os.DirEntry {
	if l.store == nil {
		return nil
	}
	children, err := l.store.ReadDir(ctx, dir)
	if err != nil {
		l.log.WithFields(logrus.Fields{"dir": dir, "err": err}).Debug("listing: failed to read dir")
		return nil
	}
	return children
}

func (l *Lister) kindOf(ctx context.Context, fullPath string, child os.DirEntry) files.EntryKind {
	if child.IsDir() {
		return files.KindDirectory
	}
	if child.Type()&os.ModeSymlink == 0 {
		return files.KindFile
	}
	stater, ok := l.store.(files.Stater)
	if !ok {
		return files.KindFile
	}
	info, err := stater.Stat(ctx, fullPath)
	if err != nil {
		l.log.WithFields(logrus.Fields{"path": fullPath, "err": err}).Debug("listing: failed to resolve symlink")
		return files.KindUnknown
	}
	if info.IsDir() {
		return files.KindDirectory
	}
	return files.KindFile
}

func sortByPath(entries []files.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}

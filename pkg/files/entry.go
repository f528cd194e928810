package files

// EntryKind tells directories from everything else.
type EntryKind int

const (
	// KindUnknown is used when the entry type could not be resolved.
	// Listings bucket it together with files.
	KindUnknown EntryKind = iota
	KindFile
	KindDirectory
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Path string
	Kind EntryKind
	Size int64
}

func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Name returns the final segment of the entry path.
func (e Entry) Name() string {
	return LastSegmentOf(e.Path)
}

func (e Entry) String() string {
	return e.Path
}

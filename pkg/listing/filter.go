package listing

import (
	"github.com/filetug/cdtug/pkg/files"
)

// Filter controls which children of a directory are listed and how they are grouped.
// The zero value hides dot-files and lists directories before files.
type Filter struct {
	ShowHidden      bool
	MixDirsAndFiles bool
}

func (f Filter) IsVisible(fullPath string) bool {
	if !f.ShowHidden && files.IsHidden(fullPath) {
		return false
	}
	return true
}

func (f Filter) WithShowHidden(v bool) Filter {
	f.ShowHidden = v
	return f
}

func (f Filter) WithMixDirsAndFiles(v bool) Filter {
	f.MixDirsAndFiles = v
	return f
}

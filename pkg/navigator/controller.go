package navigator

import (
	"context"
	"io"
	"path"
	"path/filepath"

	"github.com/filetug/cdtug/pkg/files"
	"github.com/filetug/cdtug/pkg/fsutils"
	"github.com/filetug/cdtug/pkg/listing"
	"github.com/sirupsen/logrus"
)

var filepathAbs = filepath.Abs

// FocusMax is the focus fraction after JumpToEnd.
const FocusMax = 1.0

// Controller holds the navigation state of a browsing session: the current
// directory, its listing, the selected row and the listing filter.
// All commands are synchronous and the Controller is not safe for concurrent use.
type Controller struct {
	lister   *listing.Lister
	log      logrus.FieldLogger
	onChange func(c *Controller)

	filter   listing.Filter
	path     string
	entries  []files.Entry
	selected int
	focus    float64
	version  int
}

type Option func(c *Controller)

func WithFilter(filter listing.Filter) Option {
	return func(c *Controller) {
		c.filter = filter
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithOnChange registers a callback invoked after every command.
func WithOnChange(f func(c *Controller)) Option {
	return func(c *Controller) {
		c.onChange = f
	}
}

func New(store files.Store, startDir string, options ...Option) *Controller {
	c := &Controller{}
	for _, option := range options {
		option(c)
	}
	if c.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.log = discard
	}
	c.lister = listing.NewLister(store, c.log)
	c.path = absPath(startDir)
	c.reload()
	return c
}

func (c *Controller) Path() string {
	return c.path
}

func (c *Controller) Filter() listing.Filter {
	return c.filter
}

func (c *Controller) Selected() int {
	return c.selected
}

// Focus is selected/len(listing), used only to position the scroll view.
func (c *Controller) Focus() float64 {
	return c.focus
}

// Listing returns the full paths of the current entries, or the parent sentinel.
func (c *Controller) Listing() []string {
	paths := make([]string, len(c.entries))
	for i, entry := range c.entries {
		paths[i] = entry.Path
	}
	return paths
}

// ListingVersion changes every time the listing is recomputed.
func (c *Controller) ListingVersion() int {
	return c.version
}

func (c *Controller) Entries() []files.Entry {
	entries := make([]files.Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// SelectedEntry returns false when the selection is outside the listing.
func (c *Controller) SelectedEntry() (files.Entry, bool) {
	if c.selected < 0 || c.selected >= len(c.entries) {
		return files.Entry{}, false
	}
	return c.entries[c.selected], true
}

func (c *Controller) SetPath(newPath string) {
	c.log.WithField("path", newPath).Debug("navigator: set path")
	c.path = absPath(newPath)
	c.reload()
	c.changed()
}

// EnterSelected navigates into the selected entry, or to the parent
// directory when the parent sentinel is selected.
func (c *Controller) EnterSelected() {
	entry, ok := c.SelectedEntry()
	if !ok {
		c.log.WithField("selected", c.selected).Debug("navigator: nothing to enter")
		return
	}
	if entry.Path == listing.ParentSentinel {
		c.path = files.ParentOf(c.path)
	} else {
		c.path = entry.Path
	}
	c.log.WithField("path", c.path).Debug("navigator: enter")
	c.reload()
	c.changed()
}

func (c *Controller) GoToParent() {
	c.path = files.ParentOf(c.path)
	c.log.WithField("path", c.path).Debug("navigator: go to parent")
	c.reload()
	c.changed()
}

func (c *Controller) ToggleShowHidden() {
	c.filter.ShowHidden = !c.filter.ShowHidden
	c.log.WithField("show_hidden", c.filter.ShowHidden).Debug("navigator: toggle hidden")
	c.reload()
	c.changed()
}

func (c *Controller) ToggleMix() {
	c.filter.MixDirsAndFiles = !c.filter.MixDirsAndFiles
	c.log.WithField("mix", c.filter.MixDirsAndFiles).Debug("navigator: toggle mix")
	c.reload()
	c.changed()
}

// Refresh re-reads the current directory keeping the selection where possible.
func (c *Controller) Refresh() {
	selected := c.selected
	c.reload()
	if selected >= len(c.entries) {
		selected = len(c.entries) - 1
	}
	c.setSelected(selected)
	c.changed()
}

func (c *Controller) SelectionChanged(newIndex int) {
	c.setSelected(newIndex)
	c.changed()
}

func (c *Controller) JumpToStart() {
	c.selected = 0
	c.focus = 0
	c.changed()
}

// JumpToEnd selects the last entry.
func (c *Controller) JumpToEnd() {
	c.selected = len(c.entries) - 1
	if c.selected < 0 {
		c.selected = 0
	}
	c.focus = FocusMax
	c.changed()
}

// setSelected keeps the raw index but clamps focus to [0, FocusMax].
func (c *Controller) setSelected(index int) {
	c.selected = index
	if len(c.entries) == 0 {
		c.focus = 0
		return
	}
	c.focus = float64(index) / float64(len(c.entries))
	if c.focus < 0 {
		c.focus = 0
	} else if c.focus > FocusMax {
		c.focus = FocusMax
	}
}

func (c *Controller) reload() {
	c.entries = c.lister.ListEntries(context.Background(), c.path, c.filter)
	c.version++
	c.selected = 0
	c.focus = 0
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c)
	}
}

// absPath expands ~, resolves p against the working directory and cleans it,
// so ParentOf and the listed child paths always agree.
func absPath(p string) string {
	p = fsutils.ExpandHome(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepathAbs(p); err == nil {
			p = abs
		}
	}
	return path.Clean(filepath.ToSlash(p))
}

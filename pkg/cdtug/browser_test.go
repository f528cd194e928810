package cdtug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filetug/cdtug/pkg/files"
	"github.com/filetug/cdtug/pkg/files/osfile"
	"github.com/filetug/cdtug/pkg/listing"
	"github.com/filetug/cdtug/pkg/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTree(t *testing.T) string {
	t.Helper()
	root := filepath.ToSlash(t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(root, "Beta"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Beta", "inner.txt"), []byte("inner"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("h"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha"), make([]byte, 2048), 0644))
	return root
}

func newTestBrowser(t *testing.T, dir string) (*Browser, *testApp) {
	t.Helper()
	app := newTestApp(t)
	b := SetupApp(app, osfile.NewStore(), dir)
	return b, app
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func columnTexts(b *Browser, col int) []string {
	texts := make([]string, b.table.GetRowCount())
	for row := range texts {
		texts[row] = strings.TrimSpace(b.table.GetCell(row, col).Text)
	}
	return texts
}

func TestSetupApp(t *testing.T) {
	root := newTestTree(t)
	b, app := newTestBrowser(t, root)

	assert.True(t, app.mouse)
	assert.Equal(t, b, app.root)
	assert.Equal(t, b.table, app.focused)
	assert.Equal(t, root, b.Path())
	assert.Equal(t, root, b.input.GetText())
	assert.Equal(t, []string{"Beta/", "empty/", "alpha"}, columnTexts(b, 0))
	assert.Equal(t, []string{"", "", "2.0 KiB"}, columnTexts(b, 1))

	entry, ok := b.table.GetCell(2, 0).GetReference().(files.Entry)
	require.True(t, ok)
	assert.Equal(t, root+"/alpha", entry.Path)
}

func TestBrowser_Keys(t *testing.T) {
	root := newTestTree(t)
	b, app := newTestBrowser(t, root)
	capture := b.table.GetInputCapture()

	t.Run("toggle_hidden", func(t *testing.T) {
		b.ctl.SelectionChanged(2)
		assert.Nil(t, capture(runeKey('h')))
		assert.True(t, b.ctl.Filter().ShowHidden)
		assert.Equal(t, []string{"Beta/", "empty/", ".hidden", "alpha"}, columnTexts(b, 0))
		row, _ := b.table.GetSelection()
		assert.Equal(t, 0, row)
	})

	t.Run("toggle_mix", func(t *testing.T) {
		assert.Nil(t, capture(runeKey('d')))
		assert.True(t, b.ctl.Filter().MixDirsAndFiles)
		assert.Equal(t, []string{".hidden", "Beta/", "alpha", "empty/"}, columnTexts(b, 0))
		capture(runeKey('d'))
		capture(runeKey('h'))
		assert.Equal(t, listing.Filter{}, b.ctl.Filter())
	})

	t.Run("end_and_home", func(t *testing.T) {
		assert.Nil(t, capture(key(tcell.KeyEnd)))
		row, _ := b.table.GetSelection()
		assert.Equal(t, 2, row)
		assert.Equal(t, 2, b.ctl.Selected())
		assert.Equal(t, navigator.FocusMax, b.ctl.Focus())
		assert.Contains(t, b.table.GetTitle(), "100%")

		assert.Nil(t, capture(key(tcell.KeyHome)))
		row, _ = b.table.GetSelection()
		assert.Equal(t, 0, row)
		assert.Contains(t, b.table.GetTitle(), " 0% ")
	})

	t.Run("enter_and_backspace", func(t *testing.T) {
		assert.Nil(t, capture(key(tcell.KeyEnter)))
		assert.Equal(t, root+"/Beta", b.Path())
		assert.Equal(t, root+"/Beta", b.input.GetText())
		assert.Equal(t, []string{"inner.txt"}, columnTexts(b, 0))

		assert.Nil(t, capture(key(tcell.KeyBackspace2)))
		assert.Equal(t, root, b.Path())
		assert.Nil(t, capture(key(tcell.KeyBackspace)))
		assert.Equal(t, files.ParentOf(root), b.Path())
		b.ctl.SetPath(root)
	})

	t.Run("sentinel", func(t *testing.T) {
		b.ctl.SetPath(root + "/empty")
		assert.Equal(t, []string{".."}, columnTexts(b, 0))
		capture(key(tcell.KeyEnter))
		assert.Equal(t, root, b.Path())
	})

	t.Run("refresh", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "zeta"), nil, 0644))
		assert.Nil(t, capture(runeKey('r')))
		assert.Equal(t, []string{"Beta/", "empty/", "alpha", "zeta"}, columnTexts(b, 0))
	})

	t.Run("focus_input", func(t *testing.T) {
		assert.Nil(t, capture(runeKey('/')))
		assert.Equal(t, b.input, app.focused)
		b.SetFocus()
		assert.Nil(t, capture(key(tcell.KeyTab)))
		assert.Equal(t, b.input, app.focused)
		b.SetFocus()
	})

	t.Run("passthrough", func(t *testing.T) {
		event := runeKey('x')
		assert.Equal(t, event, capture(event))
		down := key(tcell.KeyDown)
		assert.Equal(t, down, capture(down))
	})

	t.Run("quit", func(t *testing.T) {
		assert.Nil(t, capture(runeKey('q')))
		assert.True(t, app.stopped)
		app.stopped = false
		assert.Nil(t, capture(key(tcell.KeyEscape)))
		assert.True(t, app.stopped)
	})
}

func TestBrowser_SelectionChanged(t *testing.T) {
	root := newTestTree(t)
	b, _ := newTestBrowser(t, root)

	b.selectionChanged(1, 0)
	assert.Equal(t, 1, b.ctl.Selected())
	assert.InDelta(t, 1.0/3.0, b.ctl.Focus(), 0.0001)
	assert.Contains(t, b.table.GetTitle(), " 33% ")

	b.syncing = true
	b.selectionChanged(2, 0)
	b.syncing = false
	assert.Equal(t, 1, b.ctl.Selected())
}

func TestBrowser_InputDone(t *testing.T) {
	root := newTestTree(t)
	b, app := newTestBrowser(t, root)

	t.Run("enter", func(t *testing.T) {
		app.focused = b.input
		b.input.SetText(root + "/Beta")
		b.inputDone(tcell.KeyEnter)
		assert.Equal(t, root+"/Beta", b.Path())
		assert.Equal(t, b.table, app.focused)
	})

	t.Run("escape_restores_path", func(t *testing.T) {
		b.input.SetText("/some/thing/typed")
		b.inputDone(tcell.KeyEscape)
		assert.Equal(t, root+"/Beta", b.input.GetText())
		assert.Equal(t, root+"/Beta", b.Path())
	})

	t.Run("tab", func(t *testing.T) {
		app.focused = b.input
		b.inputDone(tcell.KeyTab)
		assert.Equal(t, b.table, app.focused)
	})

	t.Run("other_keys_ignored", func(t *testing.T) {
		app.focused = b.input
		b.inputDone(tcell.KeyF1)
		assert.Equal(t, b.input, app.focused)
	})

	t.Run("invalid_path", func(t *testing.T) {
		b.input.SetText(root + "/missing")
		b.inputDone(tcell.KeyEnter)
		assert.Equal(t, []string{".."}, columnTexts(b, 0))
	})
}

func TestBrowser_Draw(t *testing.T) {
	root := newTestTree(t)
	b, _ := newTestBrowser(t, root)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 10)

	b.SetRect(0, 0, 80, 10)
	b.Draw(screen)
	screen.Show()

	var lines []string
	for y := 0; y < 10; y++ {
		lines = append(lines, readLine(screen, y, 80))
	}
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "Beta/")
	assert.Contains(t, text, "alpha")
	assert.Contains(t, text, "2.0 KiB")
	assert.Contains(t, text, "quit")
}

// readLine reads a full line from the screen
func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

func TestRenderEntry(t *testing.T) {
	t.Run("sentinel", func(t *testing.T) {
		name, size := renderEntry(files.Entry{Path: listing.ParentSentinel, Kind: files.KindDirectory})
		assert.Equal(t, " ..", name.Text)
		assert.Equal(t, " ", size.Text)
	})
	t.Run("unknown", func(t *testing.T) {
		name, size := renderEntry(files.Entry{Path: "/a/broken", Kind: files.KindUnknown})
		assert.Equal(t, " broken", name.Text)
		assert.Equal(t, Style.UnknownColor, name.Color)
		assert.Equal(t, " ", size.Text)
	})
	t.Run("hidden_dir", func(t *testing.T) {
		name, _ := renderEntry(files.Entry{Path: "/a/.git", Kind: files.KindDirectory})
		assert.Equal(t, " .git/", name.Text)
		assert.Equal(t, Style.HiddenColor, name.Color)
	})
	t.Run("escaped", func(t *testing.T) {
		name, _ := renderEntry(files.Entry{Path: "/a/[red]x", Kind: files.KindFile})
		assert.NotEqual(t, " [red]x", name.Text)
	})
}

func TestBrowser_TitleShowsHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := files.NewMockStore(ctrl)
	store.EXPECT().RootTitle().Return("laptop")
	store.EXPECT().ReadDir(gomock.Any(), "/srv").Return(nil, nil).AnyTimes()

	b := SetupApp(newTestApp(t), store, "/srv")
	assert.Equal(t, " laptop:/srv · 0% ", b.table.GetTitle())
}

func TestRenderTitle(t *testing.T) {
	assert.Equal(t, " /tmp · 50% ", renderTitle("", "/tmp", 0.5))
	assert.Equal(t, " laptop:/tmp · 0% ", renderTitle("laptop", "/tmp", 0))

	long := "/" + strings.Repeat("a", 100) + "/tail"
	title := renderTitle("", long, 1)
	assert.Contains(t, title, "…")
	assert.Contains(t, title, "/tail · 100% ")
	assert.Less(t, len([]rune(title)), titleMaxWidth+12)
}

func TestLastColumns(t *testing.T) {
	assert.Equal(t, "cde", lastColumns("abcde", 3))
	assert.Equal(t, "abc", lastColumns("abc", 10))
	assert.Equal(t, "界", lastColumns("世界", 3))
	assert.Equal(t, "", lastColumns("abc", 0))
}

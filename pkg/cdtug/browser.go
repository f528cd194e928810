package cdtug

import (
	"fmt"

	"github.com/filetug/cdtug/pkg/files"
	"github.com/filetug/cdtug/pkg/fsutils"
	"github.com/filetug/cdtug/pkg/listing"
	"github.com/filetug/cdtug/pkg/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const titleMaxWidth = 60

// Browser is the path input, the entries table and the hotkey bar.
type Browser struct {
	*tview.Flex
	app    App
	ctl    *navigator.Controller
	input  *tview.InputField
	table  *tview.Table
	bottom *bottom
	host   string

	renderedVersion int
	syncing         bool
}

func NewBrowser(app App, store files.Store, startDir string, options ...navigator.Option) *Browser {
	b := &Browser{
		app:             app,
		renderedVersion: -1,
	}
	if store != nil {
		b.host = store.RootTitle()
	}

	b.input = tview.NewInputField().
		SetLabel(" ").
		SetPlaceholder("Enter Path").
		SetFieldBackgroundColor(tcell.ColorDefault)
	b.input.SetDoneFunc(b.inputDone)

	b.table = tview.NewTable().
		SetSelectable(true, false)
	b.table.SetBorder(true)
	b.table.SetBorderColor(Style.BlurBorderColor)
	b.table.SetInputCapture(b.inputCapture)
	b.table.SetSelectionChangedFunc(b.selectionChanged)
	b.table.SetFocusFunc(func() { b.table.SetBorderColor(Style.FocusedBorderColor) })
	b.table.SetBlurFunc(func() { b.table.SetBorderColor(Style.BlurBorderColor) })

	options = append(options, navigator.WithOnChange(b.render))
	b.ctl = navigator.New(store, startDir, options...)

	b.bottom = newBottom(b)

	b.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.input, 1, 0, false).
		AddItem(b.table, 0, 1, true).
		AddItem(b.bottom, 1, 0, false)

	b.render(b.ctl)
	return b
}

// Path is the directory the session ended in.
func (b *Browser) Path() string {
	return b.ctl.Path()
}

func (b *Browser) Controller() *navigator.Controller {
	return b.ctl
}

func (b *Browser) SetFocus() {
	b.app.SetFocus(b.table)
}

func (b *Browser) focusInput() {
	b.app.SetFocus(b.input)
}

func (b *Browser) quit() {
	b.app.Stop()
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		b.ctl.EnterSelected()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.ctl.GoToParent()
		return nil
	case tcell.KeyHome:
		b.ctl.JumpToStart()
		return nil
	case tcell.KeyEnd:
		b.ctl.JumpToEnd()
		return nil
	case tcell.KeyTab:
		b.focusInput()
		return nil
	case tcell.KeyEscape:
		b.quit()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			b.ctl.ToggleShowHidden()
		case 'd':
			b.ctl.ToggleMix()
		case 'r':
			b.ctl.Refresh()
		case '/':
			b.focusInput()
		case 'q':
			b.quit()
		default:
			return event
		}
		return nil
	default:
		return event
	}
}

func (b *Browser) inputDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		b.ctl.SetPath(b.input.GetText())
	case tcell.KeyEscape:
		b.input.SetText(b.ctl.Path())
	case tcell.KeyTab, tcell.KeyBacktab:
	default:
		return
	}
	b.SetFocus()
}

func (b *Browser) selectionChanged(row, _ int) {
	if b.syncing {
		return
	}
	b.ctl.SelectionChanged(row)
}

func (b *Browser) render(c *navigator.Controller) {
	b.syncing = true
	defer func() {
		b.syncing = false
	}()

	if version := c.ListingVersion(); version != b.renderedVersion {
		b.renderedVersion = version
		b.setRows(c.Entries())
		b.input.SetText(c.Path())
	}

	row := c.Selected()
	if last := b.table.GetRowCount() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	b.table.Select(row, 0)
	b.table.SetTitle(renderTitle(b.host, c.Path(), c.Focus()))
	if b.bottom != nil {
		b.bottom.render()
	}
}

func (b *Browser) setRows(entries []files.Entry) {
	b.table.Clear()
	for i, entry := range entries {
		nameCell, sizeCell := renderEntry(entry)
		b.table.SetCell(i, 0, nameCell)
		b.table.SetCell(i, 1, sizeCell)
	}
}

func renderEntry(entry files.Entry) (name, size *tview.TableCell) {
	text := entry.Name()
	color := Style.FileColor
	sizeText := ""
	switch {
	case entry.Path == listing.ParentSentinel:
		color = Style.DirColor
	case entry.Kind == files.KindDirectory:
		text += "/"
		color = Style.DirColor
	case entry.Kind == files.KindUnknown:
		color = Style.UnknownColor
	default:
		sizeText = fsutils.GetSizeShortText(entry.Size)
	}
	if files.IsHidden(entry.Path) && entry.Path != listing.ParentSentinel {
		color = Style.HiddenColor
	}
	name = tview.NewTableCell(" " + tview.Escape(text)).
		SetTextColor(color).
		SetExpansion(1).
		SetReference(entry)
	size = tview.NewTableCell(sizeText + " ").
		SetTextColor(Style.SizeColor).
		SetAlign(tview.AlignRight)
	return name, size
}

// renderTitle prefixes the path with the store's host, e.g. " laptop:/tmp · 50% ".
func renderTitle(host, dirPath string, focus float64) string {
	if runewidth.StringWidth(dirPath) > titleMaxWidth {
		dirPath = "…" + lastColumns(dirPath, titleMaxWidth-1)
	}
	if host != "" {
		dirPath = host + ":" + dirPath
	}
	return fmt.Sprintf(" %s · %d%% ", tview.Escape(dirPath), int(focus*100))
}

// lastColumns returns the longest suffix of s that fits into width columns.
func lastColumns(s string, width int) string {
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}

package cdtug

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type bottom struct {
	*tview.TextView
	browser   *Browser
	menuItems []MenuItem
}

func newBottom(browser *Browser) *bottom {
	b := &bottom{
		browser: browser,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func (b *bottom) render() {
	b.menuItems = b.getMenuItems()
	b.SetText(b.renderMenuItems(b.menuItems))
}

func (b *bottom) renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	var sb strings.Builder
	for i, mi := range menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		sb.WriteString(fmt.Sprintf(`["%s"]%s[""]`, regionID(mi.HotKeys[0]), title))
	}
	return sb.String()
}

func regionID(hotkey string) string {
	switch hotkey {
	case "⏎":
		return "enter"
	case "⌫":
		return "backspace"
	case "/":
		return "path"
	default:
		return hotkey
	}
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.menuItems {
		if regionID(mi.HotKeys[0]) == region && mi.Action != nil {
			mi.Action()
			break
		}
	}
	b.Highlight()
}

func checkbox(checked bool) string {
	if checked {
		return "✓"
	}
	return " "
}

func (b *bottom) getMenuItems() []MenuItem {
	ctl := b.browser.ctl
	var showHidden, mix bool
	if ctl != nil {
		filter := ctl.Filter()
		showHidden, mix = filter.ShowHidden, filter.MixDirsAndFiles
	}
	return []MenuItem{
		{Title: "⏎ Open", HotKeys: []string{"⏎"}, Action: func() { ctl.EnterSelected() }},
		{Title: "⌫ Up", HotKeys: []string{"⌫"}, Action: func() { ctl.GoToParent() }},
		{Title: "hidden(" + checkbox(showHidden) + ")", HotKeys: []string{"h"}, Action: func() { ctl.ToggleShowHidden() }},
		{Title: "dirs mixed(" + checkbox(mix) + ")", HotKeys: []string{"d"}, Action: func() { ctl.ToggleMix() }},
		{Title: "refresh", HotKeys: []string{"r"}, Action: func() { ctl.Refresh() }},
		{Title: "/ Path", HotKeys: []string{"/"}, Action: b.browser.focusInput},
		{Title: "quit", HotKeys: []string{"q"}, Action: b.browser.quit},
	}
}

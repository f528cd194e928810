package cdtug

import (
	"github.com/filetug/cdtug/pkg/files"
	"github.com/filetug/cdtug/pkg/navigator"
)

func SetupApp(app App, store files.Store, startDir string, options ...navigator.Option) *Browser {
	browser := NewBrowser(app, store, startDir, options...)
	app.EnableMouse(true)
	app.SetRoot(browser, true)
	browser.SetFocus()
	return browser
}

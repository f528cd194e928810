package cdtug

import (
	"testing"

	"github.com/rivo/tview"
)

type testApp struct {
	App
	focused tview.Primitive
	root    tview.Primitive
	mouse   bool
	stopped bool
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{}
	ta.App = NewApp(nil,
		WithSetFocus(func(p tview.Primitive) { ta.focused = p }),
		WithSetRoot(func(root tview.Primitive, fullscreen bool) { ta.root = root }),
		WithEnableMouse(func(b bool) { ta.mouse = b }),
		WithRun(func() error { return nil }),
		WithStop(func() { ta.stopped = true }),
	)
	return ta
}

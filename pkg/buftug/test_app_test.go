package buftug

import "github.com/rivo/tview"

// testApp is a minimal App implementation that tracks focus and root
// the way *tview.Application does, without a screen.
type testApp struct {
	root    tview.Primitive
	focused tview.Primitive
	stopped bool
	mouse   bool
	queued  int
}

func (a *testApp) Run() error { return nil }

func (a *testApp) QueueUpdateDraw(f func()) {
	a.queued++
	if f != nil {
		f()
	}
}

func (a *testApp) SetFocus(p tview.Primitive) {
	if a.focused != nil {
		a.focused.Blur()
	}
	a.focused = p
	if p != nil {
		p.Focus(func(tview.Primitive) {})
	}
}

func (a *testApp) SetRoot(root tview.Primitive, fullscreen bool) {
	_ = fullscreen
	a.root = root
}

func (a *testApp) Stop() { a.stopped = true }

func (a *testApp) EnableMouse(b bool) { a.mouse = b }

package buftug

import "github.com/rivo/tview"

// App is the part of *tview.Application the explorer needs.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	app *tview.Application
}

func NewApp(app *tview.Application) App {
	return appProxy{app: app}
}

func (a appProxy) Run() error {
	return a.app.Run()
}

func (a appProxy) QueueUpdateDraw(f func()) {
	_ = a.app.QueueUpdateDraw(f)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	_ = a.app.SetFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	_ = a.app.SetRoot(root, fullscreen)
}

func (a appProxy) Stop() {
	a.app.Stop()
}

func (a appProxy) EnableMouse(b bool) {
	_ = a.app.EnableMouse(b)
}

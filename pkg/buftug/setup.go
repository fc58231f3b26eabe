package buftug

import (
	"github.com/datatug/buftug/pkg/explorer"
)

// SetupApp makes an explorer for root the application root view.
func SetupApp(app App, root *explorer.Folder, options ...ExplorerOption) *Explorer {
	app.EnableMouse(true)
	x := NewExplorer(app, root, options...)
	app.SetRoot(x, true)
	app.SetFocus(x.tree.tv)
	return x
}

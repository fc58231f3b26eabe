package buftug

import (
	"github.com/datatug/buftug/pkg/buffers"
	"github.com/datatug/buftug/pkg/explorer"
	"github.com/datatug/buftug/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Explorer is the root view: the directory tree above the editor,
// with the status line at the bottom. It owns the list of open buffers.
type Explorer struct {
	*tview.Flex
	app App
	o   explorerOptions

	root *explorer.Folder
	list buffers.List

	tree   *dirTree
	editor *Editor
	bottom *bottom
}

type explorerOptions struct {
	editorOptions []EditorOption
}

type ExplorerOption func(o *explorerOptions)

func WithEditorOptions(options ...EditorOption) ExplorerOption {
	return func(o *explorerOptions) {
		o.editorOptions = append(o.editorOptions, options...)
	}
}

// NewExplorer builds the view for the given tree. The tree is not modified.
func NewExplorer(app App, root *explorer.Folder, options ...ExplorerOption) *Explorer {
	x := &Explorer{
		app:  app,
		root: root,
	}
	for _, option := range options {
		option(&x.o)
	}

	x.tree = newDirTree(root, x.OpenFile)
	x.tree.focusRight = func() { x.setFocus(x.editor.tabs) }
	x.bottom = newBottom(x)

	editorOptions := append([]EditorOption{
		WithTabsOptions(
			sneatv.FocusUp(func(tview.Primitive) { x.setFocus(x.tree.tv) }),
			sneatv.FocusLeft(func(tview.Primitive) { x.setFocus(x.tree.tv) }),
			sneatv.FocusDown(func(tview.Primitive) { x.setFocus(x.editor.viewer.textView) }),
			sneatv.FocusRight(func(tview.Primitive) { x.setFocus(x.editor.viewer.textView) }),
		),
	}, x.o.editorOptions...)
	editorOptions = append(editorOptions, OnChange(x.editorChanged))
	x.editor = NewEditor(editorOptions...)

	x.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	x.AddItem(x.tree, 0, 2, true)
	x.AddItem(x.editor, 0, 3, false)
	x.AddItem(x.bottom, 1, 0, false)
	x.SetInputCapture(x.inputCapture)

	return x
}

// OpenFile adds a buffer for file unless one with the same name is open.
// It does not change the active buffer.
func (x *Explorer) OpenFile(file *explorer.File) {
	list := x.list.Open(file)
	if list.Same(x.list) {
		return
	}
	logf("buffer %q opened", file.Name())
	x.list = list
	x.editor.SetBuffers(list)
}

// SetTree replaces the folder tree. Open buffers and folder expand states
// are kept; expand states follow structural positions in the new tree.
func (x *Explorer) SetTree(root *explorer.Folder) {
	x.root = root
	x.tree.setRoot(root)
}

// ReloadTree is SetTree for callers outside the UI goroutine.
func (x *Explorer) ReloadTree(root *explorer.Folder) {
	if x.app == nil {
		x.SetTree(root)
		return
	}
	x.app.QueueUpdateDraw(func() {
		x.SetTree(root)
	})
}

func (x *Explorer) Buffers() buffers.List {
	return x.list
}

func (x *Explorer) Editor() *Editor {
	return x.editor
}

// editorChanged keeps the owned list in sync when the editor drops tabs.
func (x *Explorer) editorChanged(list buffers.List, selection buffers.Selection) {
	x.list = list
	x.bottom.setStatus(list, selection)
}

func (x *Explorer) closeActive() {
	if name, ok := x.editor.Selection().Name(); ok {
		x.editor.CloseBuffer(name)
	}
}

func (x *Explorer) focusables() []tview.Primitive {
	return []tview.Primitive{
		x.tree.tv,
		x.editor.tabs,
		x.editor.viewer.textView,
	}
}

// setFocus, setRoot and stop do nothing for an explorer built without an app.
func (x *Explorer) setFocus(p tview.Primitive) {
	if x.app != nil {
		x.app.SetFocus(p)
	}
}

func (x *Explorer) setRoot(p tview.Primitive) {
	if x.app != nil {
		x.app.SetRoot(p, true)
	}
}

func (x *Explorer) stop() {
	if x.app != nil {
		x.app.Stop()
	}
}

// focusNext moves focus delta panels forward, wrapping around.
func (x *Explorer) focusNext(delta int) {
	panels := x.focusables()
	current := -1
	for i, p := range panels {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + delta + len(panels)) % len(panels)
	if current < 0 && delta < 0 {
		next = len(panels) - 1
	}
	x.setFocus(panels[next])
}

func (x *Explorer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		showHelpModal(x)
		return nil
	case tcell.KeyTab:
		x.focusNext(1)
		return nil
	case tcell.KeyBacktab:
		x.focusNext(-1)
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				x.stop()
				return nil
			}
		}
		return event
	default:
		return event
	}
}

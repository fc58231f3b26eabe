package buftug

import (
	"github.com/datatug/buftug/pkg/buffers"
	"github.com/datatug/buftug/pkg/sneatv"
	"github.com/rivo/tview"
)

// Editor shows the buffer strip above the content of the active buffer.
// It owns the active selection; the buffer list is pushed in by its owner.
type Editor struct {
	*tview.Flex
	o editorOptions

	list      buffers.List
	selection buffers.Selection

	tabs   *sneatv.Tabs
	viewer *contentViewer
}

type editorOptions struct {
	closeRemovesTab bool
	onChange        func(list buffers.List, selection buffers.Selection)
	tabsOptions     []sneatv.TabsOption
}

type EditorOption func(o *editorOptions)

// WithCloseRemovesTab makes closing a buffer drop its tab as well.
// By default closing only deactivates the buffer.
func WithCloseRemovesTab(remove bool) EditorOption {
	return func(o *editorOptions) {
		o.closeRemovesTab = remove
	}
}

// OnChange is called after the list or the selection changed.
func OnChange(f func(list buffers.List, selection buffers.Selection)) EditorOption {
	return func(o *editorOptions) {
		o.onChange = f
	}
}

func WithTabsOptions(options ...sneatv.TabsOption) EditorOption {
	return func(o *editorOptions) {
		o.tabsOptions = append(o.tabsOptions, options...)
	}
}

func NewEditor(options ...EditorOption) *Editor {
	e := &Editor{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		viewer: newContentViewer(),
	}
	for _, option := range options {
		option(&e.o)
	}
	tabsOptions := append([]sneatv.TabsOption{
		sneatv.OnSelect(e.SetActive),
		sneatv.OnClose(e.CloseBuffer),
	}, e.o.tabsOptions...)
	e.tabs = sneatv.NewTabs(sneatv.UnderlineTabsStyle, tabsOptions...)

	e.AddItem(e.tabs, 1, 0, true)
	e.AddItem(e.viewer, 0, 1, false)
	e.render()
	return e
}

func (e *Editor) Buffers() buffers.List {
	return e.list
}

func (e *Editor) Selection() buffers.Selection {
	return e.selection
}

// SetBuffers replaces the buffer list. The selection is kept as is.
func (e *Editor) SetBuffers(list buffers.List) {
	if list.Same(e.list) {
		return
	}
	e.list = list
	e.render()
}

func (e *Editor) SetActive(name string) {
	e.selection = e.selection.SetActive(name)
	logf("buffer %q activated", name)
	e.render()
}

// CloseBuffer deactivates the buffer when it is the active one.
func (e *Editor) CloseBuffer(name string) {
	e.selection = e.selection.Close(name)
	if e.o.closeRemovesTab {
		e.list = e.list.Remove(name)
	}
	logf("buffer %q closed", name)
	e.render()
}

func (e *Editor) render() {
	names := e.list.Names()
	tabs := make([]*sneatv.Tab, len(names))
	for i, name := range names {
		tabs[i] = sneatv.NewTab(name, name, true)
	}
	active, _ := e.selection.Name()
	e.tabs.SetTabs(tabs, active)

	file, state := buffers.Resolve(e.list, e.selection)
	e.viewer.Show(file, state)

	if e.o.onChange != nil {
		e.o.onChange(e.list, e.selection)
	}
}

// ViewState reports which of the viewer states is displayed.
func (e *Editor) ViewState() buffers.ViewState {
	return e.viewer.state
}

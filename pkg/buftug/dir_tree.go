package buftug

import (
	"fmt"
	"unicode/utf8"

	"github.com/datatug/buftug/pkg/explorer"
	"github.com/datatug/buftug/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	folderClosedEmoji = "📁"
	folderOpenEmoji   = "📂"
	fileEmoji         = "📄"
)

// dirTree shows the folder hierarchy. It owns the expand state of every
// folder node; the tview nodes are rebuilt from that state after a toggle.
type dirTree struct {
	*sneatv.Boxed
	tv *tview.TreeView

	root       *explorer.Folder
	state      *explorer.ExpandState
	onOpenFile func(file *explorer.File)
	focusRight func()

	nodes         map[string]*tview.TreeNode
	searchPattern string
}

func newDirTree(root *explorer.Folder, onOpenFile func(file *explorer.File)) *dirTree {
	tv := tview.NewTreeView()
	t := &dirTree{
		tv:         tv,
		Boxed:      sneatv.NewBoxed(tv, sneatv.WithRightEdge()),
		root:       root,
		state:      explorer.NewExpandState(),
		onOpenFile: onOpenFile,
	}
	tv.SetTitle("Explorer")
	tv.SetSelectedFunc(t.selected)
	tv.SetInputCapture(t.inputCapture)
	tv.SetFocusFunc(t.focus)
	tv.SetBlurFunc(t.blur)
	t.render()
	return t
}

// render rebuilds the tview nodes and keeps the cursor on the same row.
func (t *dirTree) render() {
	var currentKey string
	if current := t.tv.GetCurrentNode(); current != nil {
		if row, ok := current.GetReference().(explorer.Row); ok {
			currentKey = row.Key()
		}
	}

	t.nodes = make(map[string]*tview.TreeNode)
	if t.root == nil {
		t.tv.SetRoot(tview.NewTreeNode("(empty)").SetSelectable(false))
		return
	}
	rootNode := t.folderNode(t.root, nil)
	t.tv.SetRoot(rootNode)

	if node, ok := t.nodes[currentKey]; ok {
		t.tv.SetCurrentNode(node)
	} else {
		t.tv.SetCurrentNode(rootNode)
	}
}

func (t *dirTree) setRoot(root *explorer.Folder) {
	t.root = root
	logf("tree replaced")
	t.SetSearch("")
	t.render()
}

func (t *dirTree) folderNode(folder *explorer.Folder, p explorer.NodePath) *tview.TreeNode {
	expanded := t.state.IsExpanded(p)
	row := explorer.Row{
		Kind:     explorer.FolderRow,
		Path:     p,
		Index:    -1,
		Depth:    p.Depth(),
		Expanded: expanded,
		Folder:   folder,
	}
	node := tview.NewTreeNode(folderText(folder, expanded)).
		SetReference(row).
		SetSelectable(true)
	if folder.HasChildren() {
		node.SetColor(Style.FolderColor)
	} else {
		node.SetColor(Style.EmptyFolder)
	}
	t.nodes[row.Key()] = node

	if !expanded {
		return node
	}
	for i, sub := range folder.SubFolders {
		node.AddChild(t.folderNode(sub, p.Child(i)))
	}
	for i, file := range folder.Files {
		fileRow := explorer.Row{
			Kind:   explorer.FileRow,
			Path:   p,
			Index:  i,
			Depth:  p.Depth() + 1,
			Folder: folder,
			File:   file,
		}
		fileNode := tview.NewTreeNode(fileEmoji + tview.Escape(file.Name())).
			SetReference(fileRow).
			SetColor(Style.FileColor).
			SetSelectable(true)
		t.nodes[fileRow.Key()] = fileNode
		node.AddChild(fileNode)
	}
	return node
}

func folderText(folder *explorer.Folder, expanded bool) string {
	marker := "  "
	if folder.HasChildren() {
		if expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	emoji := folderClosedEmoji
	if expanded {
		emoji = folderOpenEmoji
	}
	return marker + emoji + tview.Escape(folder.Name())
}

func (t *dirTree) selected(node *tview.TreeNode) {
	row, ok := node.GetReference().(explorer.Row)
	if !ok {
		return
	}
	switch row.Kind {
	case explorer.FolderRow:
		t.toggle(row.Path)
	case explorer.FileRow:
		if t.onOpenFile != nil {
			t.onOpenFile(row.File)
		}
	}
}

func (t *dirTree) toggle(p explorer.NodePath) {
	expanded := t.state.Toggle(p)
	logf("folder %s expanded=%v", p, expanded)
	t.render()
}

func (t *dirTree) focus() {
	t.tv.SetGraphicsColor(Style.FocusedGraphicsColor)
}

func (t *dirTree) blur() {
	t.tv.SetGraphicsColor(Style.BlurGraphicsColor)
}

func (t *dirTree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		if t.focusRight != nil {
			t.focusRight()
			return nil
		}
		return event
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.searchPattern == "" {
			return nil
		}
		t.SetSearch(trimLastRune(t.searchPattern))
		return nil
	case tcell.KeyEscape:
		t.SetSearch("")
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			return event
		}
		s := string(event.Rune())
		if t.searchPattern == "" && s == " " {
			return event
		}
		t.SetSearch(t.searchPattern + s)
		return nil
	default:
		return event
	}
}

// SetSearch moves the cursor to the first visible row matching pattern.
// A pattern that matches nothing is trimmed until it does.
func (t *dirTree) SetSearch(pattern string) {
	t.searchPattern = pattern
	if pattern == "" {
		t.tv.SetTitle("Explorer")
		return
	}
	rows := explorer.VisibleRows(t.root, t.state)
	i := explorer.FindRow(rows, pattern)
	if i < 0 {
		t.SetSearch(trimLastRune(pattern))
		return
	}
	t.tv.SetTitle(fmt.Sprintf("Find: %s", tview.Escape(pattern)))
	t.tv.SetCurrentNode(t.nodes[rows[i].Key()])
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

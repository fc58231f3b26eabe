package buftug

import (
	"fmt"
	"strings"

	"github.com/datatug/buftug/pkg/buffers"
	"github.com/rivo/tview"
)

type menuItem struct {
	Region string
	Title  string
	HotKey string
	Action func()
}

// bottom is the status line: hotkey menu on the left, buffer summary on the right.
type bottom struct {
	*tview.TextView
	x         *Explorer
	menuItems []menuItem
	status    string
}

func newBottom(x *Explorer) *bottom {
	b := &bottom{
		x: x,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(Style.StatusColor),
	}

	b.SetHighlightedFunc(b.highlighted)
	b.menuItems = b.getMenuItems()
	b.render()

	return b
}

func (b *bottom) setStatus(list buffers.List, selection buffers.Selection) {
	active, ok := selection.Name()
	if !ok {
		active = "-"
	}
	b.status = fmt.Sprintf("Buffers: %d ┊ Active: %s", list.Len(), tview.Escape(active))
	b.render()
}

func (b *bottom) render() {
	var sb strings.Builder
	sb.WriteString(b.renderMenuItems(b.menuItems))
	if b.status != "" {
		sb.WriteString(" | ")
		sb.WriteString(b.status)
	}
	b.SetText(sb.String())
}

func (b *bottom) renderMenuItems(menuItems []menuItem) string {
	const separator = "┊"
	var sb strings.Builder
	for i, mi := range menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor, mi.HotKey)
		title := strings.Replace(mi.Title, mi.HotKey, hotkeyText, 1)
		_, _ = fmt.Fprintf(&sb, `["%s"]%s[""]`, mi.Region, title)
	}
	return sb.String()
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	defer b.Highlight()

	region := added[0]
	for _, mi := range b.menuItems {
		if mi.Region == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}

func (b *bottom) getMenuItems() []menuItem {
	return []menuItem{
		{Region: "help", Title: "F1 Help", HotKey: "F1", Action: func() { showHelpModal(b.x) }},
		{Region: "switch", Title: "Tab Switch", HotKey: "Tab", Action: func() { b.x.focusNext(1) }},
		{Region: "close", Title: "x Close", HotKey: "x", Action: func() { b.x.closeActive() }},
		{Region: "exit", Title: "Alt+X Exit", HotKey: "Alt+X", Action: b.x.stop},
	}
}


package sneatv

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type TabStyles struct {
	Foreground string
	Background string
}

type TabsStyle struct {
	Underscore bool

	ActiveFocused   TabStyles
	ActiveBlur      TabStyles
	InactiveFocused TabStyles
	InactiveBlur    TabStyles
}

// Tab is a single entry of the strip.
type Tab struct {
	ID       string
	Title    string
	Closable bool
}

func NewTab(id string, title string, closable bool) *Tab {
	return &Tab{
		ID:       id,
		Title:    title,
		Closable: closable,
	}
}

// Tabs is a one-line strip of clickable tabs. It does not own the active tab:
// it reports clicks through OnSelect and OnClose, and the owner calls
// SetTabs with the outcome.
type Tabs struct {
	*tview.TextView
	tabsOptions
	TabsStyle

	isFocused bool

	tabs   []*Tab
	active int

	textViewHighlightedFunc func(added, removed, remaining []string)
}

type tabsOptions struct {
	onSelect   func(id string)
	onClose    func(id string)
	focusDown  func(current tview.Primitive)
	focusLeft  func(current tview.Primitive)
	focusRight func(current tview.Primitive)
	focusUp    func(current tview.Primitive)
}

type TabsOption func(*tabsOptions)

func OnSelect(f func(id string)) TabsOption {
	return func(o *tabsOptions) {
		o.onSelect = f
	}
}

func OnClose(f func(id string)) TabsOption {
	return func(o *tabsOptions) {
		o.onClose = f
	}
}

func FocusDown(f func(current tview.Primitive)) TabsOption {
	return func(o *tabsOptions) {
		o.focusDown = f
	}
}

func FocusRight(f func(current tview.Primitive)) TabsOption {
	return func(o *tabsOptions) {
		o.focusRight = f
	}
}

func FocusUp(f func(current tview.Primitive)) TabsOption {
	return func(o *tabsOptions) {
		o.focusUp = f
	}
}

func FocusLeft(f func(current tview.Primitive)) TabsOption {
	return func(o *tabsOptions) {
		o.focusLeft = f
	}
}

var UnderlineTabsStyle = TabsStyle{
	Underscore: true,
	ActiveFocused: TabStyles{
		Foreground: "black",
		Background: "lightgray",
	},
	ActiveBlur: TabStyles{
		Foreground: "black",
		Background: "darkgray",
	},
	InactiveFocused: TabStyles{
		Foreground: "lightgray",
		Background: "black",
	},
	InactiveBlur: TabStyles{
		Foreground: "gray",
		Background: "black",
	},
}

// NewTabs creates an empty strip.
func NewTabs(style TabsStyle, options ...TabsOption) *Tabs {
	t := &Tabs{
		active:    -1,
		TabsStyle: style,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetWrap(false),
	}
	for _, set := range options {
		set(&t.tabsOptions)
	}

	t.TextView.SetInputCapture(t.handleInput)
	t.TextView.SetFocusFunc(func() {
		t.setIsFocused(true)
	})
	t.TextView.SetBlurFunc(func() {
		t.setIsFocused(false)
	})

	t.textViewHighlightedFunc = func(added, removed, remaining []string) {
		if len(added) == 0 {
			return
		}
		t.regionClicked(added[0])
	}
	t.TextView.SetHighlightedFunc(t.textViewHighlightedFunc)

	t.updateTextView()
	return t
}

func (t *Tabs) regionClicked(region string) {
	// Clear the highlight so that clicking the same region again fires again.
	defer t.TextView.Highlight()

	var index int
	if _, err := fmt.Sscanf(region, "tab-%d", &index); err == nil {
		t.selectIndex(index)
		return
	}
	if _, err := fmt.Sscanf(region, "close-%d", &index); err == nil {
		t.closeIndex(index)
	}
}

func (t *Tabs) selectIndex(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	if t.onSelect != nil {
		t.onSelect(t.tabs[index].ID)
	}
}

func (t *Tabs) closeIndex(index int) {
	if index < 0 || index >= len(t.tabs) || !t.tabs[index].Closable {
		return
	}
	if t.onClose != nil {
		t.onClose(t.tabs[index].ID)
	}
}

func (t *Tabs) setIsFocused(isFocused bool) {
	t.isFocused = isFocused
	t.updateTextView()
}

// SetTabs replaces the tabs and marks the tab with activeID as active.
// An empty activeID or an unknown one leaves no tab active.
func (t *Tabs) SetTabs(tabs []*Tab, activeID string) {
	t.tabs = tabs
	t.active = t.indexOf(activeID)
	t.updateTextView()
}

func (t *Tabs) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, tab := range t.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// updateTextView redraws the tab bar.
func (t *Tabs) updateTextView() {
	t.TextView.Clear()

	if len(t.tabs) == 0 {
		return
	}

	const bold = "b"
	const underline = "u"

	for i, tab := range t.tabs {
		isActive := i == t.active
		title := tview.Escape(tab.Title)

		region := fmt.Sprintf("tab-%d", i)

		var fontStyle string
		var fg string
		var bg string

		if isActive {
			if t.isFocused {
				fontStyle = bold
				fg = t.ActiveFocused.Foreground
				bg = t.ActiveFocused.Background
			} else {
				fg = t.ActiveBlur.Foreground
				bg = t.ActiveBlur.Background
			}
		} else {
			if t.isFocused {
				fg = t.InactiveFocused.Foreground
				bg = t.InactiveFocused.Background
			} else {
				fg = t.InactiveBlur.Foreground
				bg = t.InactiveBlur.Background
			}
			if t.Underscore {
				fontStyle = underline
			}
		}
		if fontStyle == "" {
			_, _ = fmt.Fprintf(t.TextView, `["%s"][%s:%s] %s [-:-][""]`, region, fg, bg, title)
		} else {
			_, _ = fmt.Fprintf(t.TextView, `["%s"][%s:%s:%s] %s [-:-:%s][""]`,
				region, fg, bg, fontStyle, title, strings.ToUpper(fontStyle))
		}
		if tab.Closable {
			if t.Underscore && !isActive {
				_, _ = fmt.Fprintf(t.TextView, `["close-%d"][%s:%s:u]✖  [-:-:U][""]`, i, fg, bg)
			} else {
				_, _ = fmt.Fprintf(t.TextView, `["close-%d"][%s:%s]✖ [-:-][""] `, i, fg, bg)
			}
		}
	}
}

// handleInput handles keyboard navigation.
func (t *Tabs) handleInput(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyRight:
		if len(t.tabs) == 0 || t.active == len(t.tabs)-1 {
			if t.focusRight != nil {
				t.focusRight(t.TextView)
			}
			return nil
		}
		t.selectIndex(t.active + 1)
		return nil
	case tcell.KeyLeft:
		if t.active <= 0 {
			if t.focusLeft != nil {
				t.focusLeft(t.TextView)
			}
			return nil
		}
		t.selectIndex(t.active - 1)
		return nil
	case tcell.KeyUp:
		if t.focusUp != nil {
			t.focusUp(t.TextView)
		}
		return nil
	case tcell.KeyDown:
		if t.focusDown != nil {
			t.focusDown(t.TextView)
		}
		return nil
	case tcell.KeyDelete:
		t.closeIndex(t.active)
		return nil
	case tcell.KeyRune:
		if ev.Modifiers() == tcell.ModAlt {
			if ev.Rune() >= '1' && ev.Rune() <= '9' {
				t.selectIndex(int(ev.Rune() - '1'))
				return nil
			}
			return ev
		}
		if ev.Rune() == 'x' {
			t.closeIndex(t.active)
			return nil
		}
		return ev
	default:
		return ev
	}
}

package buftug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `F1 - Help
Tab / Shift+Tab - Next / previous panel
Enter or click - Toggle folder, open file
Type letters - Find in tree
Left / Right - Previous / next buffer
Alt+1..9 - Buffer by number
x or Delete - Close active buffer
Alt+X - Exit the app`

func showHelpModal(x *Explorer) {
	if x.app == nil {
		return
	}
	modal, _, _ := createHelpModal(x, x)
	x.setRoot(modal)
}

func createHelpModal(x *Explorer, root tview.Primitive) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetDynamicColors(false).
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		x.setRoot(root)
		x.setFocus(x.tree.tv)
	}

	closeKeys := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeKeys)

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeKeys)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)

	helpFlex.SetBorder(true).
		SetTitle(" BufTug - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 46, 0).
		SetRows(0, 12, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}

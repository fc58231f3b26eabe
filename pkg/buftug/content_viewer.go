package buftug

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/datatug/buftug/pkg/buffers"
	"github.com/datatug/buftug/pkg/explorer"
	"github.com/datatug/buftug/pkg/sneatv"
	"github.com/rivo/tview"
)

const (
	NoOpenFilesText  = "No open files"
	NoActiveFileText = "No file selected"
)

// contentViewer shows the active file verbatim, or a placeholder.
type contentViewer struct {
	*sneatv.Boxed
	textView *tview.TextView
	footer   *tview.TextView
	state    buffers.ViewState
	file     *explorer.File
}

func newContentViewer() *contentViewer {
	textView := tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetWrap(true)
	footer := tview.NewTextView().
		SetDynamicColors(false).
		SetTextColor(Style.FooterColor)
	v := &contentViewer{
		textView: textView,
		footer:   footer,
		Boxed: sneatv.NewBoxed(textView,
			sneatv.WithFooter(footer),
		),
	}
	v.Show(nil, buffers.NoOpenFiles)
	return v
}

func (v *contentViewer) Show(file *explorer.File, state buffers.ViewState) {
	v.state = state
	v.file = file
	v.textView.Clear()
	v.textView.ScrollToBeginning()
	if file == nil || state != buffers.ShowingFile {
		v.showPlaceholder(state)
		return
	}
	v.textView.SetTitle(tview.Escape(file.Name()))
	v.textView.SetTextAlign(tview.AlignLeft)
	v.textView.SetTextColor(Style.ContentColor)
	v.textView.SetText(file.Content)
	v.footer.SetText(file.Name() + " · " + fileType(file.Name()))
}

func (v *contentViewer) showPlaceholder(state buffers.ViewState) {
	text := NoActiveFileText
	if state == buffers.NoOpenFiles {
		text = NoOpenFilesText
	}
	v.textView.SetTitle("")
	v.textView.SetTextAlign(tview.AlignCenter)
	v.textView.SetTextColor(Style.PlaceholderColor)
	v.textView.SetText(text)
	v.footer.SetText("")
}

// Text returns what the pane currently displays.
func (v *contentViewer) Text() string {
	return v.textView.GetText(false)
}

// fileType names the language detected from the file name.
func fileType(name string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return "plaintext"
	}
	return lexer.Config().Name
}

package sneatv

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// BoxedContent is what Boxed draws a frame around.
// *tview.Box and everything embedding it qualify.
type BoxedContent interface {
	tview.Primitive
	GetTitle() string
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

// frame is the set of glyphs for one focus state.
type frame struct {
	line       rune
	labelOpen  rune
	labelClose rune
	edgeTop    rune
	edgeBottom rune
	style      tcell.Style
}

var (
	focusedFrame = frame{
		line: '═', labelOpen: '╡', labelClose: '╞', edgeTop: '╕', edgeBottom: '╛',
		style: tcell.StyleDefault.Foreground(tcell.ColorCornflowerBlue).Background(tcell.ColorBlack),
	}
	blurredFrame = frame{
		line: '─', labelOpen: '┤', labelClose: '├', edgeTop: '┬', edgeBottom: '┴',
		style: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	}
)

// Boxed draws the panel title centered in a line above its content and,
// optionally, a footer centered in a line below it and an edge on the right.
type Boxed struct {
	BoxedContent
	rightEdge bool
	footer    *tview.TextView
}

type BoxOption func(*Boxed)

// WithRightEdge separates the panel from its right-hand neighbour.
func WithRightEdge() BoxOption {
	return func(b *Boxed) {
		b.rightEdge = true
	}
}

// WithFooter shows the first line of footer in the bottom line.
func WithFooter(footer *tview.TextView) BoxOption {
	return func(b *Boxed) {
		b.footer = footer
	}
}

func NewBoxed(inner BoxedContent, options ...BoxOption) *Boxed {
	b := &Boxed{BoxedContent: inner}
	for _, option := range options {
		option(b)
	}
	rightPadding := 0
	if b.rightEdge {
		rightPadding = 1
	}
	inner.SetBorderPadding(1, 1, 0, rightPadding)
	return b
}

func (b *Boxed) Draw(screen tcell.Screen) {
	b.BoxedContent.Draw(screen)

	f := blurredFrame
	if b.HasFocus() {
		f = focusedFrame
	}
	x, y, width, height := b.GetRect()
	if width <= 0 || height <= 0 {
		return
	}
	lineWidth := width
	if b.rightEdge {
		lineWidth--
		f.drawEdge(screen, x+width-1, y, height)
	}

	title := b.GetTitle()
	f.drawLine(screen, x, y, lineWidth, tview.TaggedStringWidth(title), func(lx, lw int) {
		tview.Print(screen, title, lx, y, lw, tview.AlignLeft, tcell.ColorGhostWhite)
	})

	if height < 2 {
		return
	}
	bottomY := y + height - 1
	if b.footer == nil {
		f.drawLine(screen, x, bottomY, lineWidth, 0, nil)
		return
	}
	f.drawLine(screen, x, bottomY, lineWidth, footerWidth(b.footer), func(lx, lw int) {
		b.footer.SetRect(lx, bottomY, lw, 1)
		b.footer.Draw(screen)
	})
}

// drawLine fills a horizontal line of the given width. A label of
// labelWidth cells is centered in it between the open and close glyphs
// and drawn by drawLabel.
func (f frame) drawLine(screen tcell.Screen, x, y, width, labelWidth int, drawLabel func(x, width int)) {
	if labelWidth > width-2 {
		labelWidth = width - 2
	}
	if labelWidth <= 0 || drawLabel == nil {
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, f.line, nil, f.style)
		}
		return
	}
	start := x + (width-labelWidth)/2
	for i := x; i < start-1; i++ {
		screen.SetContent(i, y, f.line, nil, f.style)
	}
	screen.SetContent(start-1, y, f.labelOpen, nil, f.style)
	drawLabel(start, labelWidth)
	end := start + labelWidth
	screen.SetContent(end, y, f.labelClose, nil, f.style)
	for i := end + 1; i < x+width; i++ {
		screen.SetContent(i, y, f.line, nil, f.style)
	}
}

func (f frame) drawEdge(screen tcell.Screen, x, y, height int) {
	screen.SetContent(x, y, f.edgeTop, nil, f.style)
	for i := 1; i < height-1; i++ {
		screen.SetContent(x, y+i, '│', nil, f.style)
	}
	if height > 1 {
		screen.SetContent(x, y+height-1, f.edgeBottom, nil, f.style)
	}
}

// footerWidth measures the first line of a footer that shows its text
// as typed, so brackets count as visible cells.
func footerWidth(footer *tview.TextView) int {
	text := footer.GetText(false)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return tview.TaggedStringWidth(tview.Escape(text))
}

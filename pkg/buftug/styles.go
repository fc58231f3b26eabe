package buftug

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedGraphicsColor tcell.Color
	BlurGraphicsColor    tcell.Color

	FolderColor tcell.Color
	FileColor   tcell.Color
	EmptyFolder tcell.Color

	ContentColor     tcell.Color
	PlaceholderColor tcell.Color
	FooterColor      tcell.Color
	StatusColor      tcell.Color

	HotkeyColor string
}

var Style = Styles{
	FocusedGraphicsColor: tcell.ColorWhite,
	BlurGraphicsColor:    tcell.ColorGray,

	FolderColor: tcell.ColorWhiteSmoke,
	FileColor:   tcell.ColorLightSkyBlue,
	EmptyFolder: tcell.ColorDarkGray,

	ContentColor:     tcell.ColorWhiteSmoke,
	PlaceholderColor: tcell.ColorGray,
	FooterColor:      tcell.ColorDarkGray,
	StatusColor:      tcell.ColorSlateGray,

	HotkeyColor: "white",
}

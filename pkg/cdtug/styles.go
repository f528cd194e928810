package cdtug

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	DirColor     tcell.Color
	FileColor    tcell.Color
	UnknownColor tcell.Color
	HiddenColor  tcell.Color
	SizeColor    tcell.Color

	HotkeyColor string
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	DirColor:     tcell.ColorCornflowerBlue,
	FileColor:    tcell.ColorWhiteSmoke,
	UnknownColor: tcell.ColorRed,
	HiddenColor:  tcell.ColorDarkGray,
	SizeColor:    tcell.ColorLightGray,

	HotkeyColor: "yellow",
}

package basetheme

import (
	"github.com/npillmayer/tss/style"
)

// DefaultName is the name of the theme returned by Default.
const DefaultName = "ansi"

func fg(n style.ColorName) style.Style {
	return style.Style{Fg: style.Named(n)}
}

func fgAttr(n style.ColorName, a style.Attributes) style.Style {
	return style.Style{Fg: style.Named(n), Attrs: a}
}

// Default returns a theme built from named terminal colors. Every highlight
// group has an entry. Clients receive a fresh copy on every call.
func Default() style.Theme {
	return style.Theme{
		style.Canvas:         {Fg: style.Named(style.FgCanvas), Bg: style.Named(style.BgCanvas)},
		style.Comment:        fgAttr(style.DarkGrey, style.Italic),
		style.Constant:       fg(style.DarkCyan),
		style.String:         fg(style.Green),
		style.EscapeSeq:      fg(style.DarkYellow),
		style.Char:           fg(style.Green),
		style.Number:         fg(style.Cyan),
		style.Boolean:        fg(style.DarkCyan),
		style.Float:          fg(style.Cyan),
		style.Identifier:     fg(style.White),
		style.Function:       fg(style.Blue),
		style.Statement:      fg(style.Magenta),
		style.Conditional:    fg(style.Magenta),
		style.Repeat:         fg(style.Magenta),
		style.Label:          fg(style.DarkMagenta),
		style.Operator:       fg(style.Grey),
		style.Keyword:        fgAttr(style.Magenta, style.Bold),
		style.Exception:      fg(style.Red),
		style.PreProc:        fg(style.Yellow),
		style.Include:        fg(style.Yellow),
		style.Define:         fg(style.Yellow),
		style.Macro:          fg(style.DarkYellow),
		style.PreCondit:      fg(style.Yellow),
		style.Type:           fg(style.Yellow),
		style.StorageClass:   fg(style.DarkYellow),
		style.Structure:      fg(style.DarkYellow),
		style.Typedef:        fg(style.Yellow),
		style.Special:        fg(style.DarkRed),
		style.SpecialChar:    fg(style.DarkYellow),
		style.Tag:            fg(style.DarkBlue),
		style.Delimiter:      fg(style.Grey),
		style.SpecialComment: fgAttr(style.Grey, style.Italic),
		style.Debug:          fg(style.DarkRed),
		style.Underline:      {Attrs: style.Underlined},
		style.Ignore:         fg(style.DarkGrey),
		style.Error:          {Fg: style.Named(style.White), Bg: style.Named(style.DarkRed), Attrs: style.Bold},
		style.Todo:           {Fg: style.Named(style.Black), Bg: style.Named(style.Yellow)},
		style.LineNr:         fg(style.DarkGrey),
		style.Prompt:         fgAttr(style.Green, style.Bold),
		style.StatusLine:     {Fg: style.Named(style.Black), Bg: style.Named(style.Grey), Attrs: style.Bold},
		style.StatusLineNC:   {Fg: style.Named(style.Black), Bg: style.Named(style.DarkGrey)},
		style.TabLine:        {Fg: style.Named(style.Grey), Bg: style.Named(style.DarkGrey)},
		style.TabOption:      {Fg: style.Named(style.Grey), Bg: style.Named(style.DarkGrey)},
		style.TabSelect:      {Fg: style.Named(style.White), Bg: style.Named(style.BgCanvas), Attrs: style.Bold},
	}
}

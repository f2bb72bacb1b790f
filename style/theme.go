package style

import "fmt"

// HighlightTable is a base theme: it maps highlight groups to styles.
// Base themes are supplied by clients (see package basetheme for ready-made
// ones) and are treated as read-only by the engine.
type HighlightTable interface {
	Lookup(Highlight) (Style, bool)
}

// Theme is a map based HighlightTable. Themes may omit groups.
type Theme map[Highlight]Style

// Lookup is part of interface HighlightTable.
func (th Theme) Lookup(h Highlight) (Style, bool) {
	s, ok := th[h]
	return s, ok
}

// StyleFor returns the style for h or a *LookupError, if the theme does not
// contain h.
func (th Theme) StyleFor(h Highlight) (Style, error) {
	return StyleFor(th, h)
}

// Canvas returns the theme's canvas entry, i.e. the default colors of
// the terminal window.
func (th Theme) Canvas() Style {
	return th[Canvas]
}

// LookupError signals a highlight group missing from a base theme.
// It is not fatal: the cascade treats it as "no contribution".
type LookupError struct {
	Highlight Highlight
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("highlight group %q not in base theme", e.Highlight.String())
}

// StyleFor looks up a highlight group in any HighlightTable. A nil table
// contains nothing.
func StyleFor(table HighlightTable, h Highlight) (Style, error) {
	if table == nil {
		return Style{}, &LookupError{Highlight: h}
	}
	s, ok := table.Lookup(h)
	if !ok {
		tracer().P("highlight", h.String()).Debugf("lookup miss in base theme")
		return Style{}, &LookupError{Highlight: h}
	}
	return s, nil
}

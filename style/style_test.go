package style_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	attrs, err := style.ParseAttributes("italic|dim")
	require.NoError(t, err)
	assert.Equal(t, style.Italic|style.Dim, attrs)
	assert.Equal(t, "italic|dim", attrs.String())

	attrs, err = style.ParseAttributes("underline | crossed_out|slowblink")
	require.NoError(t, err)
	assert.True(t, attrs.Has(style.Underlined|style.CrossedOut|style.SlowBlink))
	assert.Equal(t, "underlined|slow-blink|crossed-out", attrs.String())
}

func TestParseAttributesInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	for _, tok := range []string{"blinking", "bold|", "bold||italic", "", "dim|dim", "crossed_out|crossedout"} {
		_, err := style.ParseAttributes(tok)
		assert.True(t, errors.Is(err, style.ErrInvalidAttribute), "token %q", tok)
	}
}

func TestMergeReplacesColorsAndUnitesAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	base := style.Style{Fg: style.Named(style.Red), Bg: style.ANSI(236), Attrs: style.Italic}
	override := style.Style{Fg: style.Named(style.Blue), Attrs: style.Bold}
	merged := style.Merge(base, override)
	assert.Equal(t, style.Named(style.Blue), merged.Fg)
	assert.Equal(t, style.ANSI(236), merged.Bg, "unset override color must keep base")
	assert.Equal(t, style.Italic|style.Bold, merged.Attrs)
	assert.Equal(t, "fg:blue, bg:236, attr:bold|italic", merged.String())
}

func TestMergeEmptyOverride(t *testing.T) {
	base := style.Style{Fg: style.RGB(1, 2, 3), Attrs: style.Dim}
	assert.Equal(t, base, style.Merge(base, style.Style{}))
	assert.True(t, style.Style{}.IsEmpty())
}

func TestHighlightNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	for _, h := range style.Highlights() {
		back, ok := style.HighlightFromString(h.String())
		if !ok || back != h {
			t.Errorf("expected highlight %v to survive name lookup", h)
		}
	}
	h, ok := style.HighlightFromString("tab_select")
	assert.True(t, ok)
	assert.Equal(t, style.TabSelect, h)
	_, ok = style.HighlightFromString("bogus-group")
	assert.False(t, ok)
}

func TestThemeLookupError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	th := style.Theme{style.Comment: {Fg: style.Named(style.DarkGrey)}}
	s, err := th.StyleFor(style.Comment)
	require.NoError(t, err)
	assert.Equal(t, style.Named(style.DarkGrey), s.Fg)

	_, err = th.StyleFor(style.Keyword)
	var lerr *style.LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, style.Keyword, lerr.Highlight)

	_, err = style.StyleFor(nil, style.Comment)
	assert.Error(t, err)
}

func TestWithCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.style")
	defer teardown()
	//
	th := style.Theme{style.Canvas: {Fg: style.RGB(200, 200, 200), Bg: style.ANSI(235)}}
	s := style.Style{Fg: style.Named(style.BgCanvas), Bg: style.Named(style.BgCanvas), Attrs: style.Bold}
	resolved := s.WithCanvas(th.Canvas())
	assert.Equal(t, style.ANSI(235), resolved.Fg)
	assert.Equal(t, style.ANSI(235), resolved.Bg)
	assert.Equal(t, style.Bold, resolved.Attrs)

	s = style.Style{Fg: style.Named(style.FgCanvas), Bg: style.Named(style.Red)}
	assert.Equal(t, style.Style{Fg: style.RGB(200, 200, 200), Bg: style.Named(style.Red)}, s.WithCanvas(th.Canvas()))
	assert.Equal(t, s, s.WithCanvas(style.Style{}))
}

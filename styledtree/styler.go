package styledtree

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/style/cascade"
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/syntax"
)

// Styler resolves styles of syntax nodes and caches the results.
// A Styler is safe for concurrent use.
type Styler struct {
	current  atomic.Pointer[snapshot]
	versions atomic.Uint64
}

// snapshot is an immutable pairing of stylesheet and theme, together with
// the cache of styles resolved with them.
type snapshot struct {
	sheet   *tss.Stylesheet
	theme   style.HighlightTable
	version uint64
	cache   *styleCache
}

// NewStyler creates a Styler for a stylesheet and a base theme. A nil sheet
// is treated as the empty stylesheet.
func NewStyler(sheet *tss.Stylesheet, theme style.HighlightTable) *Styler {
	st := &Styler{}
	st.Swap(sheet, theme)
	return st
}

// Swap installs a new stylesheet and theme and returns the new version
// number. Resolutions in progress finish with the previous stylesheet.
func (st *Styler) Swap(sheet *tss.Stylesheet, theme style.HighlightTable) uint64 {
	if sheet == nil {
		sheet = tss.Empty()
	}
	snap := &snapshot{
		sheet:   sheet,
		theme:   theme,
		version: st.versions.Add(1),
		cache:   newStyleCache(),
	}
	st.current.Store(snap)
	tracer().P("version", snap.version).Infof("installed stylesheet with %d rules", sheet.Len())
	return snap.version
}

// Invalidate drops all cached styles. Clients have to call it whenever the
// syntax tree changed.
func (st *Styler) Invalidate() {
	for {
		old := st.current.Load()
		fresh := &snapshot{
			sheet:   old.sheet,
			theme:   old.theme,
			version: old.version,
			cache:   newStyleCache(),
		}
		if st.current.CompareAndSwap(old, fresh) {
			tracer().P("version", old.version).Debugf("dropped %d cached styles", old.cache.size())
			return
		}
	}
}

// Version returns the version number of the current stylesheet.
func (st *Styler) Version() uint64 {
	return st.current.Load().version
}

// Stylesheet returns the current stylesheet.
func (st *Styler) Stylesheet() *tss.Stylesheet {
	return st.current.Load().sheet
}

// Theme returns the current base theme.
func (st *Styler) Theme() style.HighlightTable {
	return st.current.Load().theme
}

// CacheSize returns the number of cached styles.
func (st *Styler) CacheSize() int {
	return st.current.Load().cache.size()
}

// StyleOf returns the resolved style of node.
func (st *Styler) StyleOf(node syntax.Node) style.Style {
	if node == nil {
		return style.Style{}
	}
	return st.current.Load().resolve(node, syntax.KeyOf(node))
}

// Build creates a styled tree for the syntax tree rooted at root, using the
// current stylesheet and theme. Resolved styles are cached.
func (st *Styler) Build(ctx context.Context, root syntax.Node) (*StyNode, error) {
	snap := st.current.Load()
	return build(ctx, root, snap.resolve)
}

func (snap *snapshot) resolve(node syntax.Node, key syntax.Key) style.Style {
	if s, ok := snap.cache.get(key); ok {
		return s
	}
	s := cascade.Resolve(snap.sheet, node, snap.theme)
	snap.cache.put(key, s)
	return s
}

// --- Cache -----------------------------------------------------------------

type styleCache struct {
	lock   *sync.RWMutex
	styles map[syntax.Key]style.Style
}

func newStyleCache() *styleCache {
	return &styleCache{
		&sync.RWMutex{},
		make(map[syntax.Key]style.Style),
	}
}

func (c *styleCache) get(key syntax.Key) (style.Style, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	s, ok := c.styles[key]
	return s, ok
}

func (c *styleCache) put(key syntax.Key, s style.Style) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.styles[key] = s
}

func (c *styleCache) size() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.styles)
}

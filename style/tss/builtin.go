package tss

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

// Names of the stylesheets shipped with this package.
const (
	TSSStyle  = "tss"  // highlighting for tss sources
	TOMLStyle = "toml" // highlighting for TOML documents
)

//go:embed builtin/*.tss
var builtinFS embed.FS

var builtins = struct {
	sync.Mutex
	sheets map[string]*Stylesheet
}{sheets: make(map[string]*Stylesheet)}

// Builtin returns one of the stylesheets shipped with this package.
// Stylesheets are compiled on first use and shared afterwards.
func Builtin(name string) (*Stylesheet, error) {
	builtins.Lock()
	defer builtins.Unlock()
	if sheet, ok := builtins.sheets[name]; ok {
		return sheet, nil
	}
	src, err := builtinFS.ReadFile("builtin/" + name + ".tss")
	if err != nil {
		return nil, fmt.Errorf("no built-in stylesheet %q", name)
	}
	sheet, err := ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("built-in stylesheet %q: %w", name, err)
	}
	tracer().P("sheet", name).Debugf("compiled built-in stylesheet")
	builtins.sheets[name] = sheet
	return sheet, nil
}

// BuiltinNames lists the names of the stylesheets shipped with this package.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n := e.Name(); len(n) > 4 && n[len(n)-4:] == ".tss" {
			names = append(names, n[:len(n)-4])
		}
	}
	sort.Strings(names)
	return names
}

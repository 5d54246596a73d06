package figfont

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Ext is the file extension of FIGfont files.
const Ext = ".flf"

//go:embed fonts/*.flf
var bundledFS embed.FS

// Bundled returns the fonts shipped with the package.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundledFS, "fonts")
	if err != nil {
		panic(err)
	}
	return sub
}

// Registry maps font names to parsed fonts. Registering a name that is
// already present replaces it; entries are never removed. Fonts found in the
// fallback file system are parsed on first lookup.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	fonts    map[string]*Font
	fallback fs.FS
}

// NewRegistry returns a registry backed by the bundled fonts.
func NewRegistry() *Registry {
	return NewRegistryFS(Bundled())
}

// NewRegistryFS returns a registry that resolves unknown names from
// <name>.flf files in fsys. A nil fsys disables the fallback.
func NewRegistryFS(fsys fs.FS) *Registry {
	return &Registry{
		fonts:    make(map[string]*Font),
		fallback: fsys,
	}
}

// Register stores f under its name.
func (r *Registry) Register(f *Font) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[f.Name] = f
}

// Parse parses data as a font called name and registers it.
func (r *Registry) Parse(name, data string) (*Font, error) {
	f, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	r.Register(f)
	return f, nil
}

// Lookup returns the font called name, loading it from the fallback file
// system if it has not been registered yet. The returned error wraps
// [ErrFontNotFound] when no such font exists.
func (r *Registry) Lookup(name string) (*Font, error) {
	r.mu.RLock()
	f, ok := r.fonts[name]
	r.mu.RUnlock()
	if ok {
		return f, nil
	}
	if r.fallback == nil || !fs.ValidPath(name) || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}

	data, err := fs.ReadFile(r.fallback, name+Ext)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("figfont: read %q: %w", name, err)
	}
	f, err = Parse(name, PatchSpace(string(data)))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// A concurrent Register wins over the fallback copy.
	if existing, ok := r.fonts[name]; ok {
		return existing, nil
	}
	r.fonts[name] = f
	return f, nil
}

// Names returns the registered and fallback font names, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	r.mu.RLock()
	for name := range r.fonts {
		seen[name] = true
	}
	r.mu.RUnlock()
	if r.fallback != nil {
		matches, _ := fs.Glob(r.fallback, "*"+Ext)
		for _, m := range matches {
			seen[strings.TrimSuffix(path.Base(m), Ext)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

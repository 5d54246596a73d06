package profilecard

import (
	"context"
	"log/slog"
)

// nopHandler discards every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Renderer renders profiles. It owns the font repository shared by every
// render, so fonts loaded once are reused. A Renderer is safe for concurrent
// use.
type Renderer struct {
	fonts   *FontRepository
	logger  *slog.Logger
	overlay func(string) string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFonts sets the font repository.
func WithFonts(fr *FontRepository) Option {
	return func(r *Renderer) {
		r.fonts = fr
	}
}

// WithFontsDir reads custom fonts from dir, falling back to the bundled
// fonts.
func WithFontsDir(dir string) Option {
	return func(r *Renderer) {
		r.fonts = NewFontRepository(dir, nil)
	}
}

// WithLogger sets the logger. By default nothing is logged.
//
// Log levels used:
//   - [slog.LevelDebug]: custom font loads
//   - [slog.LevelWarn]: classic sections that failed to render
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithOverlay sets the decoration applied when the ascii section enables
// ShowCats. The default leaves text as is.
func WithOverlay(fn func(string) string) Option {
	return func(r *Renderer) {
		r.overlay = fn
	}
}

// New returns a Renderer. Without options it uses the bundled fonts only.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		r.fonts = NewFontRepository("", nil)
	}
	if r.logger == nil {
		r.logger = slog.New(nopHandler{})
	}
	if r.overlay == nil {
		r.overlay = func(s string) string { return s }
	}
	return r
}

// Fonts returns the renderer's font repository.
func (r *Renderer) Fonts() *FontRepository { return r.fonts }

// Package widget holds the password generator's interactive state: one
// configuration, the password derived from it, and the rule that a
// configuration change regenerates the password immediately.
package widget

import (
	"sync"

	"github.com/Sugatraj/password-generator/internal/crypto"
)

// ClipboardWriter copies text to a clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}

// Widget is safe for concurrent use; every mutation is serialized.
type Widget struct {
	mu       sync.Mutex
	src      crypto.Source
	cfg      crypto.Config
	password string
}

// New creates a widget with the default configuration and generates its first password.
func New(src crypto.Source) *Widget {
	if src == nil {
		src = crypto.MathSource()
	}
	w := &Widget{src: src, cfg: crypto.DefaultConfig()}
	w.password = crypto.Generate(w.cfg, w.src)
	return w
}

// Config returns the current configuration.
func (w *Widget) Config() crypto.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Password returns the current password.
func (w *Widget) Password() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.password
}

// State returns the configuration and password as one consistent snapshot.
func (w *Widget) State() (crypto.Config, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg, w.password
}

// Apply replaces the configuration, clamping the length to the control's range,
// and regenerates when the result differs from the current configuration.
// It reports whether a new password was generated.
func (w *Widget) Apply(cfg crypto.Config) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.apply(cfg)
}

// Update applies fn to the current configuration while holding the widget lock.
func (w *Widget) Update(fn func(crypto.Config) crypto.Config) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.apply(fn(w.cfg))
}

func (w *Widget) apply(cfg crypto.Config) bool {
	cfg.Length = crypto.ClampLength(cfg.Length)
	if cfg == w.cfg {
		return false
	}
	w.cfg = cfg
	w.password = crypto.Generate(w.cfg, w.src)
	return true
}

// SetLength moves the length slider.
func (w *Widget) SetLength(n int) bool {
	return w.Update(func(cfg crypto.Config) crypto.Config {
		cfg.Length = n
		return cfg
	})
}

// ToggleDigits flips the include-digits checkbox.
func (w *Widget) ToggleDigits() {
	w.Update(func(cfg crypto.Config) crypto.Config {
		cfg.IncludeDigits = !cfg.IncludeDigits
		return cfg
	})
}

// ToggleSymbols flips the include-symbols checkbox.
func (w *Widget) ToggleSymbols() {
	w.Update(func(cfg crypto.Config) crypto.Config {
		cfg.IncludeSymbols = !cfg.IncludeSymbols
		return cfg
	})
}

// Copy writes the current password to cb. It never regenerates.
func (w *Widget) Copy(cb ClipboardWriter) error {
	return cb.WriteAll(w.Password())
}

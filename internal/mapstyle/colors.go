package mapstyle

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// FallbackTextColor is used when no preference provider has been installed.
const FallbackTextColor = lipgloss.Color("#cdd6f4")

// Default text color, read from preferences at most once per process and then
// served from the cache. A preference change after first use is not picked up;
// known limitation, call ResetDefaultTextColor to force a re-read.
var (
	defaultTextColor    atomic.Pointer[lipgloss.Color]
	defaultTextProvider atomic.Pointer[func() lipgloss.Color]
)

// SetDefaultTextColorProvider installs the preference-backed source of the
// default text color. Call during startup, before styles are built.
func SetDefaultTextColorProvider(p func() lipgloss.Color) {
	if p == nil {
		defaultTextProvider.Store(nil)
		return
	}
	defaultTextProvider.Store(&p)
}

// DefaultTextColor returns the cached default text color, populating the
// cache from the provider on first use.
func DefaultTextColor() lipgloss.Color {
	if c := defaultTextColor.Load(); c != nil {
		return *c
	}
	c := FallbackTextColor
	if p := defaultTextProvider.Load(); p != nil {
		c = (*p)()
	}
	defaultTextColor.Store(&c)
	return c
}

// ResetDefaultTextColor clears the cache so the next read consults the
// provider again.
func ResetDefaultTextColor() {
	defaultTextColor.Store(nil)
}

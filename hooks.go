package winsane

import (
	"sync"

	"github.com/winsane/winsane/pkg/catalogs"
)

// NoticeLevel grades a user-visible notice.
type NoticeLevel string

// Notice levels.
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message meant for the user, such as "running offline" or a
// failed command. Err carries the underlying error when there is one.
type Notice struct {
	Level   NoticeLevel
	Message string
	Err     error
}

// Hook function types for session events
type (
	// TweakToggledHook is called after a tweak's command succeeded and its
	// new state was recorded
	TweakToggledHook func(key catalogs.Key, enabled bool)

	// TweakAddedHook is called when a user tweak is created
	TweakAddedHook func(key catalogs.Key, tweak catalogs.Tweak)

	// TweakRemovedHook is called when a user tweak is deleted
	TweakRemovedHook func(key catalogs.Key)

	// NoticeHook is called for every user-visible notice
	NoticeHook func(Notice)
)

// hooks manages event callbacks. Hooks run after the session lock is
// released, so they may call back into the session.
type hooks struct {
	mu             sync.RWMutex
	onTweakToggled []TweakToggledHook
	onTweakAdded   []TweakAddedHook
	onTweakRemoved []TweakRemovedHook
	onNotice       []NoticeHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnTweakToggled registers a callback for toggled tweaks
func (s *session) OnTweakToggled(fn TweakToggledHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onTweakToggled = append(s.hooks.onTweakToggled, fn)
}

// OnTweakAdded registers a callback for added user tweaks
func (s *session) OnTweakAdded(fn TweakAddedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onTweakAdded = append(s.hooks.onTweakAdded, fn)
}

// OnTweakRemoved registers a callback for removed user tweaks
func (s *session) OnTweakRemoved(fn TweakRemovedHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onTweakRemoved = append(s.hooks.onTweakRemoved, fn)
}

// OnNotice registers a callback for user-visible notices
func (s *session) OnNotice(fn NoticeHook) {
	s.hooks.mu.Lock()
	defer s.hooks.mu.Unlock()
	s.hooks.onNotice = append(s.hooks.onNotice, fn)
}

func (h *hooks) toggled(key catalogs.Key, enabled bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onTweakToggled {
		fn(key, enabled)
	}
}

func (h *hooks) added(key catalogs.Key, t catalogs.Tweak) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onTweakAdded {
		fn(key, t)
	}
}

func (h *hooks) removed(key catalogs.Key) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onTweakRemoved {
		fn(key)
	}
}

func (h *hooks) notice(n Notice) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onNotice {
		fn(n)
	}
}

// events collects hook invocations made while the session lock is held and
// fires them once it is released.
type events []func()

func (e *events) add(fn func()) {
	*e = append(*e, fn)
}

func (e *events) fire() {
	for _, fn := range *e {
		fn()
	}
}

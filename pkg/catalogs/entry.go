package catalogs

import "strings"

// Entry is one item of a category. It is a header when Tweak is nil.
// Headers are positional separators: they carry a label and nothing else,
// and they are never matched by identity.
type Entry struct {
	Header string
	Tweak  *Tweak
}

// Tweak is a named toggle with the commands that switch it on and off.
type Tweak struct {
	Name    string `yaml:"name" json:"name"`
	Purpose string `yaml:"purpose,omitempty" json:"purpose,omitempty"`
	On      string `yaml:"true,omitempty" json:"true,omitempty"`
	Off     string `yaml:"false,omitempty" json:"false,omitempty"`
	Check   string `yaml:"check,omitempty" json:"check,omitempty"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// NewHeader returns a header entry with the given label.
func NewHeader(label string) *Entry {
	return &Entry{Header: label}
}

// NewTweakEntry wraps a tweak in an entry.
func NewTweakEntry(t *Tweak) *Entry {
	return &Entry{Tweak: t}
}

// IsHeader reports whether the entry is a display-only separator.
func (e *Entry) IsHeader() bool {
	return e != nil && e.Tweak == nil
}

// AsTweak returns the tweak of a non-header entry, or nil.
func (e *Entry) AsTweak() *Tweak {
	if e == nil {
		return nil
	}
	return e.Tweak
}

// Command returns the command that moves the tweak into the given state.
func (t *Tweak) Command(enabled bool) string {
	if enabled {
		return t.On
	}
	return t.Off
}

// Irreversible reports whether the tweak has no command to undo it.
func (t *Tweak) Irreversible() bool {
	return strings.TrimSpace(t.Off) == ""
}

// Valid reports whether the tweak can take part in identity matching.
func (t *Tweak) Valid() bool {
	return t != nil && t.Name != ""
}

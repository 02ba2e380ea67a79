package catalogs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// catalogDocument is the on-disk shape. Older files list features under
// "tweaks"; both keys are accepted on read and "features" is always written.
type catalogDocument struct {
	Theme    *Theme     `yaml:"theme,omitempty"`
	Features []*Feature `yaml:"features,omitempty"`
	Tweaks   []*Feature `yaml:"tweaks,omitempty"`
}

// entryDocument is the on-disk shape of an entry. A header carries only the
// header key; anything else decodes as a tweak.
type entryDocument struct {
	Header  string `yaml:"header,omitempty" json:"header,omitempty"`
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Purpose string `yaml:"purpose,omitempty" json:"purpose,omitempty"`
	On      string `yaml:"true,omitempty" json:"true,omitempty"`
	Off     string `yaml:"false,omitempty" json:"false,omitempty"`
	Check   string `yaml:"check,omitempty" json:"check,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// Parse decodes a catalog document. Empty input yields (nil, nil).
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	if doc.Theme == nil && doc.Features == nil && doc.Tweaks == nil {
		return nil, nil
	}
	features := doc.Features
	if len(features) == 0 {
		features = doc.Tweaks
	}
	return &Catalog{Theme: doc.Theme, Features: features}, nil
}

// Format encodes a catalog with two-space indentation, preserving order.
func Format(c *Catalog) ([]byte, error) {
	if c == nil {
		return nil, errors.NewValidationError("catalog", nil, "cannot format a nil catalog")
	}
	doc := catalogDocument{Theme: c.Theme, Features: c.Features}
	if doc.Features == nil {
		doc.Features = []*Feature{}
	}
	return yaml.MarshalWithOptions(doc,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

func (e Entry) document() entryDocument {
	if e.Tweak == nil {
		return entryDocument{Header: e.Header}
	}
	enabled := e.Tweak.Enabled
	return entryDocument{
		Name:    e.Tweak.Name,
		Purpose: e.Tweak.Purpose,
		On:      e.Tweak.On,
		Off:     e.Tweak.Off,
		Check:   e.Tweak.Check,
		Enabled: &enabled,
	}
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (e Entry) MarshalYAML() (any, error) {
	return e.document(), nil
}

// MarshalJSON mirrors the YAML shape so both encodings agree.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.document())
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler. Catalog files write
// the command keys bare (true: and false:), which YAML resolves as booleans,
// so keys are matched on their scalar text rather than through struct tags.
func (e *Entry) UnmarshalYAML(unmarshal func(any) error) error {
	var fields yaml.MapSlice
	if err := unmarshal(&fields); err != nil {
		return err
	}
	var doc entryDocument
	for _, item := range fields {
		switch fmt.Sprint(item.Key) {
		case "header":
			doc.Header = scalarText(item.Value)
		case "name":
			doc.Name = scalarText(item.Value)
		case "purpose":
			doc.Purpose = scalarText(item.Value)
		case "true":
			doc.On = scalarText(item.Value)
		case "false":
			doc.Off = scalarText(item.Value)
		case "check":
			doc.Check = scalarText(item.Value)
		case "enabled":
			doc.Enabled = scalarBool(item.Value)
		}
	}

	if doc.Header != "" {
		*e = Entry{Header: doc.Header}
		return nil
	}
	t := &Tweak{
		Name:    doc.Name,
		Purpose: doc.Purpose,
		On:      doc.On,
		Off:     doc.Off,
		Check:   doc.Check,
	}
	if doc.Enabled != nil {
		t.Enabled = *doc.Enabled
	}
	*e = Entry{Tweak: t}
	return nil
}

func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// scalarBool returns nil for anything that is not a boolean.
func scalarBool(v any) *bool {
	switch v := v.(type) {
	case bool:
		return &v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &b
	}
	return nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler. Older files store the
// theme as a bare mode (theme: dark); an unknown bare value yields an empty
// theme so the default applies.
func (t *Theme) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = Theme{}
		return nil
	case string:
		*t = Theme{}
		switch mode := strings.ToLower(strings.TrimSpace(v)); mode {
		case constants.ThemeModeSystem, constants.ThemeModeLight, constants.ThemeModeDark:
			t.Mode = mode
		}
		return nil
	}

	type themeDocument Theme
	var doc themeDocument
	if err := unmarshal(&doc); err != nil {
		return err
	}
	*t = Theme(doc)
	return nil
}

package catalogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane/pkg/errors"
)

const sampleDocument = `theme:
  mode: dark
  accent_color: "#ff8800"
features:
- feature: Optimizer
  icon: rocket
  categories:
  - category: System
    items:
    - header: Performance
    - name: Game Mode
      purpose: Prioritise games.
      true: Set-GameMode 1
      false: Set-GameMode 0
      check: Get-GameMode
      enabled: true
    - name: No Enabled Flag
      true: a
      false: b
  - category: User
    items: []
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, &Theme{Mode: "dark", AccentColor: "#ff8800"}, c.Theme)
	require.Len(t, c.Features, 1)
	sys := c.Lookup("Optimizer", "System")
	require.NotNil(t, sys)
	require.Len(t, sys.Items, 3)

	assert.True(t, sys.Items[0].IsHeader())
	assert.Equal(t, "Performance", sys.Items[0].Header)

	gm := sys.Tweak("Game Mode")
	require.NotNil(t, gm)
	assert.Equal(t, "Set-GameMode 1", gm.On)
	assert.Equal(t, "Set-GameMode 0", gm.Off)
	assert.Equal(t, "Get-GameMode", gm.Check)
	assert.True(t, gm.Enabled)

	assert.False(t, sys.Tweak("No Enabled Flag").Enabled)
	assert.NotNil(t, c.UserCategory())
}

func TestParseBareCommandKeys(t *testing.T) {
	c, err := Parse([]byte(`features:
- feature: Optimizer
  categories:
  - category: Performance
    items:
    - name: Game Mode
      purpose: Prioritise games.
      true: Set-GameMode 1
      false: Set-GameMode 0
      enabled: true
    - name: Quoted
      "true": on-cmd
      "false": off-cmd
      enabled: "false"
    - name: Numbers
      true: 1
      false:
`))
	require.NoError(t, err)
	cat := c.Lookup("Optimizer", "Performance")
	require.NotNil(t, cat)

	assert.Equal(t, &Tweak{
		Name:    "Game Mode",
		Purpose: "Prioritise games.",
		On:      "Set-GameMode 1",
		Off:     "Set-GameMode 0",
		Enabled: true,
	}, cat.Tweak("Game Mode"))
	assert.Equal(t, &Tweak{Name: "Quoted", On: "on-cmd", Off: "off-cmd"}, cat.Tweak("Quoted"))
	assert.Equal(t, &Tweak{Name: "Numbers", On: "1"}, cat.Tweak("Numbers"))

	enabled := c.EnabledMap()
	assert.True(t, enabled[Key{Feature: "Optimizer", Category: "Performance", Tweak: "Game Mode"}])
}

func TestParseBareTheme(t *testing.T) {
	tests := []struct {
		in   string
		want *Theme
	}{
		{"theme: dark\n", &Theme{Mode: "dark"}},
		{"theme: Light\n", &Theme{Mode: "light"}},
		{"theme: sepia\n", &Theme{}},
		{"theme:\n  mode: system\n  accent_color: \"#0581ff\"\n", &Theme{Mode: "system", AccentColor: "#0581ff"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse([]byte(tt.in + `tweaks:
- feature: Optimizer
  categories:
  - category: User
    items:
    - name: Mine
      true: a
      false: b
      enabled: true
`))
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Theme)
			assert.True(t, c.UserCategory().Tweak("Mine").Enabled)
		})
	}
}

func TestParseLegacyTweaksKey(t *testing.T) {
	c, err := Parse([]byte(`tweaks:
- feature: Optimizer
  categories:
  - category: User
    items: []
`))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotNil(t, c.UserCategory())
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("features: [unclosed"))
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFormatRoundTrip(t *testing.T) {
	orig := TestCatalog(t)
	orig.Features[0].Categories[0].Items[1].Tweak.Enabled = true

	data, err := Format(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "features:")
	assert.NotContains(t, string(data), "tweaks:")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(orig, back, cmpopts.EquateEmpty()))
}

func TestFormatNil(t *testing.T) {
	_, err := Format(nil)
	assert.True(t, errors.IsValidationError(err))
}

package catalogs

import (
	"testing"

	"github.com/winsane/winsane/pkg/constants"
)

// TestTweak creates a reversible test tweak with the given name.
func TestTweak(t testing.TB, name string) *Tweak {
	t.Helper()
	return &Tweak{
		Name:    name,
		Purpose: "Test tweak " + name,
		On:      "Set-Test -Name '" + name + "' -Value 1",
		Off:     "Set-Test -Name '" + name + "' -Value 0",
		Check:   "Get-Test -Name '" + name + "'",
	}
}

// TestCatalog creates a small catalog with an Optimizer feature holding a
// System category (one header, two tweaks) and an empty User category, plus a
// Display feature with one irreversible tweak.
func TestCatalog(t testing.TB) *Catalog {
	t.Helper()
	irreversible := TestTweak(t, "Remove Bloat")
	irreversible.Off = ""
	return &Catalog{
		Theme: DefaultTheme(),
		Features: []*Feature{
			{
				Name: constants.UserFeature,
				Icon: "rocket",
				Categories: []*Category{
					{
						Name: "System",
						Items: []*Entry{
							NewHeader("Performance"),
							NewTweakEntry(TestTweak(t, "Disable Telemetry")),
							NewTweakEntry(TestTweak(t, "Game Mode")),
						},
					},
					{Name: constants.UserCategory, Items: []*Entry{}},
				},
			},
			{
				Name: "Display",
				Icon: "monitor",
				Categories: []*Category{
					{
						Name:  "Cleanup",
						Items: []*Entry{NewTweakEntry(irreversible)},
					},
				},
			},
		},
	}
}

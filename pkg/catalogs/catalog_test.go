package catalogs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

func TestLookup(t *testing.T) {
	c := TestCatalog(t)

	assert.NotNil(t, c.Lookup("Optimizer", "System"))
	assert.NotNil(t, c.UserCategory())
	assert.Nil(t, c.Lookup("Optimizer", "Missing"))
	assert.Nil(t, c.Lookup("Missing", "System"))

	var nilCatalog *Catalog
	assert.Nil(t, nilCatalog.Lookup("Optimizer", "System"))
}

func TestCategoryTweakSkipsHeaders(t *testing.T) {
	cat := &Category{
		Name: "System",
		Items: []*Entry{
			NewHeader("Game Mode"),
			nil,
			NewTweakEntry(&Tweak{}),
			NewTweakEntry(&Tweak{Name: "Game Mode", On: "on"}),
		},
	}

	got := cat.Tweak("Game Mode")
	require.NotNil(t, got)
	assert.Equal(t, "on", got.On)
	assert.Nil(t, cat.Tweak(""))
}

func TestEnsureCategory(t *testing.T) {
	t.Run("creates feature at front", func(t *testing.T) {
		c := &Catalog{Features: []*Feature{{Name: "Display"}}}
		cat := c.EnsureCategory(constants.UserFeature, constants.UserCategory)

		require.NotNil(t, cat)
		require.Len(t, c.Features, 2)
		assert.Equal(t, constants.UserFeature, c.Features[0].Name)
		assert.Same(t, cat, c.UserCategory())
		assert.NotNil(t, cat.Items)
	})

	t.Run("reuses existing category", func(t *testing.T) {
		c := TestCatalog(t)
		before := c.UserCategory()
		assert.Same(t, before, c.EnsureCategory(constants.UserFeature, constants.UserCategory))
		assert.Len(t, c.Features, 2)
	})
}

func TestCopyIsDeep(t *testing.T) {
	orig := TestCatalog(t)
	cp := orig.Copy()

	require.Empty(t, cmp.Diff(orig, cp))

	cp.Theme.Mode = constants.ThemeModeDark
	cp.Features[0].Name = "Changed"
	cp.Features[0].Categories[0].Items[1].Tweak.Enabled = true
	cp.Features[0].Categories[0].Items = append(cp.Features[0].Categories[0].Items, NewHeader("x"))

	assert.Equal(t, constants.ThemeModeSystem, orig.Theme.Mode)
	assert.Equal(t, constants.UserFeature, orig.Features[0].Name)
	assert.False(t, orig.Features[0].Categories[0].Items[1].Tweak.Enabled)
	assert.Len(t, orig.Features[0].Categories[0].Items, 3)

	var nilCatalog *Catalog
	assert.Nil(t, nilCatalog.Copy())
}

func TestTweaks(t *testing.T) {
	c := TestCatalog(t)
	records := c.Tweaks()

	require.Len(t, records, 3)
	assert.Equal(t, Key{Feature: "Optimizer", Category: "System", Tweak: "Disable Telemetry"}, records[0].Key)
	assert.Equal(t, "Game Mode", records[1].Key.Tweak)
	assert.Equal(t, "Remove Bloat", records[2].Key.Tweak)
	assert.True(t, records[2].Irreversible)
	assert.False(t, records[0].User)
}

func TestFindAndSetEnabled(t *testing.T) {
	c := TestCatalog(t)
	key := Key{Feature: "Optimizer", Category: "System", Tweak: "Game Mode"}

	require.NoError(t, c.SetEnabled(key, true))
	tw, err := c.Find(key)
	require.NoError(t, err)
	assert.True(t, tw.Enabled)

	err = c.SetEnabled(Key{Feature: "Optimizer", Category: "System", Tweak: "Nope"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestEnabledMapFirstOccurrenceWins(t *testing.T) {
	c := &Catalog{Features: []*Feature{{
		Name: "Optimizer",
		Categories: []*Category{{
			Name: "System",
			Items: []*Entry{
				NewTweakEntry(&Tweak{Name: "A", Enabled: true}),
				NewTweakEntry(&Tweak{Name: "A", Enabled: false}),
				NewHeader("A"),
			},
		}},
	}}}

	m := c.EnabledMap()
	assert.Len(t, m, 1)
	assert.True(t, m[Key{Feature: "Optimizer", Category: "System", Tweak: "A"}])
}

func TestSearch(t *testing.T) {
	c := TestCatalog(t)

	assert.Len(t, c.Search(""), 3)
	got := c.Search("game")
	require.Len(t, got, 1)
	assert.Equal(t, "Game Mode", got[0].Key.Tweak)
	assert.Len(t, c.Search("TEST TWEAK"), 3)
	assert.Empty(t, c.Search("nothing matches"))
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Optimizer/User/a/b")
	require.NoError(t, err)
	assert.Equal(t, Key{Feature: "Optimizer", Category: "User", Tweak: "a/b"}, k)
	assert.True(t, k.IsUser())
	assert.Equal(t, "Optimizer/User/a/b", k.String())

	for _, in := range []string{"", "Optimizer", "Optimizer/User", "/User/x", "Optimizer//x"} {
		_, err := ParseKey(in)
		assert.True(t, errors.IsValidationError(err), in)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, TestCatalog(t).Validate())

	c := TestCatalog(t)
	sys := c.Lookup("Optimizer", "System")
	sys.Items = append(sys.Items,
		NewTweakEntry(TestTweak(t, "Game Mode")),
		NewTweakEntry(&Tweak{Purpose: "nameless"}),
	)
	c.Features = append(c.Features, &Feature{})
	c.Theme.Mode = "sepia"

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "duplicate tweak Optimizer/System/Game Mode")
	assert.Contains(t, err.Error(), "neither a header nor a named tweak")
	assert.Contains(t, err.Error(), "feature #3 has no name")
	assert.Contains(t, err.Error(), "mode")
}

func TestValidateSlashInNames(t *testing.T) {
	c := TestCatalog(t)
	c.Features = append(c.Features, &Feature{
		Name:       "Net/Work",
		Categories: []*Category{{Name: "DNS/Cache", Items: []*Entry{}}},
	})

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `feature "Net/Work" contains a slash`)
	assert.Contains(t, err.Error(), "category Net/Work/DNS/Cache contains a slash")
}

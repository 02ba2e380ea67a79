package reconcile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/reconcile"
)

func tweak(name string, enabled bool) *catalogs.Entry {
	return catalogs.NewTweakEntry(&catalogs.Tweak{
		Name:    name,
		Purpose: name + " purpose",
		On:      "enable " + name,
		Off:     "disable " + name,
		Enabled: enabled,
	})
}

func category(name string, items ...*catalogs.Entry) *catalogs.Category {
	if items == nil {
		items = []*catalogs.Entry{}
	}
	return &catalogs.Category{Name: name, Items: items}
}

func feature(name string, cats ...*catalogs.Category) *catalogs.Feature {
	return &catalogs.Feature{Name: name, Categories: cats}
}

func catalog(theme *catalogs.Theme, features ...*catalogs.Feature) *catalogs.Catalog {
	return &catalogs.Catalog{Theme: theme, Features: features}
}

func key(f, c, t string) catalogs.Key {
	return catalogs.Key{Feature: f, Category: c, Tweak: t}
}

func enabledAt(t *testing.T, c *catalogs.Catalog, k catalogs.Key) bool {
	t.Helper()
	tw, err := c.Find(k)
	require.NoError(t, err)
	return tw.Enabled
}

func countNamed(c *catalogs.Catalog, f, cat, name string) int {
	n := 0
	for _, r := range c.Tweaks() {
		if r.Key == key(f, cat, name) {
			n++
		}
	}
	return n
}

func sampleRemote() *catalogs.Catalog {
	return catalog(
		&catalogs.Theme{Mode: "light", AccentColor: "#0581ff"},
		feature("Optimizer",
			category("Performance",
				catalogs.NewHeader("Telemetry"),
				tweak("DisableTelemetry", false),
				tweak("GameMode", true),
			),
			category("User"),
		),
		feature("Display", category("Visuals", tweak("Transparency", false))),
	)
}

func sampleLocal() *catalogs.Catalog {
	return catalog(
		&catalogs.Theme{Mode: "dark", AccentColor: "#ff0000"},
		feature("Optimizer",
			category("Performance",
				tweak("DisableTelemetry", true),
				tweak("GameMode", false),
				tweak("Retired", true),
			),
			category("User", tweak("MyTweak", true)),
		),
	)
}

func TestMergeNilRemoteReturnsLocal(t *testing.T) {
	local := sampleLocal()
	assert.Same(t, local, reconcile.Merge(nil, local))
	assert.Nil(t, reconcile.Merge(nil, nil))

	_, report, err := reconcile.MergeWithReport(nil, local)
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModeOffline, report.Mode)
}

func TestMergeNilLocalReturnsRemote(t *testing.T) {
	remote := sampleRemote()
	assert.Same(t, remote, reconcile.Merge(remote, nil))

	_, report, err := reconcile.MergeWithReport(remote, nil)
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModeFirstRun, report.Mode)
}

func TestMergeCarriesEnabledState(t *testing.T) {
	result := reconcile.Merge(sampleRemote(), sampleLocal())

	assert.True(t, enabledAt(t, result, key("Optimizer", "Performance", "DisableTelemetry")))
	assert.False(t, enabledAt(t, result, key("Optimizer", "Performance", "GameMode")))
	assert.False(t, enabledAt(t, result, key("Display", "Visuals", "Transparency")))
}

func TestMergeKeepsRemoteStructure(t *testing.T) {
	remote := sampleRemote()
	remote.Features[0].Categories[0].Items[1].Tweak.Purpose = "upstream wording"
	local := sampleLocal()
	local.Features[0].Categories[0].Items[0].Tweak.Purpose = "stale wording"
	local.Features[0].Categories[0].Items[0].Tweak.On = "stale command"

	result := reconcile.Merge(remote, local)

	perf := result.Lookup("Optimizer", "Performance")
	require.NotNil(t, perf)
	require.Len(t, perf.Items, 3)
	assert.True(t, perf.Items[0].IsHeader())
	assert.Equal(t, "Telemetry", perf.Items[0].Header)

	dt := perf.Tweak("DisableTelemetry")
	assert.Equal(t, "upstream wording", dt.Purpose)
	assert.Equal(t, "enable DisableTelemetry", dt.On)

	require.Len(t, result.Features, 2)
	assert.Equal(t, "Display", result.Features[1].Name)
}

func TestMergeDropsTweaksRemovedUpstream(t *testing.T) {
	result, report, err := reconcile.MergeWithReport(sampleRemote(), sampleLocal())
	require.NoError(t, err)

	assert.Zero(t, countNamed(result, "Optimizer", "Performance", "Retired"))
	assert.Equal(t, []catalogs.Key{key("Optimizer", "Performance", "Retired")}, report.Dropped)
}

func TestMergeLocalThemeWins(t *testing.T) {
	local := sampleLocal()
	result := reconcile.Merge(sampleRemote(), local)
	assert.Equal(t, local.Theme, result.Theme)
	assert.NotSame(t, local.Theme, result.Theme)

	local.Theme = &catalogs.Theme{}
	result = reconcile.Merge(sampleRemote(), local)
	assert.Equal(t, "light", result.Theme.Mode)

	local.Theme = nil
	result = reconcile.Merge(sampleRemote(), local)
	assert.Equal(t, "#0581ff", result.Theme.AccentColor)
}

func TestMergeAppendsUserTweaks(t *testing.T) {
	result := reconcile.Merge(sampleRemote(), sampleLocal())

	assert.Equal(t, 1, countNamed(result, "Optimizer", "User", "MyTweak"))
	assert.True(t, enabledAt(t, result, key("Optimizer", "User", "MyTweak")))
}

func TestMergeUserTweakAlreadyInRemote(t *testing.T) {
	remote := sampleRemote()
	remote.UserCategory().Items = []*catalogs.Entry{tweak("MyTweak", false)}
	remote.UserCategory().Items[0].Tweak.On = "upstream command"

	result := reconcile.Merge(remote, sampleLocal())

	assert.Equal(t, 1, countNamed(result, "Optimizer", "User", "MyTweak"))
	tw, err := result.Find(key("Optimizer", "User", "MyTweak"))
	require.NoError(t, err)
	assert.Equal(t, "upstream command", tw.On)
	assert.True(t, tw.Enabled)
}

func TestMergeCreatesUserCategory(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		remote := catalog(nil, feature("Optimizer", category("Performance")))
		result := reconcile.Merge(remote, sampleLocal())

		user := result.UserCategory()
		require.NotNil(t, user)
		assert.Equal(t, "Performance", result.Features[0].Categories[0].Name)
		assert.Equal(t, 1, countNamed(result, "Optimizer", "User", "MyTweak"))
	})

	t.Run("missing feature", func(t *testing.T) {
		remote := catalog(nil, feature("Display", category("Visuals")))
		result := reconcile.Merge(remote, sampleLocal())

		require.Len(t, result.Features, 2)
		assert.Equal(t, "Optimizer", result.Features[0].Name)
		assert.NotNil(t, result.UserCategory())
	})

	t.Run("nothing to append", func(t *testing.T) {
		remote := catalog(nil, feature("Display", category("Visuals")))
		local := catalog(nil, feature("Optimizer", category("User")))
		result := reconcile.Merge(remote, local)

		require.Len(t, result.Features, 2)
		user := result.UserCategory()
		require.NotNil(t, user)
		assert.Empty(t, user.Items)
	})

	t.Run("headers only", func(t *testing.T) {
		remote := catalog(nil, feature("Optimizer", category("Performance")))
		local := catalog(nil, feature("Optimizer",
			category("Performance"),
			category("User", catalogs.NewHeader("Mine")),
		))
		result := reconcile.Merge(remote, local)

		require.NotNil(t, result.UserCategory())
		_, err := result.AddUserTweak("Later", "", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, 1, countNamed(result, "Optimizer", "User", "Later"))
	})

	t.Run("no local user category", func(t *testing.T) {
		remote := catalog(nil, feature("Display", category("Visuals")))
		local := catalog(nil, feature("Display", category("Visuals")))
		result := reconcile.Merge(remote, local)

		assert.Len(t, result.Features, 1)
		assert.Nil(t, result.UserCategory())
	})
}

func TestMergeUserTweakOrderAndDuplicates(t *testing.T) {
	local := catalog(nil, feature("Optimizer", category("User",
		catalogs.NewHeader("Mine"),
		tweak("B", true),
		tweak("A", false),
		tweak("B", false),
		catalogs.NewTweakEntry(&catalogs.Tweak{Purpose: "no name"}),
		nil,
	)))

	result, report, err := reconcile.MergeWithReport(sampleRemote(), local)
	require.NoError(t, err)

	user := result.UserCategory()
	require.Len(t, user.Items, 2)
	assert.Equal(t, "B", user.Items[0].Tweak.Name)
	assert.True(t, user.Items[0].Tweak.Enabled)
	assert.Equal(t, "A", user.Items[1].Tweak.Name)
	assert.Equal(t, []string{"B", "A"}, report.UserTweaks)
}

func TestMergeIsIdempotent(t *testing.T) {
	remote := sampleRemote()
	once := reconcile.Merge(remote, sampleLocal())
	twice := reconcile.Merge(remote, once)

	assert.Empty(t, cmp.Diff(once, twice))
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	remote, local := sampleRemote(), sampleLocal()
	remoteBefore, localBefore := remote.Copy(), local.Copy()

	result := reconcile.Merge(remote, local)
	result.Features[0].Categories[0].Items[1].Tweak.Purpose = "changed"
	result.Theme.Mode = "system"

	assert.Empty(t, cmp.Diff(remoteBefore, remote))
	assert.Empty(t, cmp.Diff(localBefore, local))
}

func TestMergeToleratesMalformedEntries(t *testing.T) {
	remote := sampleRemote()
	remote.Features = append(remote.Features, nil, feature("", category("X", tweak("Y", false))))
	local := sampleLocal()
	local.Features[0].Categories[0].Items = append(local.Features[0].Categories[0].Items,
		catalogs.NewTweakEntry(&catalogs.Tweak{Enabled: true}), nil)

	var result *catalogs.Catalog
	require.NotPanics(t, func() { result = reconcile.Merge(remote, local) })
	assert.True(t, enabledAt(t, result, key("Optimizer", "Performance", "DisableTelemetry")))
}

func TestMergeHeadersNeverMatched(t *testing.T) {
	remote := catalog(nil, feature("Optimizer", category("Performance", catalogs.NewHeader("GameMode"))))
	local := catalog(nil, feature("Optimizer", category("Performance",
		catalogs.NewHeader("Other"), tweak("GameMode", true))))

	result := reconcile.Merge(remote, local)
	items := result.Lookup("Optimizer", "Performance").Items
	require.Len(t, items, 1)
	assert.True(t, items[0].IsHeader())
	assert.Equal(t, "GameMode", items[0].Header)
}

func TestMergeReport(t *testing.T) {
	_, report, err := reconcile.MergeWithReport(sampleRemote(), sampleLocal())
	require.NoError(t, err)

	assert.Equal(t, reconcile.ModeMerged, report.Mode)
	assert.Equal(t, []catalogs.Key{
		key("Optimizer", "Performance", "DisableTelemetry"),
		key("Optimizer", "Performance", "GameMode"),
	}, report.Kept)
	assert.Equal(t, []catalogs.Key{key("Display", "Visuals", "Transparency")}, report.Added)
	assert.True(t, report.ThemeKept)
	assert.True(t, report.HasChanges())
	assert.Equal(t, "2 kept, 1 added, 1 dropped, 1 user tweaks carried", report.Summary())
}

func TestWithUserCategory(t *testing.T) {
	remote := catalog(nil, feature("Display", category("Visuals")))
	local := catalog(nil, feature("Custom", category("Mine", tweak("Z", true))))

	result, report, err := reconcile.MergeWithReport(remote, local, reconcile.WithUserCategory("Custom", "Mine"))
	require.NoError(t, err)
	assert.True(t, enabledAt(t, result, key("Custom", "Mine", "Z")))
	assert.Empty(t, report.Dropped)

	_, _, err = reconcile.MergeWithReport(remote, local, reconcile.WithUserCategory("", "Mine"))
	assert.True(t, errors.IsValidationError(err))
}

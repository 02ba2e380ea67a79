// Package reconcile merges a freshly fetched remote catalog with the locally
// persisted one.
//
// Remote is structurally authoritative: its features, categories, tweaks,
// ordering, descriptions and commands make up the result. Local contributes
// three things on top: the enabled flag of every tweak whose identity key
// exists in both, a non-empty theme, and the tweaks of the reserved user
// category that remote does not define.
//
// Merge is pure. Neither input is modified and the result shares no memory
// with them, except that a nil input short-circuits to the other input.
// Feeding the result back as local with the same remote yields an equal
// catalog.
package reconcile

import (
	"github.com/winsane/winsane/pkg/catalogs"
)

// Merge reconciles remote with local using the default user category. See
// the package documentation for the rules.
func Merge(remote, local *catalogs.Catalog) *catalogs.Catalog {
	result, _, _ := MergeWithReport(remote, local)
	return result
}

// MergeWithReport is Merge plus a Report of what was carried forward. It
// fails only when an option is invalid.
func MergeWithReport(remote, local *catalogs.Catalog, opts ...Option) (*catalogs.Catalog, *Report, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case remote == nil && local == nil:
		return nil, &Report{Mode: ModeEmpty}, nil
	case remote == nil:
		return local, &Report{Mode: ModeOffline}, nil
	case local == nil:
		return remote, &Report{Mode: ModeFirstRun}, nil
	}

	report := &Report{Mode: ModeMerged}
	result := remote.Copy()
	enabled := local.EnabledMap()

	// Every occurrence of a key takes the local flag; only the first is reported.
	remoteKeys := make(map[catalogs.Key]bool)
	result.Walk(func(k catalogs.Key, t *catalogs.Tweak) bool {
		v, ok := enabled[k]
		if ok {
			t.Enabled = v
		}
		if remoteKeys[k] {
			return true
		}
		remoteKeys[k] = true
		if ok {
			report.Kept = append(report.Kept, k)
		} else {
			report.Added = append(report.Added, k)
		}
		return true
	})

	if !local.Theme.IsZero() {
		result.Theme = local.Theme.Copy()
		report.ThemeKept = true
	}

	appendUserTweaks(result, local, enabled, o, report)

	local.Walk(func(k catalogs.Key, _ *catalogs.Tweak) bool {
		if remoteKeys[k] || (k.Feature == o.userFeature && k.Category == o.userCategory) {
			return true
		}
		report.Dropped = append(report.Dropped, k)
		remoteKeys[k] = true
		return true
	})

	return result, report, nil
}

// appendUserTweaks copies local user tweaks whose names remote does not
// define into the result's user category, in local order. A local user
// category always survives the merge, even when it has nothing to carry.
func appendUserTweaks(result, local *catalogs.Catalog, enabled map[catalogs.Key]bool, o *options, report *Report) {
	localUser := local.Lookup(o.userFeature, o.userCategory)
	if localUser == nil {
		return
	}
	remoteUser := result.EnsureCategory(o.userFeature, o.userCategory)

	var pending []*catalogs.Tweak
	seen := make(map[string]bool)
	for _, e := range localUser.Items {
		t := e.AsTweak()
		if !t.Valid() || seen[t.Name] || remoteUser.Tweak(t.Name) != nil {
			continue
		}
		seen[t.Name] = true

		cp := *t
		cp.Enabled = enabled[catalogs.Key{Feature: o.userFeature, Category: o.userCategory, Tweak: t.Name}]
		pending = append(pending, &cp)
	}
	for _, t := range pending {
		remoteUser.Items = append(remoteUser.Items, catalogs.NewTweakEntry(t))
		report.UserTweaks = append(report.UserTweaks, t.Name)
	}
}

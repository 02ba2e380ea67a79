package reconcile

import (
	"fmt"

	"github.com/winsane/winsane/pkg/catalogs"
)

// Mode describes which inputs a merge had to work with.
type Mode string

const (
	// ModeMerged means both catalogs were present.
	ModeMerged Mode = "merged"
	// ModeOffline means the remote catalog was unavailable and local was kept.
	ModeOffline Mode = "offline"
	// ModeFirstRun means there was no local catalog and remote was adopted.
	ModeFirstRun Mode = "first-run"
	// ModeEmpty means neither catalog was available.
	ModeEmpty Mode = "empty"
)

// Report summarizes what a merge carried forward.
type Report struct {
	Mode Mode `json:"mode" yaml:"mode"`

	// Kept lists tweaks present in both catalogs whose enabled flag came
	// from local.
	Kept []catalogs.Key `json:"kept,omitempty" yaml:"kept,omitempty"`

	// Added lists tweaks new in remote.
	Added []catalogs.Key `json:"added,omitempty" yaml:"added,omitempty"`

	// Dropped lists local tweaks that remote no longer defines.
	Dropped []catalogs.Key `json:"dropped,omitempty" yaml:"dropped,omitempty"`

	// UserTweaks lists user tweaks appended from local.
	UserTweaks []string `json:"user_tweaks,omitempty" yaml:"user_tweaks,omitempty"`

	// ThemeKept reports whether the local theme replaced the remote one.
	ThemeKept bool `json:"theme_kept" yaml:"theme_kept"`
}

// HasChanges reports whether local state differs structurally from the result.
func (r *Report) HasChanges() bool {
	return r != nil && (len(r.Added) > 0 || len(r.Dropped) > 0)
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	if r == nil {
		return "nothing merged"
	}
	switch r.Mode {
	case ModeOffline:
		return "remote catalog unavailable, using local catalog"
	case ModeFirstRun:
		return "no local catalog, using remote catalog"
	case ModeEmpty:
		return "no catalog available"
	}
	return fmt.Sprintf("%d kept, %d added, %d dropped, %d user tweaks carried",
		len(r.Kept), len(r.Added), len(r.Dropped), len(r.UserTweaks))
}

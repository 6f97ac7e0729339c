// Package lineview is a virtualized line viewport for terminal text views.
//
// The packages under this module are layered bottom-up: reveal computes
// scroll targets, viewlines keeps the rendered line window, viewlayout owns
// the scroll model and view hosts all of it as a Bubble Tea component.
package lineview

import (
	_ "embed"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

const modulePath = "github.com/iw2rmb/lineview"

//go:embed VERSION
var embeddedVersion string

// Version returns the release tag of this module, such as "v0.1.0". A binary
// that depends on a tagged release reports the tag it was built with;
// otherwise the VERSION file wins.
func Version() string {
	info, _ := debug.ReadBuildInfo()
	return versionFrom(info, "v"+strings.TrimSpace(embeddedVersion))
}

func versionFrom(info *debug.BuildInfo, fallback string) string {
	if info == nil {
		return fallback
	}
	mods := append([]*debug.Module{&info.Main}, info.Deps...)
	for _, m := range mods {
		if m == nil || m.Path != modulePath {
			continue
		}
		if m.Replace != nil {
			m = m.Replace
		}
		if semver.IsValid(m.Version) {
			return m.Version
		}
	}
	return fallback
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestBuildFallsBackToVCSStamp(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
	}}
	commit, dirty, buildTime := build(info, true)
	if commit != "0123456" {
		t.Errorf("commit = %q, want %q", commit, "0123456")
	}
	if !dirty {
		t.Error("dirty = false, want true")
	}
	if buildTime != "2026-03-01T12:00:00Z" {
		t.Errorf("buildTime = %q", buildTime)
	}
}

func TestBuildPrefersLinkerValues(t *testing.T) {
	saved := [3]string{GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2] })
	GitCommit, GitDirty, BuildTime = "feedbee", "false", "2026-04-01T00:00:00Z"

	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
	}}
	commit, dirty, buildTime := build(info, true)
	if commit != "feedbee" || dirty || buildTime != "2026-04-01T00:00:00Z" {
		t.Errorf("build = (%q, %v, %q), want linker values", commit, dirty, buildTime)
	}
}

func TestBuildWithoutInfo(t *testing.T) {
	commit, dirty, buildTime := build(nil, false)
	if commit != GitCommit || dirty || buildTime != BuildTime {
		t.Errorf("build = (%q, %v, %q)", commit, dirty, buildTime)
	}
}

func TestFormat(t *testing.T) {
	got := format("abc1234", true, "2026-02-10T00:00:00Z")
	want := Version + " (abc1234-dirty, 2026-02-10T00:00:00Z)"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, want := range []string{Version, "Go: ", "Platform: "} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() = %q, missing %q", full, want)
		}
	}
}

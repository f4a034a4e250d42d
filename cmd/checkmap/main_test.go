package main

import (
	"runtime/debug"
	"testing"
)

func TestVersionFromBuildInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       *debug.BuildInfo
		version    string
		commit     string
		wantVer    string
		wantCommit string
		wantDate   string
	}{
		{
			name:       "go install",
			info:       &debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}},
			version:    "dev",
			commit:     "none",
			wantVer:    "v1.4.0",
			wantCommit: "none",
			wantDate:   "unknown",
		},
		{
			name: "checkout build",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			},
			version:    "dev",
			commit:     "none",
			wantVer:    "dev",
			wantCommit: "0123456",
			wantDate:   "2026-01-02T03:04:05Z",
		},
		{
			name: "ldflags win",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v9.9.9"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
			},
			version:    "v1.0.0",
			commit:     "abc1234",
			wantVer:    "v1.0.0",
			wantCommit: "abc1234",
			wantDate:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, d := versionFromBuildInfo(tt.info, tt.version, tt.commit, "unknown")
			if v != tt.wantVer || c != tt.wantCommit || d != tt.wantDate {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)", v, c, d, tt.wantVer, tt.wantCommit, tt.wantDate)
			}
		})
	}
}

package cmd

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandStructure(t *testing.T) {
	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
	assert.NotNil(t, versionCmd.Run)
}

func TestRunVersion(t *testing.T) {
	originalVersion := Version
	originalCommit := Commit
	defer func() {
		Version = originalVersion
		Commit = originalCommit
		versionCmd.SetOut(nil)
	}()

	Version = "1.0.0"
	Commit = "abc123def456"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	runVersion(versionCmd, []string{})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 4)
	assert.Equal(t, "arrutil version 1.0.0", string(lines[0]))
	assert.Contains(t, string(lines[1]), "Commit: abc123def456")
	assert.Contains(t, string(lines[2]), "Go version: "+runtime.Version())
	assert.Contains(t, string(lines[3]), "OS/Arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestResolveVersion(t *testing.T) {
	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "0f3c9e1"},
		},
	}

	tests := []struct {
		name        string
		version     string
		commit      string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "no build info",
			version:     "0.0.1-dev",
			commit:      "unknown",
			wantVersion: "0.0.1-dev",
			wantCommit:  "unknown",
		},
		{
			name:        "embedded module and vcs info",
			version:     "0.0.1-dev",
			commit:      "unknown",
			info:        stamped,
			wantVersion: "v1.4.0",
			wantCommit:  "0f3c9e1",
		},
		{
			name:        "ldflags win",
			version:     "2.0.0",
			commit:      "feedbeef",
			info:        stamped,
			wantVersion: "2.0.0",
			wantCommit:  "feedbeef",
		},
		{
			name:        "devel main module",
			version:     "0.0.1-dev",
			commit:      "unknown",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			wantVersion: "0.0.1-dev",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit := resolveVersion(tt.version, tt.commit, tt.info)
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantCommit, commit)
		})
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                              string
		version, date, commit             string
		wantVersion, wantDate, wantCommit string
	}{
		{
			name:        "all values set",
			version:     "1.0.0",
			date:        "2026-10-16",
			commit:      "abc123",
			wantVersion: "1.0.0",
			wantDate:    "2026-10-16",
			wantCommit:  "abc123",
		},
		{
			name:        "empty values become N/A",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCommit, info.BuildCommit())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "deadbeef")

	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: deadbeef\n", info.String())
}

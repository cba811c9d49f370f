package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Summary(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		want    string
		release bool
	}{
		{name: "tagged", info: Info{Version: "v0.3.0", Commit: "1a2b3c4d5e6f"}, want: "v0.3.0 (1a2b3c4)", release: true},
		{name: "dev build", info: Info{Version: DevVersion, Commit: "unknown"}, want: "dev"},
		{name: "empty", info: Info{}, want: "dev"},
		{name: "short commit", info: Info{Version: "v1.0.0", Commit: "abc"}, want: "v1.0.0 (abc)", release: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Summary())
			assert.Equal(t, tt.release, tt.info.IsRelease())
		})
	}
}

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	e := NewEngine([]string{"src"})

	tests := []struct {
		name     string
		original string
		proposed string
		want     bool
	}{
		{
			name:     "deep traversal is rewritten",
			original: "../../../db/models/Friend",
			proposed: "@/db/models/Friend",
			want:     true,
		},
		{
			name:     "very deep traversal through legacy root",
			original: "../../../../src/db/models/Friend",
			proposed: "@/db/models/Friend",
			want:     true,
		},
		{
			name:     "single level through legacy root",
			original: "../src/lib/util",
			proposed: "@/lib/util",
			want:     true,
		},
		{
			name:     "explicit legacy root from a root-level file",
			original: "./src/hooks/useTheme",
			proposed: "@/hooks/useTheme",
			want:     true,
		},
		{
			name:     "shallow sibling stays relative",
			original: "./sibling",
			proposed: "@/modules/billing/ui/sibling",
			want:     false,
		},
		{
			name:     "single parent without legacy root stays relative",
			original: "../services/invoice",
			proposed: "@/modules/billing/services/invoice",
			want:     false,
		},
		{
			name:     "legacy root as the imported file does not count",
			original: "./lib/src",
			proposed: "@/app/lib/src",
			want:     false,
		},
		{
			name:     "no resolved alias",
			original: "../../../db/models/Friend",
			proposed: "",
			want:     false,
		},
		{
			name:     "alias equals original",
			original: "@/db/models/Friend",
			proposed: "@/db/models/Friend",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Decide(tt.original, tt.proposed))
		})
	}
}

func TestDecideNoLegacyRoots(t *testing.T) {
	e := NewEngine(nil)

	assert.True(t, e.Decide("../../db/models/Friend", "@/db/models/Friend"))
	assert.False(t, e.Decide("../src/lib/util", "@/lib/util"))
}

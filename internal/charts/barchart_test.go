package charts

import (
	"strings"
	"testing"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

func TestGroupBars(t *testing.T) {
	tests := []struct {
		name   string
		groups []dataset.Group
		width  int
	}{
		{
			name:   "no groups",
			groups: nil,
			width:  80,
		},
		{
			name: "single group",
			groups: []dataset.Group{
				{Label: "palette 1", Records: make([]dataset.Record, 3)},
			},
			width: 80,
		},
		{
			name: "multiple groups",
			groups: []dataset.Group{
				{Label: "2", Records: make([]dataset.Record, 1)},
				{Label: "10", Records: make([]dataset.Record, 5)},
				{Label: "n/a", Records: make([]dataset.Record, 2)},
			},
			width: 100,
		},
		{
			name: "narrow width",
			groups: []dataset.Group{
				{Label: "wide-group-label", Records: make([]dataset.Record, 10)},
			},
			width: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GroupBars(tt.groups, tt.width)

			if len(result) == 0 {
				t.Error("GroupBars() returned empty string")
			}

			// Group labels appear in the bar labels.
			for _, g := range tt.groups {
				if !strings.Contains(result, g.Label) {
					t.Errorf("GroupBars() output does not contain group %s", g.Label)
				}
			}
		})
	}
}

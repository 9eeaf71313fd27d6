package charts

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	t.Run("empty input renders placeholder", func(t *testing.T) {
		out := Strip(nil, AxisL, 80)
		if !strings.Contains(out, "no records") {
			t.Errorf("Strip(nil) = %q, want placeholder", out)
		}
	})

	t.Run("output contains axis line and label", func(t *testing.T) {
		out := Strip(testRecords(), AxisL, 80)
		for _, want := range []string{"├", "┤", "L*"} {
			if !strings.Contains(out, want) {
				t.Errorf("Strip output missing %q", want)
			}
		}
	})

	t.Run("range labels show min and max", func(t *testing.T) {
		out := Strip(testRecords(), AxisL, 80)
		if !strings.Contains(out, "25.0") || !strings.Contains(out, "75.0") {
			t.Errorf("Strip output missing range labels, got %q", out)
		}
	})

	t.Run("identical values do not panic", func(t *testing.T) {
		records := testRecords()[:1]
		out := Strip(records, AxisA, 40)
		if len(out) == 0 {
			t.Error("Strip output is empty, want non-empty")
		}
	})
}

package tables

import (
	"strings"
	"testing"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

func TestBrowse(t *testing.T) {
	t.Run("no records returns model with 0 rows", func(t *testing.T) {
		m := Browse(nil)

		// The model should be created successfully
		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("single record creates valid model", func(t *testing.T) {
		records := []dataset.Record{
			{ID: "acme 001", Marking: "matte", Group: "1", L: 52.1, A: 10.5, B: -3.2, Color: "#a03040"},
		}

		m := Browse(records)

		view := m.View()
		if !strings.Contains(view, "acme 001") {
			t.Errorf("View() missing record ID, got:\n%s", view)
		}
		if !strings.Contains(view, "matte") {
			t.Errorf("View() missing marking, got:\n%s", view)
		}
	})

	t.Run("coordinates render with two decimals", func(t *testing.T) {
		records := []dataset.Record{
			{ID: "x", Group: "n/a", L: 52.125, A: 10, B: -3.2, Color: "#000000"},
		}

		m := Browse(records)

		view := m.View()
		for _, want := range []string{"52.13", "10.00", "-3.20"} {
			if !strings.Contains(view, want) {
				t.Errorf("View() missing %q, got:\n%s", want, view)
			}
		}
	})

	t.Run("handles long identifiers", func(t *testing.T) {
		longID := "this_is_a_very_long_identifier_that_should_affect_column_width_calculation"
		records := []dataset.Record{
			{ID: longID, Group: "n/a", Color: "#ffffff"},
		}

		m := Browse(records)

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})
}

func TestModelInit(t *testing.T) {
	m := Browse(nil)

	cmd := m.Init()
	if cmd != nil {
		t.Error("Init() should return nil")
	}
}

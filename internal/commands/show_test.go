package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMassageDataset(t *testing.T) {
	ds := testDataset()
	data := massageDataset(ds)

	if len(data) != 2 {
		t.Fatalf("massageDataset() = %d groups, want 2", len(data))
	}

	t.Run("groups keep display order", func(t *testing.T) {
		if data[0]["group"] != "1" || data[1]["group"] != "beta" {
			t.Errorf("group order = %v, %v, want 1, beta", data[0]["group"], data[1]["group"])
		}
	})

	t.Run("counts match records", func(t *testing.T) {
		if data[0]["count"] != 2 {
			t.Errorf("count = %v, want 2", data[0]["count"])
		}
	})

	t.Run("records carry coordinates and color", func(t *testing.T) {
		records := data[0]["records"].([]map[string]interface{})
		if len(records) != 2 {
			t.Fatalf("records = %d, want 2", len(records))
		}
		first := records[0]
		if first["id"] != "acme 001" {
			t.Errorf("id = %v, want acme 001", first["id"])
		}
		if first["l"] != 52.1 {
			t.Errorf("l = %v, want 52.1", first["l"])
		}
		if first["color"] != "#a03040" {
			t.Errorf("color = %v, want #a03040", first["color"])
		}
	})
}

func TestToJSON(t *testing.T) {
	out, err := toJSON(testDataset())
	if err != nil {
		t.Fatalf("toJSON() returned error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("toJSON() produced invalid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("decoded %d groups, want 2", len(decoded))
	}
}

func TestToYAML(t *testing.T) {
	out, err := toYAML(testDataset())
	if err != nil {
		t.Fatalf("toYAML() returned error: %v", err)
	}
	if !strings.Contains(string(out), "group: beta") {
		t.Errorf("toYAML() missing group label, got:\n%s", out)
	}
}

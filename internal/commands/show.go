package commands

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/akjorns/color-viewer-app/internal/charts"
	"github.com/akjorns/color-viewer-app/internal/dataset"
)

type ShowCmd struct {
	Source string `arg:"" name:"source" help:"Path to the dataset (.csv or .xlsx)." required:"true"`
	Output string `name:"output" short:"o" help:"Output format." default:"chart" enum:"chart,json,yaml"`
	Width  int    `name:"width" short:"w" help:"Chart width in columns." default:"72"`
}

// Run loads the dataset once and prints it in the requested format.
func (s *ShowCmd) Run(ctx *Context) error {
	ds, err := dataset.Load(s.Source, ctx.Sheet)
	if err != nil {
		fmt.Println(ErrorStyle.Render("Error: ") + err.Error())
		return nil
	}
	if ds.Len() == 0 {
		fmt.Println("No Data")
		return nil
	}

	switch s.Output {
	case "chart":
		fmt.Println(charts.GroupBars(ds.Groups, s.Width))
	case "json":
		out, err := toJSON(ds)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := toYAML(ds)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

// massageDataset flattens the dataset into the shape both structured
// encoders share: one map per group, records inlined.
func massageDataset(ds *dataset.Dataset) []map[string]interface{} {
	data := make([]map[string]interface{}, 0)
	for _, g := range ds.Groups {
		records := make([]map[string]interface{}, 0, len(g.Records))
		for _, r := range g.Records {
			records = append(records, map[string]interface{}{
				"id":      r.ID,
				"marking": r.Marking,
				"l":       r.L,
				"a":       r.A,
				"b":       r.B,
				"color":   r.Color,
			})
		}
		data = append(data, map[string]interface{}{
			"group":   g.Label,
			"count":   len(g.Records),
			"records": records,
		})
	}
	return data
}

func toJSON(ds *dataset.Dataset) ([]byte, error) {
	return json.MarshalIndent(massageDataset(ds), "", "  ")
}

func toYAML(ds *dataset.Dataset) ([]byte, error) {
	return yaml.Marshal(massageDataset(ds))
}

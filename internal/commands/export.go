package commands

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

type ExportCmd struct {
	Source string `arg:"" name:"source" help:"Path to the dataset (.csv or .xlsx)." required:"true"`
	Out    string `arg:"" name:"out" help:"Path of the workbook to write." required:"true"`
}

// Run loads the dataset and writes it back out as a normalized Excel
// workbook: coerced channels, defaulted groups, display order.
func (e *ExportCmd) Run(ctx *Context) error {
	ds, err := dataset.Load(e.Source, ctx.Sheet)
	if err != nil {
		return err
	}

	if err := writeWorkbook(ds, e.Out); err != nil {
		return err
	}

	fmt.Printf("Wrote %d records to %s\n", ds.Len(), e.Out)
	return nil
}

// writeWorkbook writes one sheet named Records, rows in group display
// order, colors as hex strings.
func writeWorkbook(ds *dataset.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), "Records")

	header := []interface{}{
		dataset.ColID, dataset.ColMarking, dataset.ColGroup,
		dataset.ColL, dataset.ColA, dataset.ColB, dataset.ColHex,
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	row := 2
	for _, g := range ds.Groups {
		for _, r := range g.Records {
			cells := []interface{}{r.ID, r.Marking, r.Group, r.L, r.A, r.B, r.Color}
			if err := setRow(f, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	for i, value := range cells {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Records", fmt.Sprintf("%s%d", col, row), value); err != nil {
			return err
		}
	}
	return nil
}

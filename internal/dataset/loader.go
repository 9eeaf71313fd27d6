package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names expected in the header row.
const (
	ColL       = "L_star"
	ColA       = "A_star"
	ColB       = "B_star"
	ColID      = "ID (company, number)"
	ColMarking = "Marking"
	ColGroup   = "Group"
	ColHex     = "Hex"
	ColRed     = "R"
	ColGreen   = "G"
	ColBlue    = "B"
)

// DefaultGroup is the label assigned to records with an empty Group cell.
const DefaultGroup = "n/a"

// Load reads a CSV or Excel source and builds a Dataset. sheet selects
// the worksheet for Excel sources; empty means the first sheet. Missing
// files and missing required columns come back as *SourceNotFoundError
// and *MissingColumnError respectively.
func Load(path, sheet string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		rows, err = readExcelRows(path, sheet)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	return fromRows(rows, path)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated; short rows read as empty cells
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rows, nil
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// fromRows validates the header, normalizes each row into a Record, and
// partitions records into display-ordered groups.
func fromRows(rows [][]string, source string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: ColL}
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	for _, name := range []string{ColL, ColA, ColB, ColID, ColMarking, ColGroup} {
		if _, ok := idx[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}
	_, useHex := idx[ColHex]
	if !useHex {
		for _, name := range []string{ColRed, ColGreen, ColBlue} {
			if _, ok := idx[name]; !ok {
				return nil, &MissingColumnError{Column: name}
			}
		}
	}

	byLabel := make(map[string][]Record)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}

		rec := Record{
			ID:      cell(row, idx[ColID]),
			Marking: cell(row, idx[ColMarking]),
			L:       coordValue(cell(row, idx[ColL])),
			A:       coordValue(cell(row, idx[ColA])),
			B:       coordValue(cell(row, idx[ColB])),
		}
		if useHex {
			rec.Color = cell(row, idx[ColHex])
		} else {
			r := channelValue(cell(row, idx[ColRed]))
			g := channelValue(cell(row, idx[ColGreen]))
			b := channelValue(cell(row, idx[ColBlue]))
			rec.Color = fmt.Sprintf("#%02x%02x%02x", r, g, b)
		}

		label := cell(row, idx[ColGroup])
		if strings.TrimSpace(label) == "" {
			label = DefaultGroup
		}
		rec.Group = label
		byLabel[label] = append(byLabel[label], rec)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sortLabels(labels)

	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, Group{Label: label, Records: byLabel[label]})
	}

	return &Dataset{Source: source, Groups: groups, Labels: labels}, nil
}

// cell returns the i-th field of a row, or "" past the end. Excel and
// ragged CSV rows both come back shorter than the header.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// channelValue coerces an R/G/B cell to an integer channel value:
// unparseable cells read as 0, everything clamps to [0,255] and
// truncates to integer.
func channelValue(s string) uint8 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// coordValue coerces an L*/a*/b* cell, falling back to 0 on parse
// failure the same way the color channels do.
func coordValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

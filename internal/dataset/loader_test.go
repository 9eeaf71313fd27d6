package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const csvHeader = `L_star,A_star,B_star,R,G,B,"ID (company, number)",Marking,Group`

func TestLoadPartitionsEveryRecord(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"50.1,10,-20,200,100,50,ID1,A,palette 1\n"+
		"60.2,-5,15,10,20,30,ID2,B,palette 2\n"+
		"70.3,0,0,0,0,0,ID3,A,palette 1\n"+
		"80.4,25,-3,255,255,255,ID4,C,palette 2\n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, []string{"palette 1", "palette 2"}, ds.Labels)

	// Exhaustive and disjoint: each input ID appears exactly once.
	seen := make(map[string]int)
	for _, g := range ds.Groups {
		for _, r := range g.Records {
			seen[r.ID]++
			assert.Equal(t, g.Label, r.Group)
		}
	}
	assert.Equal(t, map[string]int{"ID1": 1, "ID2": 1, "ID3": 1, "ID4": 1}, seen)

	g, ok := ds.Group("palette 1")
	require.True(t, ok)
	require.Len(t, g.Records, 2)
	// Row order preserved inside a group.
	assert.Equal(t, "ID1", g.Records[0].ID)
	assert.Equal(t, "ID3", g.Records[1].ID)
	assert.InDelta(t, 50.1, g.Records[0].L, 1e-9)
	assert.InDelta(t, 10.0, g.Records[0].A, 1e-9)
	assert.InDelta(t, -20.0, g.Records[0].B, 1e-9)
}

func TestLoadGroupOrdering(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"1,0,0,1,1,1,a,M,zeta\n"+
		"1,0,0,1,1,1,b,M,10\n"+
		"1,0,0,1,1,1,c,M,alpha\n"+
		"1,0,0,1,1,1,d,M,2\n"+
		"1,0,0,1,1,1,e,M, 3.5 \n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	// Numeric labels first by value (whitespace-trimmed parse), then text.
	assert.Equal(t, []string{"2", " 3.5 ", "10", "alpha", "zeta"}, ds.Labels)
}

func TestLoadColorCoercion(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"1,0,0,300,abc,-5,ID1,M,g\n"+
		"1,0,0,12.9,128,255,ID2,M,g\n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	g := ds.Groups[0]
	// 300 clamps to 255, "abc" coerces to 0, -5 clamps to 0.
	assert.Equal(t, "#ff0000", g.Records[0].Color)
	// 12.9 truncates to 12.
	assert.Equal(t, "#0c80ff", g.Records[1].Color)
}

func TestLoadHexColumnVerbatim(t *testing.T) {
	path := writeCSV(t, "colors.csv",
		`L_star,A_star,B_star,Hex,"ID (company, number)",Marking,Group`+"\n"+
			"1,0,0,#A1B2C3,ID1,M,g\n"+
			"1,0,0,not-a-color,ID2,M,g\n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	g := ds.Groups[0]
	assert.Equal(t, "#A1B2C3", g.Records[0].Color)
	// No numeric validation on hex specs.
	assert.Equal(t, "not-a-color", g.Records[1].Color)
}

func TestLoadGroupDefaulting(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"1,0,0,1,1,1,ID1,M,\n"+
		"1,0,0,1,1,1,ID2,M,  \n"+
		"1,0,0,1,1,1,ID3,M,named\n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	g, ok := ds.Group(DefaultGroup)
	require.True(t, ok)
	assert.Len(t, g.Records, 2)
}

func TestLoadUnparseableCoordinatesCoerceToZero(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"oops,,x,1,1,1,ID1,M,g\n")

	ds, err := Load(path, "")
	require.NoError(t, err)

	r := ds.Groups[0].Records[0]
	assert.Zero(t, r.L)
	assert.Zero(t, r.A)
	assert.Zero(t, r.B)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, "colors.csv",
		`L_star,A_star,B_star,R,G,B,"ID (company, number)",Group`+"\n"+
			"1,0,0,1,1,1,ID1,g\n")

	ds, err := Load(path, "")
	assert.Nil(t, ds)

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Marking", missing.Column)
}

func TestLoadMissingColorColumns(t *testing.T) {
	path := writeCSV(t, "colors.csv",
		`L_star,A_star,B_star,"ID (company, number)",Marking,Group`+"\n")

	_, err := Load(path, "")
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "R", missing.Column)
}

func TestLoadMissingSource(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Nil(t, ds)

	var notFound *SourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Path, "nope.csv")
}

func TestLoadSkipsBlankAndRaggedRows(t *testing.T) {
	path := writeCSV(t, "colors.csv", csvHeader+"\n"+
		"1,0,0,1,1,1,ID1,M,g\n"+
		",,,,,,,,\n"+
		"1,0,0\n")

	ds, err := Load(path, "")
	require.NoError(t, err)
	// Blank row dropped, ragged row kept with defaulted cells.
	assert.Equal(t, 2, ds.Len())
	g, ok := ds.Group(DefaultGroup)
	require.True(t, ok)
	assert.Equal(t, "#000000", g.Records[0].Color)
}

func TestLoadExcelSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.xlsx")

	f := excelize.NewFile()
	header := []any{"L_star", "A_star", "B_star", "R", "G", "B", "ID (company, number)", "Marking", "Group"}
	row := []any{41.5, -3.0, 12.0, 10, 20, 30, "ID1", "A", "palette 1"}
	for col, v := range header {
		name, err := excelize.ColumnNumberToName(col + 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", name+"1", v))
	}
	for col, v := range row {
		name, err := excelize.ColumnNumberToName(col + 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", name+"2", v))
	}
	require.NoError(t, f.SaveAs(path))

	ds, err := Load(path, "")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	r := ds.Groups[0].Records[0]
	assert.Equal(t, "ID1", r.ID)
	assert.InDelta(t, 41.5, r.L, 1e-9)
	assert.Equal(t, "#0a141e", r.Color)

	// Asking for a sheet that does not exist fails.
	_, err = Load(path, "Missing")
	assert.Error(t, err)
}

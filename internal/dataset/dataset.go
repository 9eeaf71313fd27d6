// Package dataset loads, validates, and groups tabular L*a*b* color data.
package dataset

// Record is one observation: an identifier, a categorical marking, the
// group it belongs to, CIE L*a*b* coordinates, and a marker color spec
// (hex string).
type Record struct {
	ID      string
	Marking string
	Group   string
	L       float64
	A       float64
	B       float64
	Color   string
}

// Group is a named partition of the dataset. Records keep their input
// order.
type Group struct {
	Label   string
	Records []Record
}

// Dataset is the ordered sequence of groups parsed from one source.
// Labels holds the group labels in display order (numeric labels first,
// by value, then text labels lexicographically). A Dataset is immutable
// after construction.
type Dataset struct {
	Source string
	Groups []Group
	Labels []string
}

// Len returns the total number of records across all groups.
func (d *Dataset) Len() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Records)
	}
	return n
}

// Group returns the group with the given label.
func (d *Dataset) Group(label string) (Group, bool) {
	for _, g := range d.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return Group{}, false
}

// Records returns all records in group display order.
func (d *Dataset) Records() []Record {
	records := make([]Record, 0, d.Len())
	for _, g := range d.Groups {
		records = append(records, g.Records...)
	}
	return records
}

// Loader is the data-source abstraction the UI layers depend on.
type Loader interface {
	Load(path string) (*Dataset, error)
}

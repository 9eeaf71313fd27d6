package dataset

import "fmt"

// SourceNotFoundError reports that the input file does not exist.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// MissingColumnError reports a required column absent from the header
// row. Column carries the exact missing column name.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in source", e.Column)
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// TypeColumn is the index of the family discriminator column.
const TypeColumn = 0

// TypeHeader is the header of the discriminator column.
const TypeHeader = "Type"

// Schema is the column layout of the AISC shapes CSV: the type code
// followed by every superset property in column order. Files may carry
// further (metric) columns after these; they are ignored.
var Schema = buildSchema()

func buildSchema() []string {
	cols := make([]string, 1+shape.NumProperties)
	cols[TypeColumn] = TypeHeader
	for _, p := range shape.AllProperties() {
		cols[Column(p)] = p.Display()
	}
	return cols
}

// Column returns the CSV index of a property.
func Column(p shape.Property) int {
	return int(p) + 1
}

// HeaderError reports a header row that does not match Schema.
type HeaderError struct {
	Column int
	Want   string
	Got    string
}

func (e *HeaderError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("header column %d: expected %q, column missing", e.Column, e.Want)
	}
	return fmt.Sprintf("header column %d: expected %q, got %q", e.Column, e.Want, e.Got)
}

const bom = "\ufeff"

// checkHeader validates the header row against Schema.
func checkHeader(header []string) error {
	for i, want := range Schema {
		if i >= len(header) {
			return &HeaderError{Column: i, Want: want}
		}
		got := strings.TrimSpace(header[i])
		if i == 0 {
			got = strings.TrimPrefix(got, bom)
		}
		if got != want {
			return &HeaderError{Column: i, Want: want, Got: got}
		}
	}
	return nil
}

package catalog

import (
	"strings"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// Catalog holds loaded records grouped by family, in file order.
type Catalog struct {
	byFamily map[shape.Family][]shape.Record
	byLabel  map[string]shape.Record
	count    int
}

func newCatalog() *Catalog {
	return &Catalog{
		byFamily: make(map[shape.Family][]shape.Record),
		byLabel:  make(map[string]shape.Record),
	}
}

func (c *Catalog) add(rec shape.Record) {
	f := rec.Family()
	c.byFamily[f] = append(c.byFamily[f], rec)
	c.count++

	id := rec.Ident()
	for _, key := range []string{id.Label, id.Nomenclature} {
		key = strings.ToUpper(key)
		if _, ok := c.byLabel[key]; !ok && key != "" {
			c.byLabel[key] = rec
		}
	}
}

// Records returns the records of family f.
func (c *Catalog) Records(f shape.Family) []shape.Record {
	return c.byFamily[f]
}

// Families returns the families that have at least one record.
func (c *Catalog) Families() []shape.Family {
	var out []shape.Family
	for _, f := range shape.AllFamilies() {
		if len(c.byFamily[f]) > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the total number of records.
func (c *Catalog) Len() int {
	return c.count
}

// Find looks a shape up by manual label or EDI nomenclature, ignoring case.
// The first record in file order wins.
func (c *Catalog) Find(label string) (shape.Record, bool) {
	rec, ok := c.byLabel[strings.ToUpper(strings.TrimSpace(label))]
	return rec, ok
}

// RecordsOf returns the records of the family T belongs to.
func RecordsOf[T shape.Record](c *Catalog) []T {
	var zero T
	records := c.Records(zero.Family())
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if typed, ok := rec.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

package cmd

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaisc/internal/catalog"
	"github.com/alexiusacademia/goaisc/internal/cell"
	"github.com/alexiusacademia/goaisc/internal/shape"
	"github.com/alexiusacademia/goaisc/internal/store"
)

// shapeFile reads shapes from a CSV export instead of the database.
var shapeFile string

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Look up shapes",
	Long: `Look up shapes by identity or dimension.

Shapes are read from the PostgreSQL store filled by 'goaisc import',
or directly from a CSV export when --file is given.

Subcommands:
  get   - Show every property of one shape
  list  - List the shapes of a family, optionally filtered

Run 'goaisc families' for the accepted <family> names.`,
}

func init() {
	rootCmd.AddCommand(shapeCmd)

	shapeCmd.PersistentFlags().StringVarP(&shapeFile, "file", "f", "", "Read shapes from this CSV file instead of the database")
}

func familyArg(args []string) (shape.Family, error) {
	f, err := shape.ParseFamily(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w (see 'goaisc families')", err)
	}
	return f, nil
}

// withRepository opens the store for the duration of fn.
func withRepository(ctx context.Context, fn func(*store.Repository) error) error {
	client, err := store.NewClient(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client.Repository(cfg.Database.Schema))
}

// findShape looks one shape up by nomenclature or label.
func findShape(ctx context.Context, f shape.Family, by shape.Property, key string) (shape.Record, error) {
	if shapeFile == "" {
		var rec shape.Record
		err := withRepository(ctx, func(repo *store.Repository) error {
			var err error
			if by == shape.EDINomenclature {
				rec, err = repo.ByNomenclature(ctx, f, key)
			} else {
				rec, err = repo.ByLabel(ctx, f, key)
			}
			return err
		})
		return rec, err
	}

	cat, _, err := loadCatalog(shapeFile, catalog.WithFamilies(f))
	if err != nil {
		return nil, err
	}
	for _, rec := range cat.Records(f) {
		id := rec.Ident()
		if by == shape.EDINomenclature && strings.EqualFold(id.Nomenclature, key) ||
			by == shape.AISCManualLabel && strings.EqualFold(id.Label, key) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q in %s", store.ErrNotFound, by.Display(), key, f)
}

// listShapes returns the shapes of f, keeping only those whose property
// p equals v when p is valid.
func listShapes(ctx context.Context, f shape.Family, p shape.Property, v float64) ([]shape.Record, error) {
	if shapeFile == "" {
		var recs []shape.Record
		err := withRepository(ctx, func(repo *store.Repository) error {
			var err error
			if p.Valid() {
				recs, err = repo.ByProperty(ctx, f, p, v)
			} else {
				recs, err = repo.All(ctx, f)
			}
			return err
		})
		return recs, err
	}

	if p.Valid() && (!shape.Rules(f).Has(p) || p.Kind() != shape.KindFloat) {
		return nil, fmt.Errorf("%w: %s is not a numeric property of %s", store.ErrInvalidProperty, p, f)
	}
	cat, _, err := loadCatalog(shapeFile, catalog.WithFamilies(f))
	if err != nil {
		return nil, err
	}
	if !p.Valid() {
		return cat.Records(f), nil
	}
	var recs []shape.Record
	for _, rec := range cat.Records(f) {
		if field, ok := shape.Lookup(rec, p); ok && field.Set && math.Abs(field.Float-v) < 1e-9 {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// depthProperty and widthProperty name the overall dimensions of a family.
func depthProperty(f shape.Family) shape.Property {
	switch f {
	case shape.FamilyHollowStructuralSection:
		return shape.Ht
	case shape.FamilyRoundHollowStructuralSection, shape.FamilyPipe:
		return shape.OD
	}
	return shape.DLower
}

func widthProperty(f shape.Family) shape.Property {
	switch f {
	case shape.FamilyHollowStructuralSection:
		return shape.BUpper
	case shape.FamilyAngle, shape.FamilyDoubleAngle:
		return shape.BLower
	case shape.FamilyRoundHollowStructuralSection, shape.FamilyPipe:
		return shape.OD
	}
	return shape.Bf
}

// formatField renders a field the way the database writes it.
func formatField(f shape.Field) string {
	if !f.Set {
		return cell.Sentinel
	}
	switch f.Property.Kind() {
	case shape.KindText:
		return f.Text
	case shape.KindBool:
		if f.Bool {
			return cell.True
		}
		return cell.False
	default:
		return strconv.FormatFloat(f.Float, 'f', -1, 64)
	}
}

func fieldOf(rec shape.Record, p shape.Property) string {
	f, ok := shape.Lookup(rec, p)
	if !ok {
		return cell.Sentinel
	}
	return formatField(f)
}

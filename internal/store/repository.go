package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/logging"
	"github.com/alexiusacademia/goaisc/internal/metrics"
	"github.com/alexiusacademia/goaisc/internal/shape"
)

var (
	// ErrNotFound is returned by single-record lookups that match no row.
	ErrNotFound = errors.New("shape not found")

	// ErrInvalidProperty is returned when a filter property is not a
	// numeric property of the family.
	ErrInvalidProperty = errors.New("invalid filter property")
)

// noFilter selects every row of a family.
const noFilter = shape.Property(-1)

// Repository reads and writes family tables.
type Repository struct {
	db     DB
	schema string
	logger *zap.Logger
}

// NewRepository creates a repository over db. An empty schema leaves
// table names unqualified.
func NewRepository(db DB, schema string, logger *zap.Logger) *Repository {
	return &Repository{db: db, schema: schema, logger: logging.OrNop(logger)}
}

// EnsureSchema creates the schema and every family table that does not
// exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("ensure_schema", "", start, err) }()

	if r.schema != "" {
		if _, err = r.db.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{r.schema}.Sanitize()); err != nil {
			return fmt.Errorf("failed to create schema %s: %w", r.schema, err)
		}
	}
	for _, f := range shape.AllFamilies() {
		if _, err = r.db.Exec(ctx, createTableSQL(r.schema, f)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", f.Table(), err)
		}
		if _, err = r.db.Exec(ctx, createIndexSQL(r.schema, f)); err != nil {
			return fmt.Errorf("failed to index table %s: %w", f.Table(), err)
		}
	}
	r.logger.Debug("Ensured shape tables", zap.String("schema", r.schema))
	return nil
}

// Clear deletes every row of family f.
func (r *Repository) Clear(ctx context.Context, f shape.Family) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("clear", f.Slug(), start, err) }()

	tag, err := r.db.Exec(ctx, deleteSQL(r.schema, f))
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", f.Table(), err)
	}
	r.logger.Debug("Cleared shape table",
		zap.String("family", f.Slug()),
		zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// Insert stores one record.
func (r *Repository) Insert(ctx context.Context, rec shape.Record) (err error) {
	f := rec.Family()
	start := time.Now()
	defer func() { metrics.ObserveQuery("insert", f.Slug(), start, err) }()

	if _, err = r.db.Exec(ctx, insertSQL(r.schema, f), values(rec)...); err != nil {
		return fmt.Errorf("failed to insert %s: %w", rec.Ident().Label, err)
	}
	metrics.RecordStored(f.Slug(), 1)
	return nil
}

// InsertAll bulk-loads records of family f with COPY. Either every record
// is stored or none is.
func (r *Repository) InsertAll(ctx context.Context, f shape.Family, recs []shape.Record) (n int64, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("copy", f.Slug(), start, err) }()

	rows := make([][]any, len(recs))
	for i, rec := range recs {
		if rec.Family() != f {
			return 0, fmt.Errorf("record %s is a %s, not a %s", rec.Ident().Label, rec.Family(), f)
		}
		rows[i] = values(rec)
	}

	n, err = r.db.CopyFrom(ctx, tableIdent(r.schema, f), columns(f), pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy into %s: %w", f.Table(), err)
	}
	metrics.RecordStored(f.Slug(), int(n))
	r.logger.Debug("Stored shape records",
		zap.String("family", f.Slug()),
		zap.Int64("records", n))
	return n, nil
}

// All returns every record of family f in insertion order.
func (r *Repository) All(ctx context.Context, f shape.Family) (recs []shape.Record, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("all", f.Slug(), start, err) }()

	return r.query(ctx, f, selectSQL(r.schema, f, noFilter))
}

// ByNomenclature returns the record of family f with the given EDI
// nomenclature.
func (r *Repository) ByNomenclature(ctx context.Context, f shape.Family, name string) (rec shape.Record, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("by_nomenclature", f.Slug(), start, err) }()

	return r.queryOne(ctx, f, shape.EDINomenclature, name)
}

// ByLabel returns the record of family f with the given manual label.
func (r *Repository) ByLabel(ctx context.Context, f shape.Family, label string) (rec shape.Record, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("by_label", f.Slug(), start, err) }()

	return r.queryOne(ctx, f, shape.AISCManualLabel, label)
}

// ByProperty returns the records of family f whose numeric property p
// equals v.
func (r *Repository) ByProperty(ctx context.Context, f shape.Family, p shape.Property, v float64) (recs []shape.Record, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("by_property", f.Slug(), start, err) }()

	if !shape.Rules(f).Has(p) || p.Kind() != shape.KindFloat {
		return nil, fmt.Errorf("%w: %s is not a numeric property of %s", ErrInvalidProperty, p, f)
	}
	return r.query(ctx, f, selectSQL(r.schema, f, p), v)
}

func (r *Repository) query(ctx context.Context, f shape.Family, sql string, args ...any) ([]shape.Record, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", f.Table(), err)
	}
	defer rows.Close()

	var recs []shape.Record
	for rows.Next() {
		raw, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", f.Table(), err)
		}
		rec, err := convertRow(f, raw)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", f.Table(), err)
	}
	return recs, nil
}

func (r *Repository) queryOne(ctx context.Context, f shape.Family, by shape.Property, key string) (shape.Record, error) {
	recs, err := r.query(ctx, f, selectSQL(r.schema, f, by)+" LIMIT 1", key)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: %s %q in %s", ErrNotFound, by.Display(), key, f)
	}
	return recs[0], nil
}

func convertRow(f shape.Family, raw []any) (shape.Record, error) {
	b, err := scanBuilder(f, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s row: %w", f.Table(), err)
	}
	rec, err := shape.ConvertFamily(f, b)
	if err != nil {
		metrics.RecordConversionFailure(f.Slug())
		return nil, fmt.Errorf("failed to convert %s row: %w", f.Table(), err)
	}
	return rec, nil
}

// List returns every record of the family T belongs to.
func List[T shape.Record](ctx context.Context, r *Repository) ([]T, error) {
	var zero T
	recs, err := r.All(ctx, zero.Family())
	if err != nil {
		return nil, err
	}
	out := make([]T, len(recs))
	for i, rec := range recs {
		out[i] = rec.(T)
	}
	return out, nil
}

// Get returns the record of the family T belongs to with the given
// manual label.
func Get[T shape.Record](ctx context.Context, r *Repository, label string) (T, error) {
	var zero T
	rec, err := r.ByLabel(ctx, zero.Family(), label)
	if err != nil {
		return zero, err
	}
	return rec.(T), nil
}

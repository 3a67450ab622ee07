// Package catalog loads the AISC shapes database from its CSV export.
//
// Each row carries the full superset of columns. The loader picks the
// row's family from the type code, decodes only the cells that family
// uses and converts them into a family record. The reference file is
// expected to be clean: the first malformed cell, unknown type code or
// missing mandatory property aborts the load.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/cell"
	"github.com/alexiusacademia/goaisc/internal/logging"
	"github.com/alexiusacademia/goaisc/internal/metrics"
	"github.com/alexiusacademia/goaisc/internal/shape"
)

// UnknownTypeError reports a type code that names no family.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown shape type %q", e.Code)
}

// RowError locates a failure within the source file.
type RowError struct {
	Line  int
	Code  string
	Label string
	Err   error
}

func (e *RowError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d (%s %s): %v", e.Line, e.Code, e.Label, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Option configures a load.
type Option func(*loader)

// WithLogger sets the logger used for load summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(l *loader) {
		l.logger = logging.OrNop(logger)
	}
}

// WithFamilies restricts the load to the given families. Rows of other
// families are classified but not decoded.
func WithFamilies(families ...shape.Family) Option {
	return func(l *loader) {
		if l.only == nil {
			l.only = make(map[shape.Family]bool)
		}
		for _, f := range families {
			l.only[f] = true
		}
	}
}

type loader struct {
	logger *zap.Logger
	only   map[shape.Family]bool
}

// LoadFile loads the CSV file at path.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapes file: %w", err)
	}
	defer file.Close()

	return Load(file, opts...)
}

// LoadFamily reads only the rows of family f.
func LoadFamily(r io.Reader, f shape.Family, opts ...Option) ([]shape.Record, error) {
	cat, err := Load(r, append(opts, WithFamilies(f))...)
	if err != nil {
		return nil, err
	}
	return cat.Records(f), nil
}

// Load reads a CSV export of the shapes database. No records are returned
// unless every selected row converts.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	l := &loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("shapes file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	cat := newCatalog()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read shapes file: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(row) {
			continue
		}
		rec, err := l.mapRow(row)
		if err != nil {
			return nil, &RowError{Line: line, Code: cellAt(row, TypeColumn), Label: cellAt(row, Column(shape.AISCManualLabel)), Err: err}
		}
		if rec != nil {
			cat.add(rec)
		}
	}

	for _, f := range cat.Families() {
		l.logger.Debug("Loaded shape family",
			zap.String("family", f.Slug()),
			zap.Int("records", len(cat.Records(f))))
	}
	l.logger.Info("Loaded shapes database", zap.Int("records", cat.Len()))
	return cat, nil
}

// mapRow converts one row. It returns nil, nil for rows filtered out.
func (l *loader) mapRow(row []string) (shape.Record, error) {
	if len(row) < len(Schema) {
		return nil, fmt.Errorf("expected at least %d columns, got %d", len(Schema), len(row))
	}

	f, err := classify(row)
	if err != nil {
		return nil, err
	}
	if l.only != nil && !l.only[f] {
		return nil, nil
	}

	b, err := MapRow(row, f)
	if err != nil {
		return nil, err
	}
	rec, err := shape.ConvertFamily(f, b)
	if err != nil {
		metrics.RecordConversionFailure(f.Slug())
		return nil, err
	}
	metrics.RecordRead(f.Slug())
	return rec, nil
}

// MapRow decodes the cells family f uses into a fresh builder.
func MapRow(row []string, f shape.Family) (*shape.Builder, error) {
	b := shape.NewBuilder()
	for _, p := range shape.Rules(f).Properties() {
		text := cellAt(row, Column(p))
		switch p.Kind() {
		case shape.KindText:
			if text = strings.TrimSpace(text); text != "" && text != cell.Sentinel {
				b.WithText(p, text)
			}
		case shape.KindBool:
			b.WithOptionalBool(p, cell.Bool(text))
		default:
			v, err := cell.Float(text)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", p.Display(), err)
			}
			b.WithOptionalFloat(p, v)
		}
	}
	return b, nil
}

// classify picks the family of a row from its type code. Codes shared by
// several families (HSS) are told apart by whether the row has an OD.
func classify(row []string) (shape.Family, error) {
	code := strings.TrimSpace(cellAt(row, TypeColumn))
	candidates := shape.FamiliesForCode(code)
	switch len(candidates) {
	case 0:
		return 0, &UnknownTypeError{Code: code}
	case 1:
		return candidates[0], nil
	}

	od, err := cell.Float(cellAt(row, Column(shape.OD)))
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", shape.OD.Display(), err)
	}
	for _, f := range candidates {
		if shape.Rules(f).Has(shape.OD) == (od != nil) {
			return f, nil
		}
	}
	return 0, &UnknownTypeError{Code: code}
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

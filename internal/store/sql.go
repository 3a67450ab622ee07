package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// Every family table has a serial id so reads come back in insertion
// (file) order, followed by one column per family property named after
// the property.
const idColumn = "id"

func tableIdent(schema string, f shape.Family) pgx.Identifier {
	if schema == "" {
		return pgx.Identifier{f.Table()}
	}
	return pgx.Identifier{schema, f.Table()}
}

// columns returns the property columns of f in declared order.
func columns(f shape.Family) []string {
	props := shape.Rules(f).Properties()
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name()
	}
	return out
}

func quoted(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = pgx.Identifier{c}.Sanitize()
	}
	return strings.Join(parts, ", ")
}

func columnType(k shape.Kind) string {
	switch k {
	case shape.KindText:
		return "TEXT"
	case shape.KindBool:
		return "BOOLEAN"
	default:
		return "DOUBLE PRECISION"
	}
}

func createTableSQL(schema string, f shape.Family) string {
	rule := shape.Rules(f)
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", tableIdent(schema, f).Sanitize())
	fmt.Fprintf(&b, "\t%s BIGSERIAL PRIMARY KEY", idColumn)
	for _, p := range rule.Properties() {
		fmt.Fprintf(&b, ",\n\t%s %s", pgx.Identifier{p.Name()}.Sanitize(), columnType(p.Kind()))
		if !rule.IsOptional(p) {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString("\n)")
	return b.String()
}

func createIndexSQL(schema string, f shape.Family) string {
	index := pgx.Identifier{f.Table() + "_label_idx"}.Sanitize()
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		index, tableIdent(schema, f).Sanitize(), pgx.Identifier{shape.AISCManualLabel.Name()}.Sanitize())
}

func selectSQL(schema string, f shape.Family, where shape.Property) string {
	query := fmt.Sprintf("SELECT %s FROM %s", quoted(columns(f)), tableIdent(schema, f).Sanitize())
	if where.Valid() {
		query += fmt.Sprintf(" WHERE %s = $1", pgx.Identifier{where.Name()}.Sanitize())
	}
	return query + " ORDER BY " + idColumn
}

func insertSQL(schema string, f shape.Family) string {
	cols := columns(f)
	params := make([]string, len(cols))
	for i := range params {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableIdent(schema, f).Sanitize(), quoted(cols), strings.Join(params, ", "))
}

func deleteSQL(schema string, f shape.Family) string {
	return "DELETE FROM " + tableIdent(schema, f).Sanitize()
}

// values lists the column values of rec in declared order; unset
// optional properties become NULL.
func values(rec shape.Record) []any {
	fields := shape.Fields(rec)
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f.Value()
	}
	return out
}

// scanBuilder maps one selected row of f into a fresh builder. NULL
// columns leave their property unset.
func scanBuilder(f shape.Family, row []any) (*shape.Builder, error) {
	props := shape.Rules(f).Properties()
	if len(row) != len(props) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(props), len(row))
	}

	b := shape.NewBuilder()
	for i, p := range props {
		if row[i] == nil {
			continue
		}
		switch p.Kind() {
		case shape.KindText:
			s, ok := row[i].(string)
			if !ok {
				return nil, fmt.Errorf("column %s: expected text, got %T", p.Name(), row[i])
			}
			b.WithText(p, s)
		case shape.KindBool:
			v, ok := row[i].(bool)
			if !ok {
				return nil, fmt.Errorf("column %s: expected boolean, got %T", p.Name(), row[i])
			}
			b.WithBool(p, v)
		default:
			v, ok := row[i].(float64)
			if !ok {
				return nil, fmt.Errorf("column %s: expected double precision, got %T", p.Name(), row[i])
			}
			b.WithFloat(p, v)
		}
	}
	return b, nil
}

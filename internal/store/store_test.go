package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// fakeDB records statements and serves canned rows.
type fakeDB struct {
	execs   []string
	args    [][]any
	queries []string
	copied  map[string][][]any
	copyCol map[string][]string
	rows    [][]any
	err     error
}

func newFakeDB() *fakeDB {
	return &fakeDB{copied: make(map[string][][]any), copyCol: make(map[string][]string)}
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if db.err != nil {
		return pgconn.CommandTag{}, db.err
	}
	db.execs = append(db.execs, sql)
	db.args = append(db.args, args)
	return pgconn.NewCommandTag("DELETE 0"), nil
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	if db.err != nil {
		return nil, db.err
	}
	db.queries = append(db.queries, sql)
	db.args = append(db.args, args)
	return &fakeRows{rows: db.rows, pos: -1}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	rows, err := db.Query(ctx, sql, args...)
	return fakeRow{rows: rows, err: err}
}

func (db *fakeDB) CopyFrom(_ context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	if db.err != nil {
		return 0, db.err
	}
	key := table.Sanitize()
	db.copyCol[key] = cols
	var n int64
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			return n, err
		}
		db.copied[key] = append(db.copied[key], vals)
		n++
	}
	return n, src.Err()
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Scan(...any) error                            { return errors.New("not supported") }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

type fakeRow struct {
	rows pgx.Rows
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Scan(dest...)
}

// sampleRecord fills every mandatory property of f and leaves optional
// ones unset.
func sampleRecord(t *testing.T, f shape.Family, label string) shape.Record {
	t.Helper()
	b := shape.NewBuilder()
	for _, p := range shape.Rules(f).Required {
		switch p.Kind() {
		case shape.KindText:
			b.WithText(p, label)
		case shape.KindBool:
			b.WithBool(p, false)
		default:
			b.WithFloat(p, float64(p)/4)
		}
	}
	rec, err := shape.ConvertFamily(f, b)
	require.NoError(t, err)
	return rec
}

func TestCreateTableSQL(t *testing.T) {
	sql := createTableSQL("aisc", shape.FamilyWideFlange)

	assert.True(t, strings.HasPrefix(sql, `CREATE TABLE IF NOT EXISTS "aisc"."w_shapes" (`))
	assert.Contains(t, sql, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, sql, `"edi_std_nomenclature" TEXT NOT NULL`)
	assert.Contains(t, sql, `"t_f" BOOLEAN NOT NULL`)
	assert.Contains(t, sql, `"kdes" DOUBLE PRECISION NOT NULL`)
	assert.Contains(t, sql, `"ddet" DOUBLE PRECISION,`)
	assert.Contains(t, sql, "\"wgo\" DOUBLE PRECISION\n)")
	assert.NotContains(t, sql, `"od"`)

	assert.Contains(t, createTableSQL("", shape.FamilyPipe), `CREATE TABLE IF NOT EXISTS "pipe_shapes"`)
}

func TestSelectAndInsertSQL(t *testing.T) {
	f := shape.FamilyAngle
	n := len(shape.Rules(f).Properties())

	all := selectSQL("", f, noFilter)
	assert.True(t, strings.HasPrefix(all, `SELECT "edi_std_nomenclature", "aisc_manual_label", `))
	assert.True(t, strings.HasSuffix(all, `FROM "l_shapes" ORDER BY id`))

	byDepth := selectSQL("", f, shape.DLower)
	assert.Contains(t, byDepth, `WHERE "d_lower" = $1 ORDER BY id`)

	insert := insertSQL("", f)
	assert.Contains(t, insert, fmt.Sprintf("$%d)", n))
	assert.NotContains(t, insert, fmt.Sprintf("$%d", n+1))
}

func TestValuesAndScanBuilder(t *testing.T) {
	rec := sampleRecord(t, shape.FamilyDoubleAngle, "2L4X4X1/2")
	vals := values(rec)
	require.Len(t, vals, len(shape.Rules(shape.FamilyDoubleAngle).Properties()))
	assert.Equal(t, "2L4X4X1/2", vals[0])

	b, err := scanBuilder(shape.FamilyDoubleAngle, vals)
	require.NoError(t, err)
	back, err := shape.ConvertFamily(shape.FamilyDoubleAngle, b)
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	t.Run("type mismatch", func(t *testing.T) {
		bad := append([]any(nil), vals...)
		bad[0] = 12.0
		_, err := scanBuilder(shape.FamilyDoubleAngle, bad)
		assert.ErrorContains(t, err, "expected text")
	})

	t.Run("column count", func(t *testing.T) {
		_, err := scanBuilder(shape.FamilyDoubleAngle, vals[:3])
		assert.Error(t, err)
	})
}

func TestEnsureSchema(t *testing.T) {
	db := newFakeDB()
	repo := NewRepository(db, "aisc", nil)

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.Len(t, db.execs, 1+2*shape.NumFamilies)
	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "aisc"`, db.execs[0])
	assert.Contains(t, db.execs[1], `"aisc"."w_shapes"`)
	assert.Contains(t, db.execs[2], `"w_shapes_label_idx"`)
}

func TestInsert(t *testing.T) {
	db := newFakeDB()
	repo := NewRepository(db, "", nil)
	rec := sampleRecord(t, shape.FamilyCeeChannel, "C6X8.2")

	require.NoError(t, repo.Insert(context.Background(), rec))
	require.Len(t, db.execs, 1)
	assert.Equal(t, insertSQL("", shape.FamilyCeeChannel), db.execs[0])
	assert.Equal(t, values(rec), db.args[0])
}

func TestInsertAll(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	repo := NewRepository(db, "", nil)
	recs := []shape.Record{
		sampleRecord(t, shape.FamilyHPile, "HP8X36"),
		sampleRecord(t, shape.FamilyHPile, "HP10X42"),
	}

	n, err := repo.InsertAll(ctx, shape.FamilyHPile, recs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, columns(shape.FamilyHPile), db.copyCol[`"hp_shapes"`])
	assert.Equal(t, values(recs[1]), db.copied[`"hp_shapes"`][1])

	t.Run("wrong family", func(t *testing.T) {
		_, err := repo.InsertAll(ctx, shape.FamilyWideFlange, recs)
		assert.ErrorContains(t, err, "not a wide-flange")
	})
}

func TestAll(t *testing.T) {
	db := newFakeDB()
	repo := NewRepository(db, "", nil)
	want := []shape.Record{
		sampleRecord(t, shape.FamilyPipe, "Pipe2STD"),
		sampleRecord(t, shape.FamilyPipe, "Pipe3STD"),
	}
	db.rows = [][]any{values(want[0]), values(want[1])}

	got, err := repo.All(context.Background(), shape.FamilyPipe)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, selectSQL("", shape.FamilyPipe, noFilter), db.queries[0])

	pipes, err := List[shape.Pipe](context.Background(), repo)
	require.NoError(t, err)
	require.Len(t, pipes, 2)
	assert.Equal(t, "Pipe3STD", pipes[1].Label)
}

func TestAllConversionFailure(t *testing.T) {
	db := newFakeDB()
	repo := NewRepository(db, "", nil)
	good := values(sampleRecord(t, shape.FamilyPipe, "Pipe2STD"))
	bad := append([]any(nil), good...)
	bad[len(bad)-1] = nil

	db.rows = [][]any{good, bad}
	recs, err := repo.All(context.Background(), shape.FamilyPipe)
	assert.Nil(t, recs)

	var missing *shape.MissingPropertyError
	assert.ErrorAs(t, err, &missing)
}

func TestByLabel(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	repo := NewRepository(db, "", nil)
	rec := sampleRecord(t, shape.FamilyWideFlange, "W6X9")

	t.Run("found", func(t *testing.T) {
		db.rows = [][]any{values(rec)}
		got, err := Get[shape.WideFlange](ctx, repo, "W6X9")
		require.NoError(t, err)
		assert.Equal(t, rec, got)
		assert.Equal(t, []any{"W6X9"}, db.args[len(db.args)-1])
		assert.Contains(t, db.queries[len(db.queries)-1], `WHERE "aisc_manual_label" = $1 ORDER BY id LIMIT 1`)
	})

	t.Run("not found", func(t *testing.T) {
		db.rows = nil
		_, err := repo.ByLabel(ctx, shape.FamilyWideFlange, "W6X10")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.ByNomenclature(ctx, shape.FamilyWideFlange, "W6X10")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, db.queries[len(db.queries)-1], `WHERE "edi_std_nomenclature" = $1`)
	})
}

func TestByProperty(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	repo := NewRepository(db, "", nil)

	_, err := repo.ByProperty(ctx, shape.FamilyWideFlange, shape.DLower, 5.9)
	require.NoError(t, err)
	assert.Equal(t, []any{5.9}, db.args[0])

	_, err = repo.ByProperty(ctx, shape.FamilyWideFlange, shape.OD, 5.9)
	assert.ErrorIs(t, err, ErrInvalidProperty)

	_, err = repo.ByProperty(ctx, shape.FamilyWideFlange, shape.AISCManualLabel, 5.9)
	assert.ErrorIs(t, err, ErrInvalidProperty)
	assert.Len(t, db.queries, 1)
}

func TestStorageErrorsWrapped(t *testing.T) {
	db := newFakeDB()
	db.err = errors.New("connection refused")
	repo := NewRepository(db, "", nil)

	_, err := repo.All(context.Background(), shape.FamilyAngle)
	assert.ErrorIs(t, err, db.err)

	err = repo.Clear(context.Background(), shape.FamilyAngle)
	assert.ErrorIs(t, err, db.err)
}

package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// record sets every mandatory property of f to 1 before applying dims.
func record(t *testing.T, f shape.Family, label string, dims map[shape.Property]float64) shape.Record {
	t.Helper()
	b := shape.NewBuilder()
	for _, p := range shape.Rules(f).Required {
		switch p.Kind() {
		case shape.KindText:
			b.WithText(p, label)
		case shape.KindBool:
			b.WithBool(p, false)
		default:
			b.WithFloat(p, 1)
		}
	}
	for p, v := range dims {
		b.WithFloat(p, v)
	}
	rec, err := shape.ConvertFamily(f, b)
	require.NoError(t, err)
	return rec
}

func w6x9(t *testing.T) Outline {
	t.Helper()
	o, err := OutlineOf(record(t, shape.FamilyWideFlange, "W6X9", map[shape.Property]float64{
		shape.DLower: 5.9, shape.Bf: 3.94, shape.Tw: 0.17, shape.Tf: 0.215,
	}))
	require.NoError(t, err)
	return o
}

func hss(t *testing.T) Outline {
	t.Helper()
	o, err := OutlineOf(record(t, shape.FamilyHollowStructuralSection, "HSS6X4X1/4", map[shape.Property]float64{
		shape.Ht: 6, shape.BUpper: 4, shape.Tdes: 0.233,
	}))
	require.NoError(t, err)
	return o
}

func TestOutlineIShape(t *testing.T) {
	o := w6x9(t)
	assert.Equal(t, "W6X9", o.Label)
	require.Len(t, o.Rings, 1)
	assert.Len(t, o.Rings[0], 12)

	assert.InDelta(t, 2*3.94*0.215+(5.9-2*0.215)*0.17, o.Area(), 1e-9)

	lo, hi := o.Bounds()
	assert.InDelta(t, -1.97, lo.X, 1e-9)
	assert.InDelta(t, 0, lo.Y, 1e-9)
	assert.InDelta(t, 1.97, hi.X, 1e-9)
	assert.InDelta(t, 5.9, hi.Y, 1e-9)

	assert.True(t, o.Contains(Point{0, 2.95}))
	assert.False(t, o.Contains(Point{1.5, 2.95}))
	assert.True(t, o.Contains(Point{1.5, 0.1}))
	assert.True(t, o.Contains(Point{-1.5, 5.8}))
}

func TestOutlineHollowSections(t *testing.T) {
	rect := hss(t)
	require.Len(t, rect.Rings, 2)
	assert.Negative(t, rect.Rings[1].Area())
	assert.InDelta(t, 24-(4-0.466)*(6-0.466), rect.Area(), 1e-9)
	assert.False(t, rect.Contains(Point{0, 3}))
	assert.True(t, rect.Contains(Point{1.9, 3}))

	pipe, err := OutlineOf(record(t, shape.FamilyPipe, "Pipe4STD", map[shape.Property]float64{
		shape.OD: 4.5, shape.Tdes: 0.221,
	}))
	require.NoError(t, err)
	r, ri := 2.25, 2.25-0.221
	assert.InEpsilon(t, math.Pi*(r*r-ri*ri), pipe.Area(), 0.01)
	assert.False(t, pipe.Contains(Point{0, 2.25}))
	assert.True(t, pipe.Contains(Point{0, 0.1}))
}

func TestOutlineAngles(t *testing.T) {
	single, err := OutlineOf(record(t, shape.FamilyAngle, "L4X3X1/2", map[shape.Property]float64{
		shape.DLower: 4, shape.BLower: 3, shape.TLower: 0.5,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 4*0.5+2.5*0.5, single.Area(), 1e-9)

	double, err := OutlineOf(record(t, shape.FamilyDoubleAngle, "2L4X3X1/2", map[shape.Property]float64{
		shape.DLower: 4, shape.BLower: 3, shape.TLower: 0.5,
	}))
	require.NoError(t, err)
	require.Len(t, double.Rings, 2)
	assert.InDelta(t, 2*single.Area(), double.Area(), 1e-9)
	assert.False(t, double.Contains(Point{0, 1}))
	assert.True(t, double.Contains(Point{DoubleAngleGap/2 + 0.1, 1}))
	assert.True(t, double.Contains(Point{-DoubleAngleGap/2 - 0.1, 1}))

	lo, hi := double.Bounds()
	assert.InDelta(t, 2*3+DoubleAngleGap, hi.X-lo.X, 1e-9)
}

func TestOutlineTeeAndChannel(t *testing.T) {
	tee, err := OutlineOf(record(t, shape.FamilyWideFlangeTee, "WT3X4.5", map[shape.Property]float64{
		shape.DLower: 2.95, shape.Bf: 3.94, shape.Tw: 0.17, shape.Tf: 0.215,
	}))
	require.NoError(t, err)
	assert.True(t, tee.Contains(Point{1.5, 2.9}))
	assert.False(t, tee.Contains(Point{1.5, 0.1}))

	channel, err := OutlineOf(record(t, shape.FamilyCeeChannel, "C6X8.2", map[shape.Property]float64{
		shape.DLower: 6, shape.Bf: 1.92, shape.Tw: 0.2, shape.Tf: 0.343,
	}))
	require.NoError(t, err)
	assert.True(t, channel.Contains(Point{0.1, 3}))
	assert.False(t, channel.Contains(Point{1, 3}))
}

func TestOutlineEveryFamily(t *testing.T) {
	dims := map[shape.Property]float64{
		shape.DLower: 6, shape.Bf: 4, shape.Tw: 0.25, shape.Tf: 0.5,
		shape.BLower: 4, shape.TLower: 0.5,
		shape.Ht: 6, shape.BUpper: 4, shape.Tdes: 0.25, shape.OD: 6,
	}
	for _, f := range shape.AllFamilies() {
		t.Run(f.Slug(), func(t *testing.T) {
			used := make(map[shape.Property]float64)
			for p, v := range dims {
				if shape.Rules(f).Has(p) {
					used[p] = v
				}
			}
			o, err := OutlineOf(record(t, f, "X", used))
			require.NoError(t, err)
			assert.Equal(t, f, o.Family)
			assert.Positive(t, o.Area())
			for _, r := range o.Rings {
				assert.GreaterOrEqual(t, len(r), 4)
			}
		})
	}
}

func TestOutlineInvalidDimensions(t *testing.T) {
	_, err := OutlineOf(record(t, shape.FamilyAngle, "L1X1X1", nil))
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, "L1X1X1", dimErr.Label)

	_, err = OutlineOf(record(t, shape.FamilyWideFlange, "W0", map[shape.Property]float64{shape.DLower: 0}))
	require.ErrorAs(t, err, &dimErr)
	assert.Contains(t, dimErr.Reason, "d must be positive")
}

func rasterRows(art string) []string {
	var rows []string
	for _, line := range strings.Split(art, "\n") {
		if strings.HasPrefix(line, "  │") {
			rows = append(rows, strings.TrimSuffix(strings.TrimPrefix(line, "  │"), "│"))
		}
	}
	return rows
}

func TestDrawASCII(t *testing.T) {
	art := DrawASCII(w6x9(t), 40, 20)
	assert.Contains(t, art, "W6X9")
	assert.Contains(t, art, "┌")

	rows := rasterRows(art)
	require.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), 20)
	top, middle := rows[0], rows[len(rows)/2]
	assert.NotContains(t, top, empty)
	assert.Less(t, strings.Count(middle, solid), strings.Count(top, solid))
	assert.Positive(t, strings.Count(middle, solid))

	rows = rasterRows(DrawASCII(hss(t), 40, 20))
	middle = rows[len(rows)/2]
	assert.True(t, strings.HasPrefix(middle, solid))
	assert.True(t, strings.HasSuffix(middle, solid))
	assert.Contains(t, middle, empty)

	assert.Empty(t, DrawASCII(Outline{}, 40, 20))
	assert.Empty(t, DrawASCII(w6x9(t), 0, 20))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("W6X9", []string{"A = 2.68 in²", "d = 5.90 in"})
	lines := strings.Split(strings.TrimSuffix(box, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(w6x9(t), "W6X9", filepath.Join(dir, "out", "w6x9.svg"))
	require.NoError(t, err)
	assert.FileExists(t, path)

	path, err = Export(hss(t), "HSS6X4X1/4", filepath.Join(dir, "hss"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hss.png"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = Export(w6x9(t), "W6X9", filepath.Join(dir, "w6x9.bmp"))
	assert.Error(t, err)
}

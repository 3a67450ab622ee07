package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(RowsRead.WithLabelValues("angle"))
	RecordRead("angle")
	RecordRead("angle")
	assert.Equal(t, before+2, testutil.ToFloat64(RowsRead.WithLabelValues("angle")))

	before = testutil.ToFloat64(RecordsStored.WithLabelValues("pipe"))
	RecordStored("pipe", 7)
	assert.Equal(t, before+7, testutil.ToFloat64(RecordsStored.WithLabelValues("pipe")))

	before = testutil.ToFloat64(ConversionFailures.WithLabelValues("hss"))
	RecordConversionFailure("hss")
	assert.Equal(t, before+1, testutil.ToFloat64(ConversionFailures.WithLabelValues("hss")))
}

func TestObserveQuery(t *testing.T) {
	okBefore := testutil.ToFloat64(StoreQueries.WithLabelValues("all", "angle", "ok"))
	errBefore := testutil.ToFloat64(StoreQueries.WithLabelValues("all", "angle", "error"))

	ObserveQuery("all", "angle", time.Now(), nil)
	ObserveQuery("all", "angle", time.Now(), errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(StoreQueries.WithLabelValues("all", "angle", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(StoreQueries.WithLabelValues("all", "angle", "error")))
}

func TestWriteTextfile(t *testing.T) {
	RecordRead("wide-flange")

	path := filepath.Join(t.TempDir(), "aisc.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `aisc_rows_read_total{family="wide-flange"}`))
}

package shapefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/shapefile"
)

const ledgerYAML = `
version: "2"
shapes:
  - type: ledger.Entry
    shape:
      meta: Entry
      of:
        product:
          - field: Debit
          - field: Credit
`

func TestParse(t *testing.T) {
	f, err := shapefile.Parse([]byte(ledgerYAML))
	require.NoError(t, err)

	assert.Equal(t, "2", f.Version)
	require.Len(t, f.Shapes, 1)

	ts := f.Shapes[0]
	assert.Equal(t, "ledger.Entry", ts.Type)
	assert.Equal(t, "Entry", ts.Shape.Meta)
	require.NotNil(t, ts.Shape.Of)
	require.Len(t, ts.Shape.Of.Product, 2)
	assert.Equal(t, "Debit", ts.Shape.Of.Product[0].Field)
	assert.Equal(t, "Credit", ts.Shape.Of.Product[1].Field)
}

func TestParseDefaultsVersion(t *testing.T) {
	f, err := shapefile.Parse([]byte("shapes: []"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
}

func TestParseBadYAML(t *testing.T) {
	_, err := shapefile.Parse([]byte("shapes: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ledgerYAML), 0o644))

	f, err := shapefile.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Shapes, 1)

	_, err = shapefile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

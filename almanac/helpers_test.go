package almanac_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangemap/almanac"
)

// readExample returns the published example almanac as text.
func readExample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "example.txt"))
	require.NoError(t, err)
	return string(data)
}

// parseExample parses testdata/example.txt.
func parseExample(t *testing.T) *almanac.Almanac {
	t.Helper()
	a, err := almanac.ParseString(readExample(t))
	require.NoError(t, err)
	return a
}

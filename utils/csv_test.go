package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV(t *testing.T) {
	t.Run("plain rows", func(t *testing.T) {
		out, err := BuildCSV(
			[]string{"fecha", "producto", "total"},
			[][]string{{"2024-01-01", "Cafe", "12.50"}},
		)
		require.NoError(t, err)
		assert.Equal(t, "fecha,producto,total\n2024-01-01,Cafe,12.50\n", string(out))
	})

	t.Run("embedded quotes are doubled and the field quoted", func(t *testing.T) {
		out, err := BuildCSV([]string{"nota"}, [][]string{{`He said "hi"`}})
		require.NoError(t, err)
		assert.Equal(t, "nota\n\"He said \"\"hi\"\"\"\n", string(out))
	})

	t.Run("commas and newlines force quoting", func(t *testing.T) {
		out, err := BuildCSV([]string{"a", "b"}, [][]string{{"uno, dos", "linea\nsalto"}})
		require.NoError(t, err)
		assert.Equal(t, "a,b\n\"uno, dos\",\"linea\nsalto\"\n", string(out))
	})

	t.Run("no rows still yields the header", func(t *testing.T) {
		out, err := BuildCSV([]string{"fecha", "producto"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "fecha,producto\n", string(out))
	})
}

func TestExportFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	name := ExportFilename("ventas", "csv")
	assert.Equal(t, fmt.Sprintf("ventas_%s.csv", today), name)

	name = ExportFilename("orden_ACME", "pdf")
	assert.True(t, strings.HasPrefix(name, "orden_ACME_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12.50", FormatMoney(12.5))
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "1234.57", FormatMoney(1234.5678))
}

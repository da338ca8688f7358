package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// BuildCSV renders a header row plus data rows as an RFC 4180 file.
// Fields containing commas, quotes or newlines come out double-quoted
// with embedded quotes doubled. An empty row set still yields a valid
// header-only file.
func BuildCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names a download "<dataset>_<ISO date>.<ext>".
func ExportFilename(dataset, ext string) string {
	return fmt.Sprintf("%s_%s.%s", dataset, time.Now().Format("2006-01-02"), ext)
}

// FormatMoney renders an amount the way the export sheets show it.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Package csvexport serializa reportes tabulares a CSV para descarga.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Encode serializa header + records como CSV. Cuando no hay registros
// devuelve un documento vacío: la cabecera solo acompaña datos reales.
func Encode(header []string, records [][]string) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readRows lee un CSV con columnas variables. Omite filas vacías, las que empiezan con '#'
// y una cabecera cuya primera columna sea "name". La primera columna nunca queda vacía.
func readRows(r io.Reader, latin1 bool) ([][]string, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if len(rows) == 0 && strings.EqualFold(rec[0], "name") {
			continue
		}
		if rec[0] == "" {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func field(r []string, i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

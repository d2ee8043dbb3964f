// Package tabular reads CSV and XLSX files into the dataset model the
// explorers consume. Ingestion is best-effort: cells that fail to parse
// under a column's inferred kind become nulls instead of failing the read.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"goexplore/domain/core"
	"goexplore/domain/explore"
	"goexplore/internal"
)

// NumericShareThreshold is the fraction of non-empty cells that must parse
// as numbers for a column to be declared numeric.
const NumericShareThreshold = 0.8

// Reader loads a CSV or XLSX file into a Dataset.
type Reader struct {
	filePath string
	sheet    string
	log      *internal.Logger
}

// NewReader creates a reader for the given file. The sheet name only applies
// to XLSX files; empty selects "Sheet1".
func NewReader(filePath, sheet string) *Reader {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &Reader{filePath: filePath, sheet: sheet, log: internal.DefaultLogger}
}

// Read loads the file, infers per-column kinds and returns the dataset.
func (r *Reader) Read() (explore.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return explore.Dataset{}, fmt.Errorf("input file not found: %s", r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(r.filePath)) {
	case ".csv":
		rows, err = r.readCSV()
	case ".xlsx":
		rows, err = r.readXLSX()
	default:
		return explore.Dataset{}, fmt.Errorf("%w: %s", core.ErrUnsupportedFile, filepath.Ext(r.filePath))
	}
	if err != nil {
		return explore.Dataset{}, err
	}
	if len(rows) < 2 {
		return explore.Dataset{}, fmt.Errorf("file must have a header row and at least one data row: %s", r.filePath)
	}
	return buildDataset(rows), nil
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	r.log.Debug("read %d rows from %s", len(rows), r.filePath)
	return rows, nil
}

func (r *Reader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	r.log.Debug("read %d rows from %s sheet %s", len(rows), r.filePath, r.sheet)
	return rows, nil
}

// buildDataset converts header + string rows into typed columns. Rows
// shorter than the header are padded with nulls so the dataset stays
// rectangular.
func buildDataset(rows [][]string) explore.Dataset {
	header := rows[0]
	data := rows[1:]

	columns := make([]explore.Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		raw := make([]string, len(data))
		for j, row := range data {
			if i < len(row) {
				raw[j] = strings.TrimSpace(row[i])
			}
		}
		columns[i] = buildColumn(name, raw)
	}
	return explore.Dataset{Columns: columns}
}

func buildColumn(name string, raw []string) explore.Column {
	nonEmpty, numeric := 0, 0
	for _, cell := range raw {
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, ok := parseNumber(cell); ok {
			numeric++
		}
	}

	kind := explore.KindNonNumeric
	if nonEmpty > 0 && float64(numeric) >= NumericShareThreshold*float64(nonEmpty) {
		kind = explore.KindNumeric
	}

	values := make([]any, len(raw))
	for i, cell := range raw {
		if cell == "" {
			continue // nil = missing
		}
		if kind == explore.KindNumeric {
			if f, ok := parseNumber(cell); ok {
				values[i] = f
			}
			continue // unparseable numeric cell stays null
		}
		values[i] = cell
	}
	return explore.Column{Name: name, Kind: kind, Values: values}
}

func parseNumber(cell string) (float64, bool) {
	cell = strings.ReplaceAll(cell, ",", "")
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

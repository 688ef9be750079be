package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMissingColumn is returned when an import file lacks a column the backend requires
var ErrMissingColumn = errors.New("missing required column")

// CheckTransactionsCSV validates a transactions import file before it is uploaded.
// Required columns: trade_date, action, amount, spelled exactly as the backend
// expects them. Every data row must carry a trade_date, an action and a numeric
// amount; the backend parses the dates itself. It returns the number of data rows.
func CheckTransactionsCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[col] = i
	}

	for _, col := range []string{"trade_date", "action", "amount"} {
		if _, ok := colIdx[col]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	field := func(record []string, col string) string {
		idx := colIdx[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rows := 0
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		if field(record, "trade_date") == "" {
			return rows, fmt.Errorf("row %d: trade_date is empty", rowNum)
		}
		if field(record, "action") == "" {
			return rows, fmt.Errorf("row %d: action is empty", rowNum)
		}
		amountStr := field(record, "amount")
		if _, err := decimal.NewFromString(amountStr); err != nil {
			return rows, fmt.Errorf("row %d: invalid amount %q", rowNum, amountStr)
		}
		rows++
	}

	return rows, nil
}

// Package parser provides spreadsheet reading utilities for card extraction.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/karuta-go/pkg/karuta/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCards reads one card per row of rng from a sheet.
// Card IDs start at 1 for the first row of the range. Rows past the
// sheet's data produce cards with nil values rather than an error.
func ExtractCards(f *excelize.File, sheetName string, rng models.CardRange) ([]models.Card, error) {
	cards := make([]models.Card, 0, rng.Rows())
	for rowNum := rng.R1; rowNum <= rng.R2; rowNum++ {
		var values [CardColumns]any
		for i := range values {
			v, err := cellValue(f, sheetName, rng.C1+i, rowNum)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}

		cards = append(cards, models.Card{
			ID:      rowNum - rng.R1 + 1,
			Level:   values[0],
			Initial: values[1],
			Content: values[2],
		})
	}

	return cards, nil
}

// cellValue returns the typed value of a single cell.
// Text cells and text formula results stay strings, boolean cells become
// bool, and everything else goes through parseValue. A formula without a
// cached result returns its formula text ("=..."). Empty cells return nil.
func cellValue(f *excelize.File, sheetName string, col, row int) (any, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}

	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if raw == "" {
		formula, err := f.GetCellFormula(sheetName, cellName)
		if err != nil {
			return nil, err
		}
		if formula == "" {
			return nil, nil
		}
		return "=" + strings.TrimPrefix(formula, "="), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeDate,
		excelize.CellTypeFormula:
		return raw, nil
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	default:
		return parseValue(raw), nil
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

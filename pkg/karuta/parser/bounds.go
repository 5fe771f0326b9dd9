package parser

import (
	"github.com/ukaji3/karuta-go/pkg/karuta/models"
	"github.com/xuri/excelize/v2"
)

// LastDataRow returns the last 1-based row holding a non-empty cell within
// the columns of rng, or 0 when those columns are empty.
func LastDataRow(f *excelize.File, sheetName string, rng models.CardRange) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}

	return findLastRow(rows, rng.C1-1, rng.C2-1), nil
}

// findLastRow scans rows bottom-up for a non-empty cell in [minCol, maxCol]
// (0-based) and returns its 1-based row number.
func findLastRow(rows [][]string, minCol, maxCol int) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				return rowIdx + 1
			}
		}
	}
	return 0
}

package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/karuta-go/pkg/karuta/models"
	"github.com/xuri/excelize/v2"
)

// CardColumns is the number of columns a card range spans:
// level, initial and content.
const CardColumns = 3

// DefaultRange is the header-less block holding the 100 cards.
const DefaultRange = "A2:C101"

// ParseRange parses a range string like $A$2:$C$101 or A2:C101 to a CardRange.
// An optional sheet prefix ('Sheet 1'!A2:C101) is ignored.
func ParseRange(ref string) (models.CardRange, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.CardRange{}, fmt.Errorf("invalid range %q: expected <start>:<end>", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CardRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CardRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		return models.CardRange{}, fmt.Errorf("invalid range %q: end row %d before start row %d", ref, endRow, startRow)
	}
	if endCol-startCol+1 != CardColumns {
		return models.CardRange{}, fmt.Errorf("invalid range %q: must span exactly %d columns", ref, CardColumns)
	}

	return models.CardRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

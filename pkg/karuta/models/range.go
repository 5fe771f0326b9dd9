package models

import "fmt"

// CardRange represents the cell bounds cards are read from.
type CardRange struct {
	// R1 is the first card row (1-based).
	R1 int
	// C1 is the level column (1-based). Initial and content follow it.
	C1 int
	// R2 is the last card row (1-based, inclusive).
	R2 int
	// C2 is the content column (1-based, inclusive).
	C2 int
}

// Rows returns the number of cards the range yields.
func (r CardRange) Rows() int {
	return r.R2 - r.R1 + 1
}

func (r CardRange) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
}

// Package models defines data structures for card conversion.
package models

// Card is one karuta card read from a single spreadsheet row.
//
// Level, Initial and Content keep the type found in the source cell
// (string, int64, float64 or bool). Empty cells are nil and encode as null.
type Card struct {
	// ID is the card number (1-based, contiguous in row order).
	ID int `json:"id"`
	// Level is the value of the first column of the range.
	Level any `json:"level"`
	// Initial is the value of the second column of the range.
	Initial any `json:"initial"`
	// Content is the value of the third column of the range.
	Content any `json:"content"`
}

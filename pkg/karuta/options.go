// Package karuta converts karuta card spreadsheets into JSON card decks.
package karuta

import (
	"github.com/ukaji3/karuta-go/pkg/karuta/parser"
	"go.uber.org/zap"
)

const (
	// DefaultInputPath is the workbook read when no input is given.
	DefaultInputPath = "260111geminiOCR.xlsx"
	// DefaultOutputPath is where the card deck is written by default.
	DefaultOutputPath = "public/cards.json"
	// DefaultPreview is the number of cards shown after a conversion.
	DefaultPreview = 3
)

// Options configures conversion behavior.
type Options struct {
	// Sheet is the sheet to read. Empty means the active sheet.
	Sheet string
	// Range is the A1-style card range. Empty means parser.DefaultRange.
	Range string
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Range: parser.DefaultRange,
	}
}

// RangeOrDefault returns the configured range or parser.DefaultRange.
func (o Options) RangeOrDefault() string {
	if o.Range != "" {
		return o.Range
	}
	return parser.DefaultRange
}

// LoggerOrNop returns the configured logger or a no-op logger.
func (o Options) LoggerOrNop() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

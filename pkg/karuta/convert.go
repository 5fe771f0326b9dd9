package karuta

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/karuta-go/pkg/karuta/models"
	"github.com/ukaji3/karuta-go/pkg/karuta/output"
	"github.com/ukaji3/karuta-go/pkg/karuta/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Result describes a finished conversion.
type Result struct {
	// Sheet is the name of the sheet the cards were read from.
	Sheet string
	// Cards holds every converted card in row order.
	Cards []models.Card
	// OutputPath is the written JSON file.
	OutputPath string
	// CreatedDir reports whether the output directory had to be created.
	CreatedDir bool
}

// Convert reads cards from the workbook at inputPath and writes them to
// outputPath as an indented JSON array. The output file is only touched
// once every card has been read and encoded.
func Convert(inputPath, outputPath string, opts Options) (*Result, error) {
	logger := opts.LoggerOrNop()

	sheet, cards, err := extract(inputPath, opts)
	if err != nil {
		return nil, err
	}

	data, err := output.ToJSON(cards)
	if err != nil {
		return nil, NewConversionError(StageEncode, outputPath, err)
	}

	createdDir, err := output.WriteFile(outputPath, data)
	if err != nil {
		return nil, NewConversionError(StageWrite, outputPath, err)
	}
	if createdDir {
		logger.Info("Created output directory", zap.String("dir", filepath.Dir(outputPath)))
	}

	logger.Info("Conversion complete",
		zap.Int("cards", len(cards)),
		zap.String("output", outputPath))

	return &Result{
		Sheet:      sheet,
		Cards:      cards,
		OutputPath: outputPath,
		CreatedDir: createdDir,
	}, nil
}

// Extract reads cards from the workbook at path without writing anything.
func Extract(path string, opts Options) ([]models.Card, error) {
	_, cards, err := extract(path, opts)
	return cards, err
}

func extract(path string, opts Options) (string, []models.Card, error) {
	logger := opts.LoggerOrNop()

	rng, err := parser.ParseRange(opts.RangeOrDefault())
	if err != nil {
		return "", nil, NewConversionError(StageOpen, path, err)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", nil, NewConversionError(StageOpen, path, err)
	}

	logger.Info("Reading workbook", zap.String("path", path))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, NewConversionError(StageOpen, path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	cards, err := parser.ExtractCards(f, sheet, rng)
	if err != nil {
		return "", nil, NewConversionError(StageRead, path, err)
	}

	// Short sheets still yield a full deck; empty rows become null cards.
	if last, err := parser.LastDataRow(f, sheet, rng); err == nil && last < rng.R2 {
		logger.Warn("Sheet ends before card range; missing cards are null",
			zap.String("sheet", sheet),
			zap.Int("last_row", last),
			zap.Int("range_end", rng.R2))
	}

	logger.Debug("Extracted cards",
		zap.String("sheet", sheet),
		zap.Stringer("range", rng),
		zap.Int("cards", len(cards)))

	return sheet, cards, nil
}

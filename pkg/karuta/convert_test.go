package karuta

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
)

// writeWorkbook creates a workbook with a header row and dataRows cards.
func writeWorkbook(t *testing.T, dataRows int) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "大ピンチレベル")
	f.SetCellValue("Sheet1", "B1", "頭文字")
	f.SetCellValue("Sheet1", "C1", "内容")
	for i := 1; i <= dataRows; i++ {
		row := i + 1
		f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), i%5+1)
		f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), fmt.Sprintf("頭%d", i))
		f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), fmt.Sprintf("内容 %d", i))
	}
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "B2", "あ")
	f.SetCellValue("Sheet1", "C2", "Test")

	path := filepath.Join(t.TempDir(), "cards.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

type decodedCard struct {
	ID      int     `json:"id"`
	Level   any     `json:"level"`
	Initial *string `json:"initial"`
	Content *string `json:"content"`
}

func readDeck(t *testing.T, path string) []decodedCard {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cards []decodedCard
	require.NoError(t, json.Unmarshal(data, &cards))
	return cards
}

func TestConvert(t *testing.T) {
	input := writeWorkbook(t, 100)
	outputPath := filepath.Join(t.TempDir(), "public", "cards.json")

	opts := DefaultOptions()
	opts.Logger = zaptest.NewLogger(t)

	result, err := Convert(input, outputPath, opts)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", result.Sheet)
	assert.Equal(t, outputPath, result.OutputPath)
	assert.True(t, result.CreatedDir)
	require.Len(t, result.Cards, 100)

	cards := readDeck(t, outputPath)
	require.Len(t, cards, 100)
	for i, card := range cards {
		assert.Equal(t, i+1, card.ID)
	}

	first := cards[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, float64(1), first.Level)
	require.NotNil(t, first.Initial)
	assert.Equal(t, "あ", *first.Initial)
	require.NotNil(t, first.Content)
	assert.Equal(t, "Test", *first.Content)

	last := cards[99]
	require.NotNil(t, last.Content)
	assert.Equal(t, "内容 100", *last.Content)
	assert.Equal(t, float64(100%5+1), last.Level)
}

func TestConvertKeepsNonASCIILiteral(t *testing.T) {
	input := writeWorkbook(t, 100)
	outputPath := filepath.Join(t.TempDir(), "cards.json")

	_, err := Convert(input, outputPath, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"initial": "あ"`)
	assert.NotContains(t, string(data), `\u`)
}

func TestConvertShortSheet(t *testing.T) {
	input := writeWorkbook(t, 50)
	outputPath := filepath.Join(t.TempDir(), "cards.json")

	result, err := Convert(input, outputPath, Options{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	require.Len(t, result.Cards, 100)

	cards := readDeck(t, outputPath)
	require.Len(t, cards, 100)
	assert.NotNil(t, cards[49].Content)
	for _, card := range cards[50:] {
		assert.Nil(t, card.Level)
		assert.Nil(t, card.Initial)
		assert.Nil(t, card.Content)
	}
	assert.Equal(t, 100, cards[99].ID)
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "public", "cards.json")

	_, err := Convert(filepath.Join(dir, "missing.xlsx"), outputPath, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, StageOpen, convErr.Stage)

	_, statErr := os.Stat(filepath.Join(dir, "public"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestConvertMissingInputLeavesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(outputPath, []byte("previous"), 0644))

	_, err := Convert(filepath.Join(dir, "missing.xlsx"), outputPath, Options{})
	require.Error(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestConvertInvalidWorkbook(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("not a workbook"), 0644))

	_, err := Convert(input, filepath.Join(dir, "cards.json"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestConvertUnknownSheet(t *testing.T) {
	input := writeWorkbook(t, 100)

	_, err := Convert(input, filepath.Join(t.TempDir(), "cards.json"), Options{Sheet: "Nope"})
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, StageRead, convErr.Stage)
}

func TestConvertWriteFailure(t *testing.T) {
	input := writeWorkbook(t, 100)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "public")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := Convert(input, filepath.Join(blocker, "cards.json"), Options{})
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, StageWrite, convErr.Stage)
}

func TestExtractCustomRange(t *testing.T) {
	input := writeWorkbook(t, 10)

	cards, err := Extract(input, Options{Range: "A4:C6"})
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, 1, cards[0].ID)
	assert.Equal(t, "頭3", cards[0].Initial)
	assert.Equal(t, "内容 5", cards[2].Content)
}

func TestExtractInvalidRange(t *testing.T) {
	input := writeWorkbook(t, 10)

	_, err := Extract(input, Options{Range: "A2:Z9"})
	assert.Error(t, err)
}

func TestOptionsDefaults(t *testing.T) {
	assert.Equal(t, "A2:C101", Options{}.RangeOrDefault())
	assert.Equal(t, "B1:D3", Options{Range: "B1:D3"}.RangeOrDefault())
	assert.NotNil(t, Options{}.LoggerOrNop())
}

// Package output provides card deck serialization and file writing.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/karuta-go/pkg/karuta/models"
)

// Indent is the per-level indentation of the written JSON.
const Indent = "  "

// ToJSON encodes cards as an indented JSON array followed by a newline.
// Non-ASCII text and HTML characters are written literally.
func ToJSON(cards []models.Card) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(cards); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path, creating the parent directory first when
// it does not exist. It reports whether the directory was created.
func WriteFile(path string, data []byte) (bool, error) {
	createdDir := false
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
		createdDir = true
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return createdDir, err
	}
	return createdDir, nil
}

// WritePreview prints the first n cards, one per line.
func WritePreview(w io.Writer, cards []models.Card, n int) error {
	n = min(n, len(cards))
	for _, card := range cards[:max(n, 0)] {
		if _, err := fmt.Fprintf(w, "card %d: level %s, %s, %s\n",
			card.ID, display(card.Level), display(card.Initial), display(card.Content)); err != nil {
			return err
		}
	}
	return nil
}

func display(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

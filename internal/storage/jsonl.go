package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xolan/tlreport/internal/entry"
)

const (
	// ExtJSON marks a file holding a single JSON array of entries
	ExtJSON = ".json"
	// ExtJSONL marks a JSON Lines file with one entry per line
	ExtJSONL = ".jsonl"

	// MaxLineSize bounds a single JSON Lines record
	MaxLineSize = 16 * 1024 * 1024
)

// LineError describes a JSON Lines record that could not be decoded.
type LineError struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the line
	Err        error
}

func (e *LineError) Error() string {
	if e.Content == "" {
		return fmt.Sprintf("line %d: %v", e.LineNumber, e.Err)
	}
	content := runewidth.Truncate(e.Content, 50, "...")
	return fmt.Sprintf("line %d: %s (error: %v)", e.LineNumber, content, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ReadRawEntries reads session entries from path, choosing the decoder by
// file extension. Entries are returned in file order.
func ReadRawEntries(path string) ([]entry.RawEntry, error) {
	if err := ValidateInputPath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if strings.EqualFold(filepath.Ext(path), ExtJSONL) {
		return DecodeJSONL(file)
	}
	return DecodeJSON(file)
}

// DecodeJSON decodes a JSON array of entries.
func DecodeJSON(r io.Reader) ([]entry.RawEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	entries := []entry.RawEntry{}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return entries, nil
}

// DecodeJSONL decodes JSON Lines, skipping blank lines. Unlike a tracking
// log, a report input cannot be partially valid, so the first bad line fails
// the whole read.
func DecodeJSONL(r io.Reader) ([]entry.RawEntry, error) {
	return decodeJSONL(r, MaxLineSize)
}

func decodeJSONL(r io.Reader, maxLine int) ([]entry.RawEntry, error) {
	entries := []entry.RawEntry{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()
		if strings.TrimSpace(lineContent) == "" {
			continue
		}

		var e entry.RawEntry
		if err := json.Unmarshal([]byte(lineContent), &e); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, &LineError{
				LineNumber: lineNumber,
				Content:    lineContent,
				Err:        err,
			})
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, &LineError{
				LineNumber: lineNumber + 1,
				Err:        fmt.Errorf("line longer than %d bytes: %w", maxLine, err),
			})
		}
		return nil, err
	}

	return entries, nil
}

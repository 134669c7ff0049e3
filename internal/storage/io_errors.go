package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrPathRequired is returned when no input file was given.
	ErrPathRequired = errors.New("input filename required")
	// ErrNotJSON is returned for an input file without a .json or .jsonl extension.
	ErrNotJSON = errors.New("input file must be JSON [*.json, *.jsonl]")
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrInvalidJSON is returned when the input file cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON provided")
)

// ValidateInputPath checks that path names an existing JSON input file.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrPathRequired
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ExtJSON && ext != ExtJSONL {
		return fmt.Errorf("%w (got %s)", ErrNotJSON, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	return nil
}

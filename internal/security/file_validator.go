package security

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize caps symbol source files; anything larger is skipped
const DefaultMaxFileSize = 10 * 1024 * 1024

var (
	// ErrFileTooLarge is returned for files over the configured size limit
	ErrFileTooLarge = errors.New("file exceeds size limit")
	// ErrBinaryFile is returned when a source file's header looks binary
	ErrBinaryFile = errors.New("file appears to be binary")
)

// FileValidator checks a symbol source before the loader reads it whole.
// Only the header is read, so oversized or disguised binaries cost one
// small read.
type FileValidator struct {
	MaxFileSize int64 // 0 = no limit
	HeaderSize  int64 // Size of header to inspect
}

func NewFileValidator(maxFileSize int64) *FileValidator {
	return &FileValidator{
		MaxFileSize: maxFileSize,
		HeaderSize:  8 * 1024,
	}
}

// Validate returns nil when path looks like a readable text source
func (fv *FileValidator) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if fv.MaxFileSize > 0 && info.Size() > fv.MaxFileSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, info.Size(), fv.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, fv.HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("failed to read header: %w", err)
	}
	header = header[:n]

	if isBinaryData(header) {
		return ErrBinaryFile
	}
	return validateSource(path, header)
}

// isBinaryData reports whether more than 30% of data is control bytes,
// or any NUL byte is present
func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range data {
		// Control characters other than tab, LF, CR; and DEL
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

// validateSource checks extension-specific markers. Symbol lists have no
// required syntax so only Go sources are inspected.
func validateSource(path string, header []byte) error {
	if strings.ToLower(filepath.Ext(path)) != ".go" || len(bytes.TrimSpace(header)) == 0 {
		return nil
	}

	goPatterns := [][]byte{
		[]byte("package "),
		[]byte("//go:build"),
		[]byte("// +build"),
	}
	for _, pattern := range goPatterns {
		if bytes.Contains(header, pattern) {
			return nil
		}
	}
	return errors.New("no package clause found in Go source")
}

package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateLabel validates a poster label before it is handed to the external
// image tool. It rejects values that could break out of the generated command
// line or produce unusable cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Category-specific validation is done separately by the catalog tables.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}

	if strings.Contains(label, "\x00") {
		return New(ErrCodeInvalidInput, "label contains null byte")
	}

	return nil
}

// ValidateAssetFilename validates a background/font asset filename.
// It ensures the filename is a simple basename without path components,
// so a catalog entry cannot escape the configured asset directory.
func ValidateAssetFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "asset filename cannot be empty")
	}

	if filepath.Base(filename) != filename {
		return New(ErrCodeInvalidPath, "asset filename must not contain path components: %q", filename)
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "asset filename must not be hidden or relative: %q", filename)
	}

	return nil
}

// Package checksum verifies bundled poster assets against a SHA-256
// manifest, so a corrupted or locally modified background is caught before
// a batch run bakes it into thousands of posters.
//
// The manifest uses the sha256sum line format: "<hex digest>  <filename>".
package checksum

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/postersmith/postersmith/pkg/errors"
)

// Manifest maps asset filenames to their expected SHA-256 hex digests.
type Manifest map[string]string

// LoadManifest parses a sha256sum-format manifest file.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open checksum manifest %s", path)
	}
	defer f.Close()

	m := make(Manifest)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 64 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"malformed manifest line %d in %s: %q", lineNo, path, line)
		}
		m[fields[1]] = strings.ToLower(fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return m, nil
}

// Mismatch describes one asset that failed verification.
type Mismatch struct {
	Name     string // asset filename
	Expected string // digest from the manifest
	Actual   string // computed digest, empty if the file is missing
}

func (m Mismatch) String() string {
	if m.Actual == "" {
		return m.Name + ": missing"
	}
	return fmt.Sprintf("%s: expected %s, got %s", m.Name, m.Expected, m.Actual)
}

// VerifyDir checks every manifest entry against the file of the same name
// in dir. It returns all mismatches rather than stopping at the first, so
// one report covers the whole asset set.
func VerifyDir(dir string, m Manifest) ([]Mismatch, error) {
	var mismatches []Mismatch
	for name, expected := range m {
		actual, err := FileDigest(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			mismatches = append(mismatches, Mismatch{Name: name, Expected: expected})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", name, err)
		}
		if actual != expected {
			mismatches = append(mismatches, Mismatch{Name: name, Expected: expected, Actual: actual})
		}
	}
	return mismatches, nil
}

// FileDigest computes the SHA-256 hex digest of the file at path.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

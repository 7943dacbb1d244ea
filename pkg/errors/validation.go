package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxNameLength bounds node names read from definition files.
const MaxNameLength = 1024

// TreeFileExtensions lists the definition file extensions understood by
// treemark, in lower case and with the leading dot.
var TreeFileExtensions = []string{".toml", ".json"}

// ValidateNodeName checks a node name read from a definition file.
//
// Names may contain any text, markup characters included; they are escaped at
// render time. The rules only reject what cannot be displayed:
//   - No empty names
//   - Valid UTF-8
//   - Maximum length of MaxNameLength bytes
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "node name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "node name is not valid UTF-8")
	}
	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "node name too long (max %d bytes)", MaxNameLength)
	}
	return nil
}

// ValidateTreeFile checks that path names a definition file with a supported
// extension. It does not touch the filesystem.
func ValidateTreeFile(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "tree file path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "tree file path contains invalid characters")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(TreeFileExtensions, ext) {
		return New(ErrCodeInvalidFormat, "unsupported tree file %q (must be .toml or .json)", filepath.Base(path))
	}
	return nil
}

package snapshot

import (
	"path/filepath"
	"strings"

	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/errors"
)

// Format is a snapshot encoding.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	// FormatJSON is the native scene encoding.
	FormatJSON Format = "json"
	// FormatYAML is a YAML rendition of the same document.
	FormatYAML Format = "yaml"
)

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewValidationError("input_format", s, "must be one of: json, yaml")
	}
}

// FormatFor returns the format for path when f is FormatAuto. Stdin,
// stdout and unknown extensions use JSON.
func FormatFor(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	if path == constants.StdioPath {
		return FormatJSON
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

package snapshot

import (
	"io"
	"os"
	"path/filepath"

	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/errors"
)

// Read decodes a snapshot from r.
func Read(r io.Reader, name string, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return Decode(data, name, format)
}

// Load reads the snapshot at path. "-" reads stdin.
func Load(path string, format Format) (*Document, error) {
	if path == constants.StdioPath {
		return Read(os.Stdin, "stdin", format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("snapshot", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(data, path, format)
}

// Write encodes doc to w.
func Write(w io.Writer, doc *Document, format Format) error {
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// Save writes doc to path, creating parent directories. "-" writes stdout.
// With FormatAuto the format follows the extension of path.
func Save(path string, doc *Document, format Format) error {
	format = FormatFor(path, format)
	if path == constants.StdioPath {
		return Write(os.Stdout, doc, format)
	}

	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

package snapshot

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/errors"
)

// Decode parses a snapshot. name is only used in error messages.
func Decode(data []byte, name string, format Format) (*Document, error) {
	format = FormatFor(name, format)

	var (
		doc *Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		perr := errors.NewParseError(string(format), name, err.Error(), err)
		perr.Line, perr.Column = position(data, err)
		return nil, perr
	}

	if err := check(doc); err != nil {
		return nil, errors.WrapParse(string(format), name, err)
	}
	return doc, nil
}

func decodeJSON(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var els []elements.Element
		if err := json.Unmarshal(data, &els); err != nil {
			return nil, err
		}
		return bare(els), nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeYAML(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var probe any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe.([]any); ok {
		var els []elements.Element
		if err := yaml.Unmarshal(data, &els); err != nil {
			return nil, err
		}
		return bare(els), nil
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// position maps the byte offset carried by a JSON error to a 1-based line
// and column. Errors without an offset yield zeros.
func position(data []byte, err error) (line, column int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}

	head := data[:offset]
	line = bytes.Count(head, []byte("\n")) + 1
	column = len(head) - bytes.LastIndexByte(head, '\n') - 1
	return line, column
}

func bare(els []elements.Element) *Document {
	doc := New(els)
	doc.Bare = true
	return doc
}

// check rejects documents that cannot be reconciled at all.
func check(doc *Document) error {
	if doc.Type != "" && doc.Type != constants.SnapshotType {
		return fmt.Errorf("unsupported document type %q", doc.Type)
	}
	for i, e := range doc.Elements {
		if e.ID == "" {
			return fmt.Errorf("element %d has no id", i)
		}
	}
	if doc.Elements == nil {
		doc.Elements = []elements.Element{}
	}
	return nil
}

// Encode renders doc in format. FormatAuto encodes JSON.
func Encode(doc *Document, format Format) ([]byte, error) {
	var v any = doc
	if doc.Bare {
		v = doc.Elements
	}

	switch format {
	case FormatYAML:
		out, err := yaml.MarshalWithOptions(v,
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml snapshot: %w", err)
		}
		return out, nil
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json snapshot: %w", err)
		}
		return append(out, '\n'), nil
	}
}

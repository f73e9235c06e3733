package quizfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath picks the format by file extension: ".json" is JSON,
// everything else YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads, schema-checks and decodes a quiz file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read quiz file: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse schema-checks and decodes a single document. Unknown fields and
// trailing documents are rejected.
func Parse(data []byte, format Format) (Document, error) {
	generic, err := toGeneric(data, format)
	if err != nil {
		return Document{}, err
	}
	if err := checkSchema(generic); err != nil {
		return Document{}, err
	}

	if format == FormatJSON {
		return parseJSON(data)
	}
	return parseYAML(data)
}

// toGeneric decodes data into the value shape the schema validator expects:
// maps, slices, strings, float64 and bool. YAML input goes through JSON to
// normalize its integer and map types.
func toGeneric(data []byte, format Format) (any, error) {
	if format == FormatJSON {
		var v any
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		var rest json.RawMessage
		if err := expectEOF(decoder.Decode(&rest)); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return v, nil
	}

	var y any
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	raw, err := json.Marshal(y)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return v, nil
}

func parseJSON(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	var rest json.RawMessage
	if err := expectEOF(decoder.Decode(&rest)); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAML(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	var rest yaml.Node
	if err := expectEOF(decoder.Decode(&rest)); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}

// errMultipleDocuments is reported when a file holds more than one document.
var errMultipleDocuments = errors.New("multiple documents are not supported")

// expectEOF maps the result of decoding past the first document: io.EOF
// means the input ended, a successful decode means a second document.
func expectEOF(err error) error {
	switch {
	case err == io.EOF:
		return nil
	case err == nil:
		return errMultipleDocuments
	default:
		return err
	}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc Document, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

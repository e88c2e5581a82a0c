package elements

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Keys owned by the typed fields of Element. Every other key of an encoded
// element lives in Data.
var reservedKeys = []string{"id", "version", "versionNonce", "index", "isDeleted", "updated"}

// plain has the fields of Element without its methods.
type plain Element

// fields flattens e into a single map, Data first so the typed fields win.
func (e Element) fields() map[string]any {
	out := make(map[string]any, len(e.Data)+len(reservedKeys))
	for k, v := range e.Data {
		out[k] = v
	}
	out["id"] = e.ID
	out["version"] = e.Version
	out["versionNonce"] = e.VersionNonce
	out["index"] = e.Index
	out["isDeleted"] = e.Deleted
	if e.Updated != 0 {
		out["updated"] = e.Updated
	}
	return out
}

// absorb stores the keys of raw that no typed field owns.
func (e *Element) absorb(raw map[string]any) {
	for _, k := range reservedKeys {
		delete(raw, k)
	}
	if len(raw) == 0 {
		e.Data = nil
		return
	}
	e.Data = raw
}

// MarshalJSON writes Data flat next to the typed fields.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// UnmarshalJSON reads the typed fields and keeps the rest in Data.
func (e *Element) UnmarshalJSON(b []byte) error {
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Element(p)
	e.absorb(raw)
	return nil
}

// MarshalYAML writes Data flat next to the typed fields.
func (e Element) MarshalYAML() (any, error) {
	return e.fields(), nil
}

// UnmarshalYAML reads the typed fields and keeps the rest in Data.
func (e *Element) UnmarshalYAML(b []byte) error {
	var p plain
	if err := yaml.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Element(p)
	e.absorb(raw)
	return nil
}

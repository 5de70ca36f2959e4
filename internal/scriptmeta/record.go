package scriptmeta

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// ScriptType categorizes a script. It is fixed at first publish and never
// changes afterwards unless the record is explicitly reset.
type ScriptType string

const (
	TypeWidget ScriptType = "widget"
	TypeHelper ScriptType = "helper"
	TypeScript ScriptType = "script"
)

func (t ScriptType) Valid() bool {
	switch t {
	case TypeWidget, TypeHelper, TypeScript:
		return true
	}
	return false
}

func ParseScriptType(s string) (ScriptType, error) {
	t := ScriptType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid script type %q (want widget, helper or script)", s)
	}
	return t, nil
}

// ScriptRecord is the version metadata tracked for one script. The script
// name is the key of the enclosing MetadataDocument, not a field.
type ScriptRecord struct {
	Version     string     `json:"version"`
	Type        ScriptType `json:"type"`
	Hash        string     `json:"hash,omitempty"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// MetadataDocument maps script name to its record. Records are append-only:
// neither sync direction ever deletes an entry.
type MetadataDocument map[string]*ScriptRecord

func (d MetadataDocument) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func UnmarshalMetadata(data []byte) (MetadataDocument, error) {
	var doc MetadataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = MetadataDocument{}
	}
	return doc, nil
}

// Clone returns a deep copy so callers can mutate a working set without
// touching the document they loaded.
func (d MetadataDocument) Clone() MetadataDocument {
	out := make(MetadataDocument, len(d))
	for name, rec := range d {
		cp := *rec
		out[name] = &cp
	}
	return out
}

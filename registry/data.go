package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// AccountRecord is a single entry of the SS58 registry document.
// StandardAccount and Website are optional; an empty StandardAccount marks
// the prefix as reserved for future assignment.
type AccountRecord struct {
	Prefix          uint16   `json:"prefix"`
	Network         string   `json:"network"`
	DisplayName     string   `json:"displayName"`
	StandardAccount string   `json:"standardAccount"`
	Symbols         []string `json:"symbols"`
	Decimals        []uint8  `json:"decimals"`
	Website         string   `json:"website"`
}

// IsReserved reports whether the record has no signature scheme bound to it.
func (r AccountRecord) IsReserved() bool {
	return r.StandardAccount == ""
}

// Doc is the documentation string attached to the record's generated variant.
func (r AccountRecord) Doc() string {
	if r.Website != "" {
		return fmt.Sprintf("%s - <%s>", r.DisplayName, r.Website)
	}

	return r.DisplayName
}

// Document is the parsed registry file, an ordered list of account records.
type Document struct {
	Registry []AccountRecord `json:"registry"`
}

// LoadDocument parses a registry document from raw JSON bytes.
// Unknown fields are ignored, missing optional fields are treated as absent.
func LoadDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse registry json: %w", err)
	}

	return doc, nil
}

// LoadDocumentFile reads and parses the registry document at path.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	return LoadDocument(data)
}

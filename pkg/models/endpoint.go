package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Endpoint is one (path, method) record flattened from the catalog. An
// endpoint path appears once per HTTP method it supports.
type Endpoint struct {
	Path        string `json:"endpoint"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// EndpointCatalog matches the response of GET endpoints.json.
type EndpointCatalog struct {
	Endpoints []CatalogEntry `json:"endpoints"`
}

// CatalogEntry describes one endpoint path and its supported methods.
type CatalogEntry struct {
	Path    string    `json:"endpoint"`
	Methods MethodSet `json:"methods"`
}

// MethodInfo describes one HTTP method supported by an endpoint.
type MethodInfo struct {
	Name        string
	Description string
}

// MethodSet holds an endpoint's methods in the order the device reported
// them. A map would scramble the catalog order, so decoding walks the JSON
// object token by token.
type MethodSet []MethodInfo

func (m *MethodSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("methods: expected object, got %v", tok)
	}
	var out MethodSet
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("methods: expected method name, got %v", tok)
		}
		var detail struct {
			Desc string `json:"desc"`
		}
		if err := dec.Decode(&detail); err != nil {
			return err
		}
		out = append(out, MethodInfo{Name: name, Description: detail.Desc})
	}
	*m = out
	return nil
}

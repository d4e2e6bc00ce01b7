package client

import (
	"encoding/json"
	"net/http"
	"strings"

	"fpp-cli/pkg/models"
)

const catalogPath = "endpoints.json"

// ListEndpoints fetches the player's self-described endpoint catalog and
// flattens it into one record per (path, method) pair, in catalog order.
// filter is a case-sensitive substring match on the path; empty matches all.
// The catalog is fetched fresh on every call, nothing is cached.
func (c *FPPClient) ListEndpoints(filter string) ([]models.Endpoint, error) {
	res, err := c.Execute(http.MethodGet, catalogPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var catalog models.EndpointCatalog
	if err := json.Unmarshal(res.Raw, &catalog); err != nil {
		return nil, &models.APIError{Kind: models.ErrDecode, Message: models.MsgInvalidJSON, Err: err}
	}

	var records []models.Endpoint
	for _, entry := range catalog.Endpoints {
		if !strings.Contains(entry.Path, filter) {
			continue
		}
		for _, m := range entry.Methods {
			records = append(records, models.Endpoint{
				Path:        entry.Path,
				Method:      m.Name,
				Description: m.Description,
			})
		}
	}
	return records, nil
}

// GetEndpointDetail returns the records whose path equals path exactly, or
// nil when the player exposes no such endpoint. The substring listing is
// only a network nicety; substring-but-not-exact matches are dropped.
func (c *FPPClient) GetEndpointDetail(path string) ([]models.Endpoint, error) {
	records, err := c.ListEndpoints(path)
	if err != nil {
		return nil, err
	}

	var exact []models.Endpoint
	for _, r := range records {
		if r.Path == path {
			exact = append(exact, r)
		}
	}
	return exact, nil
}

// RunEndpoint invokes an arbitrary endpoint with the client's configured
// key and timeout. method defaults to GET; anything outside GET/POST/DELETE
// is rejected before any network I/O.
func (c *FPPClient) RunEndpoint(path string, params map[string]string, body any, method string) (*models.Result, error) {
	if method == "" {
		method = http.MethodGet
	}
	// Catalog paths carry the /api prefix the base URL already has.
	path = strings.TrimPrefix(strings.TrimPrefix(path, "/api"), "/")
	return c.Execute(method, path, params, body)
}

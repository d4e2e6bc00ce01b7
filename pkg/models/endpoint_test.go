package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpp-cli/pkg/models"
)

func TestMethodSetPreservesOrder(t *testing.T) {
	// A plain map decode would scramble this; the catalog order must
	// survive the round trip.
	raw := `{"POST":{"desc":"create"},"GET":{"desc":"read"},"DELETE":{"desc":"remove"}}`

	var m models.MethodSet
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, models.MethodSet{
		{Name: "POST", Description: "create"},
		{Name: "GET", Description: "read"},
		{Name: "DELETE", Description: "remove"},
	}, m)
}

func TestMethodSetIgnoresExtraDetailFields(t *testing.T) {
	raw := `{"GET":{"desc":"read","args":[{"name":"id"}],"output":"json"}}`

	var m models.MethodSet
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Len(t, m, 1)
	assert.Equal(t, "read", m[0].Description)
}

func TestMethodSetRejectsNonObject(t *testing.T) {
	var m models.MethodSet
	assert.Error(t, json.Unmarshal([]byte(`["GET"]`), &m))
}

func TestEndpointCatalogDecode(t *testing.T) {
	raw := `{"endpoints":[
		{"endpoint":"/api/system/reboot","methods":{"POST":{"desc":"Reboot"}}}
	]}`

	var catalog models.EndpointCatalog
	require.NoError(t, json.Unmarshal([]byte(raw), &catalog))
	require.Len(t, catalog.Endpoints, 1)
	assert.Equal(t, "/api/system/reboot", catalog.Endpoints[0].Path)
	require.Len(t, catalog.Endpoints[0].Methods, 1)
	assert.Equal(t, "POST", catalog.Endpoints[0].Methods[0].Name)
}

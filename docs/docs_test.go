package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/Finanzas-api/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Contains(t, doc.Paths, "/api/organizations")
	assert.Contains(t, doc.Paths["/api/bills/{id}/paid"], "patch")
	assert.Contains(t, doc.Paths["/api/categories/{id}/sub-categories"], "get")
	assert.Contains(t, doc.Paths["/api/banks/import"], "post")
}

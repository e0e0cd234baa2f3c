package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/restshape/internal/testutil"
	"github.com/erraggy/restshape/shapeerrors"
)

const resourcesYAML = `
basePath: /api/
methods:
  - method: get
    path: models/{id}
    description: Returns a model.
    responses:
      200:
        type: com.example.Model
        docs:
          id: The identifier.
      404: {}
  - method: POST
    path: /events
    request:
      sample:
        name: created
        count: 3
        tags: [a, b]
    responses:
      201:
        sample: {id: 7}
`

func TestParseYAML(t *testing.T) {
	res, err := Parse([]byte(resourcesYAML))
	require.NoError(t, err)

	assert.Equal(t, "/api/", res.BasePath)
	require.Len(t, res.Methods, 2)

	get := res.Methods[0]
	assert.Equal(t, "GET", get.HTTPMethod)
	assert.Equal(t, "/api/models/{id}", res.FullPath(get))
	assert.Equal(t, "Returns a model.", get.Description)
	assert.Equal(t, []int{200, 404}, get.Statuses())
	assert.Equal(t, "com.example.Model", get.Responses[200].TypeName)
	assert.Equal(t, map[string]string{"id": "The identifier."}, get.Responses[200].Docs)
	assert.Nil(t, get.Request)

	post := res.Methods[1]
	assert.Equal(t, "/api/events", res.FullPath(post))
	require.NotNil(t, post.Request)
	assert.Equal(t, map[string]any{"name": "created", "count": 3, "tags": []any{"a", "b"}}, post.Request.Sample)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"methods": [{
			"method": "put",
			"path": "/models",
			"request": {"type": "Lcom/example/Model;"},
			"responses": {"204": {}}
		}]
	}`)
	res, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, res.Methods, 1)

	m := res.Methods[0]
	assert.Equal(t, "PUT", m.HTTPMethod)
	assert.Equal(t, "/models", res.FullPath(m))
	assert.Equal(t, "Lcom/example/Model;", m.Request.TypeName)
	assert.Contains(t, m.Responses, 204)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"invalid yaml", "methods: [", "decoding resources"},
		{"invalid json", `{"methods": [}`, "decoding resources"},
		{"duplicate json member", `{"methods": [], "methods": []}`, "decoding resources"},
		{"missing method", "methods:\n  - path: /a\n", "missing method"},
		{"unknown method", "methods:\n  - method: FETCH\n    path: /a\n", `unknown method "FETCH"`},
		{"invalid status", "methods:\n  - method: GET\n    path: /a\n    responses:\n      42: {}\n", "invalid status 42"},
		{"empty entry", "methods:\n  - null\n", "methods[0]: empty entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, shapeerrors.ErrParse)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(resourcesYAML), 0600))

	res, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, res.Methods, 2)

	jsonPath := testutil.WriteTempJSON(t, &Resources{Methods: []*Method{{
		HTTPMethod: "DELETE",
		Path:       "/models/{id}",
		Responses:  map[int]*Body{204: {}},
	}}})
	res, err = LoadFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, res.Methods, 1)
	assert.Equal(t, []int{204}, res.Methods[0].Statuses())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shapeerrors.ErrParse)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFullPath(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"", "", "/"},
		{"/", "/", "/"},
		{"", "items", "/items"},
		{"api", "", "/api"},
		{"/api/", "/items/", "/api/items"},
	}
	for _, tt := range tests {
		r := &Resources{BasePath: tt.base}
		assert.Equal(t, tt.want, r.FullPath(&Method{Path: tt.path}), "base=%q path=%q", tt.base, tt.path)
	}
}

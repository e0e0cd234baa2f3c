package commands

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSample = `{"id":1,"tags":["a","b"],"owner":{"name":"x"}}`

func TestSetupSampleFlags(t *testing.T) {
	fs, flags := SetupSampleFlags()
	require.NoError(t, fs.Parse([]string{"--format", "yaml", "--naming", "fullpath", "sample.json"}))
	assert.Equal(t, FormatYAML, flags.Format)
	assert.Equal(t, "fullpath", flags.Naming)
	assert.Equal(t, "sample.json", fs.Arg(0))
}

func TestHandleSample_Args(t *testing.T) {
	assert.NoError(t, HandleSample([]string{"--help"}))
	assert.Error(t, HandleSample([]string{}))
	assert.Error(t, HandleSample([]string{"a.json", "b.json"}))
}

func TestHandleSample_Text(t *testing.T) {
	t.Setenv("RESTSHAPE_CONFIG", "")
	path := writeFile(t, "user.json", userSample)

	out, _ := captureOutput(t, func() {
		require.NoError(t, HandleSample([]string{path}))
	})
	assert.Contains(t, out, "Input:      "+path+"\n")
	assert.Contains(t, out, `"id":0.0`)
	assert.Contains(t, out, `"tags":["string"]`)
	assert.Contains(t, out, `Schema:     {"$ref":"#/definitions/JsonObject"}`)
	assert.Contains(t, out, "\nDefinitions:\n")
}

func TestHandleSample_StdinJSON(t *testing.T) {
	t.Setenv("RESTSHAPE_CONFIG", "")

	var out string
	withStdin(t, userSample, func() {
		out, _ = captureOutput(t, func() {
			require.NoError(t, HandleSample([]string{"--format", "json", StdinFilePath}))
		})
	})

	var report SampleReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Positive(t, report.ShapeCount)
	assert.Equal(t, "#/definitions/JsonObject", report.Schema.Ref)
	require.Contains(t, report.Definitions, "JsonObject")
	require.Contains(t, report.Definitions, "JsonObject_2")

	root := report.Definitions["JsonObject"]
	assert.Equal(t, "number", root.Properties["id"].Type)
	assert.Equal(t, "array", root.Properties["tags"].Type)
	assert.Equal(t, "string", root.Properties["tags"].Items.Type)
	assert.Equal(t, "#/definitions/JsonObject_2", root.Properties["owner"].Ref)
}

func TestHandleSample_ScalarAndArray(t *testing.T) {
	t.Setenv("RESTSHAPE_CONFIG", "")

	out, _ := captureOutput(t, func() {
		require.NoError(t, HandleSample([]string{writeFile(t, "n.json", "42")}))
	})
	assert.Contains(t, out, "Sample:     0.0\n")
	assert.Contains(t, out, `Schema:     {"type":"number"}`)

	out, _ = captureOutput(t, func() {
		require.NoError(t, HandleSample([]string{writeFile(t, "list.json", `[{"a":true}]`)}))
	})
	assert.Contains(t, out, `Schema:     {"type":"array","items":{"$ref":"#/definitions/JsonObject"}}`)
}

func TestHandleSample_Errors(t *testing.T) {
	t.Setenv("RESTSHAPE_CONFIG", "")

	err := HandleSample([]string{writeFile(t, "bad.json", `{"a":1,"a":2}`)})
	require.Error(t, err)

	t.Setenv("RESTSHAPE_MAX_SAMPLE_BYTES", "4")
	err = HandleSample([]string{writeFile(t, "big.json", userSample)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte limit")
}

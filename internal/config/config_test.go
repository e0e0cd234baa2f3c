package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/schema"
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restshape.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, slog.LevelWarn, c.Level())
	assert.Equal(t, typeid.DefaultVocabulary(), c.Vocabulary())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
naming: qualified
refPrefix: "#/components/schemas/"
syntheticName: Payload
collections: [com.example.Page]
envelopes: ["Lcom/example/Result<TT;>;"]
logLevel: debug
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "qualified", c.Naming)
	assert.Equal(t, "#/components/schemas/", c.RefPrefix)
	assert.Equal(t, "Payload", c.SyntheticName)
	assert.Equal(t, slog.LevelDebug, c.Level())
	assert.Equal(t, DefaultMaxSampleBytes, c.MaxSampleBytes)

	v := c.Vocabulary()
	assert.True(t, v.IsCollection("Lcom/example/Page<Ljava/lang/String;>;"))
	assert.True(t, v.IsEnvelope("Lcom/example/Result<Ljava/lang/String;>;"))
	assert.True(t, v.IsCollection("Ljava/util/List;"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shapeerrors.ErrConfig)

	_, err = Load(writeConfig(t, "naming: [unclosed"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shapeerrors.ErrParse)

	_, err = Load(writeConfig(t, "naming: camel"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shapeerrors.ErrConfig)
	assert.Contains(t, err.Error(), "naming")

	_, err = Load(writeConfig(t, "logLevel: loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logLevel")

	_, err = Load(writeConfig(t, "maxSampleBytes: -1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxSampleBytes")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RESTSHAPE_NAMING", "fullpath")
	t.Setenv("RESTSHAPE_NAME_TEMPLATE", "{{.Type}}Dto")
	t.Setenv("RESTSHAPE_SYNTHETIC_NAME", "Inferred")
	t.Setenv("RESTSHAPE_COLLECTIONS", "com.example.Page, ,com.example.Slice")
	t.Setenv("RESTSHAPE_LOG_LEVEL", "error")
	t.Setenv("RESTSHAPE_MAX_SAMPLE_BYTES", "512")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fullpath", c.Naming)
	assert.Equal(t, "{{.Type}}Dto", c.NameTemplate)
	assert.Equal(t, "Inferred", c.SyntheticName)
	assert.Equal(t, []string{"com.example.Page", "com.example.Slice"}, c.Collections)
	assert.Equal(t, slog.LevelError, c.Level())
	assert.Equal(t, 512, c.MaxSampleBytes)
}

func TestEnvListCopiesFallback(t *testing.T) {
	fallback := make([]string, 1, 4)
	fallback[0] = "com.example.Base"

	t.Setenv("RESTSHAPE_COLLECTIONS", "com.example.Page")
	first := envList("RESTSHAPE_COLLECTIONS", fallback)
	t.Setenv("RESTSHAPE_COLLECTIONS", "com.example.Slice")
	second := envList("RESTSHAPE_COLLECTIONS", fallback)

	assert.Equal(t, []string{"com.example.Base", "com.example.Page"}, first)
	assert.Equal(t, []string{"com.example.Base", "com.example.Slice"}, second)
	assert.Equal(t, []string{"com.example.Base"}, fallback)
}

func TestCacheSettings(t *testing.T) {
	c, err := Load(writeConfig(t, "cache:\n  enabled: true\n  maxSize: 3\n  ttl: 2m\n"))
	require.NoError(t, err)
	assert.Equal(t, CacheConfig{Enabled: true, MaxSize: 3, TTL: 2 * time.Minute}, c.Cache)

	t.Setenv("RESTSHAPE_CACHE_ENABLED", "false")
	t.Setenv("RESTSHAPE_CACHE_TTL", "30s")
	c, err = Load("")
	require.NoError(t, err)
	assert.False(t, c.Cache.Enabled)
	assert.Equal(t, 30*time.Second, c.Cache.TTL)

	t.Setenv("RESTSHAPE_CACHE_ENABLED", "maybe")
	t.Setenv("RESTSHAPE_CACHE_TTL", "soon")
	c = Default()
	c.ApplyEnv()
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, 15*time.Minute, c.Cache.TTL)

	_, err = Load(writeConfig(t, "cache:\n  enabled: true\n  maxSize: 0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shapeerrors.ErrConfig)
}

func TestApplyEnvInvalidKeepsValue(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, c *Config)
	}{
		{"RESTSHAPE_NAMING", "camel", func(t *testing.T, c *Config) { assert.Equal(t, "simple", c.Naming) }},
		{"RESTSHAPE_LOG_LEVEL", "loud", func(t *testing.T, c *Config) { assert.Equal(t, "warn", c.LogLevel) }},
		{"RESTSHAPE_MAX_SAMPLE_BYTES", "lots", func(t *testing.T, c *Config) { assert.Equal(t, DefaultMaxSampleBytes, c.MaxSampleBytes) }},
		{"RESTSHAPE_MAX_SAMPLE_BYTES", "-5", func(t *testing.T, c *Config) { assert.Equal(t, DefaultMaxSampleBytes, c.MaxSampleBytes) }},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			c := Default()
			c.ApplyEnv()
			tt.check(t, c)
		})
	}
}

func TestSchemaOptions(t *testing.T) {
	store := model.NewStore()
	id := typeid.Named("Lcom/example/Model;")
	store.Put(model.NewConcrete(id, map[string]model.Property{"id": {Type: typeid.Named(typeid.String)}}))

	c := Default()
	c.Naming = "qualified"
	c.RefPrefix = "#/components/schemas/"
	b, err := schema.New(store, c.SchemaOptions(logging.NopLogger{})...)
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/ComExampleModel", b.Ref(id).Ref)

	c.NameTemplate = "{{.Type}}Dto"
	b, err = schema.New(store, c.SchemaOptions(nil)...)
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/ModelDto", b.Ref(id).Ref)

	c.NameTemplate = "{{.Type"
	_, err = schema.New(store, c.SchemaOptions(nil)...)
	assert.ErrorIs(t, err, shapeerrors.ErrConfig)
}

func TestAnalyzerOptions(t *testing.T) {
	c := Default()
	c.Collections = []string{"com.example.Page"}
	assert.Len(t, c.AnalyzerOptions(nil), 2)
}

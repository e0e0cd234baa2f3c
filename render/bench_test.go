package render

import (
	"testing"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/internal/testutil"
	"github.com/erraggy/restshape/model"
)

func BenchmarkSampleRecursive(b *testing.B) {
	store := model.NewStore()
	id := analyzer.NewStatic(store, testutil.NewRecursiveTable()).Analyze(testutil.Node, nil)
	s := NewSample(store)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.RenderIdentity(id)
	}
}

func BenchmarkDefinitionModel(b *testing.B) {
	store := model.NewStore()
	id := analyzer.NewStatic(store, testutil.NewModelTable()).Analyze(testutil.Model, map[string]string{"id": "identifier"})
	d := NewDefinition(store)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.RenderIdentity(id)
	}
}

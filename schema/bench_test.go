package schema

import (
	"testing"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/internal/testutil"
	"github.com/erraggy/restshape/model"
)

func BenchmarkBuilderRefRecursive(b *testing.B) {
	store := model.NewStore()
	id := analyzer.NewStatic(store, testutil.NewRecursiveTable()).Analyze(testutil.Node, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder, err := New(store)
		if err != nil {
			b.Fatal(err)
		}
		_ = builder.Ref(id)
	}
}

package resource

import (
	"context"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/typeid"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger for the interpreter and both analyzers.
// A nil logger disables logging.
func WithLogger(l logging.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logging.OrNop(l)
	}
}

// WithAnalyzerOptions passes options to both analyzers.
func WithAnalyzerOptions(opts ...analyzer.Option) Option {
	return func(i *Interpreter) {
		i.analyzerOpts = append(i.analyzerOpts, opts...)
	}
}

// Interpreter resolves body types of resource methods. Declared types go to
// the static analyzer, samples to the dynamic analyzer; both share one store.
type Interpreter struct {
	store        *model.Store
	static       *analyzer.Static
	dynamic      *analyzer.Dynamic
	logger       logging.Logger
	analyzerOpts []analyzer.Option
}

// NewInterpreter returns an Interpreter writing into store and reading class
// metadata from table. A nil store is replaced by a new one.
func NewInterpreter(store *model.Store, table *classmeta.Table, opts ...Option) *Interpreter {
	if store == nil {
		store = model.NewStore()
	}
	i := &Interpreter{store: store, logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(i)
	}

	aopts := append([]analyzer.Option{analyzer.WithLogger(i.logger)}, i.analyzerOpts...)
	i.static = analyzer.NewStatic(store, table, aopts...)
	i.dynamic = analyzer.NewDynamic(store, aopts...)
	return i
}

// Store returns the store shared by both analyzers.
func (i *Interpreter) Store() *model.Store {
	return i.store
}

// Interpret resolves every body in res. It checks ctx between methods and
// returns ctx.Err() when cancelled; bodies already resolved keep their type.
func (i *Interpreter) Interpret(ctx context.Context, res *Resources) error {
	if res == nil {
		return nil
	}
	for _, m := range res.Methods {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m == nil {
			continue
		}

		log := i.logger.With("method", m.HTTPMethod, "path", res.FullPath(m))
		if m.Request != nil {
			i.resolve(log, m.Request)
		}
		for _, code := range m.Statuses() {
			if body := m.Responses[code]; body != nil {
				i.resolve(log.With("status", code), body)
			}
		}
	}
	return nil
}

func (i *Interpreter) resolve(log logging.Logger, b *Body) {
	switch {
	case b.TypeName != "":
		if b.Sample != nil {
			log.Debug("body declares a type and a sample, using the type", "type", b.TypeName)
		}
		b.Type = i.static.Analyze(b.TypeName, b.Docs)
	case b.Sample != nil:
		b.Type = i.dynamic.Analyze(b.Sample)
	default:
		log.Debug("body has neither type nor sample")
		b.Type = typeid.Named(typeid.Object)
	}
	b.resolved = true
}

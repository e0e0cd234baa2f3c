package schema

import (
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/typeid"
)

// DefaultRefPrefix is the path prepended to definition names in references.
const DefaultRefPrefix = "#/definitions/"

// Option configures a Builder.
type Option func(*config)

type config struct {
	strategy      NamingStrategy
	nameTemplate  string
	nameFunc      NameFunc
	refPrefix     string
	syntheticName string
	logger        logging.Logger
}

func defaultConfig() *config {
	return &config{
		strategy:      NamingSimple,
		refPrefix:     DefaultRefPrefix,
		syntheticName: typeid.SyntheticName,
		logger:        logging.NopLogger{},
	}
}

// WithNaming sets the built-in naming strategy.
func WithNaming(s NamingStrategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}

// WithNameTemplate derives base names from a text/template executed against
// a NameContext, e.g. "{{.Type}}Dto" or "{{pascal .Package}}{{.Type}}".
// It takes precedence over WithNaming. Parse errors are reported by New.
func WithNameTemplate(tmpl string) Option {
	return func(cfg *config) {
		cfg.nameTemplate = tmpl
	}
}

// WithNameFunc derives base names with fn. It takes precedence over both
// WithNameTemplate and WithNaming.
func WithNameFunc(fn NameFunc) Option {
	return func(cfg *config) {
		cfg.nameFunc = fn
	}
}

// WithRefPrefix sets the reference path prefix. The default is
// DefaultRefPrefix.
func WithRefPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.refPrefix = prefix
	}
}

// WithSyntheticName sets the base name given to inferred shapes.
// Empty names are ignored.
func WithSyntheticName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.syntheticName = name
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l logging.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logging.OrNop(l)
	}
}

package analyzer

import (
	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/typeid"
)

// Option configures an analyzer.
type Option func(*config)

type config struct {
	vocabulary typeid.Vocabulary
	required   RequiredFunc
	logger     logging.Logger
}

func defaultConfig() *config {
	return &config{
		vocabulary: typeid.DefaultVocabulary(),
		required:   DeclaredRequired,
		logger:     logging.NopLogger{},
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVocabulary sets the collection and envelope types recognized during
// static analysis.
func WithVocabulary(v typeid.Vocabulary) Option {
	return func(cfg *config) {
		cfg.vocabulary = v
	}
}

// WithRequiredPredicate sets the predicate deciding whether a member is
// required. The default is DeclaredRequired.
func WithRequiredPredicate(fn RequiredFunc) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.required = fn
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l logging.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logging.OrNop(l)
	}
}

// Member is a field or getter bound to a property.
// Exactly one of Field and Method is set.
type Member struct {
	Owner  *classmeta.Class
	Field  *classmeta.Field
	Method *classmeta.Method
}

// Name returns the property name the member binds to.
func (m Member) Name() string {
	if m.Field != nil {
		return m.Field.Name
	}
	if m.Method != nil {
		return classmeta.PropertyName(m.Method.Name)
	}
	return ""
}

// declaredType returns the field type or getter return type.
func (m Member) declaredType() string {
	if m.Field != nil {
		return m.Field.Type
	}
	if m.Method != nil {
		return m.Method.ReturnType
	}
	return typeid.Object
}

// length returns the declared maximum length, 0 when unbounded.
func (m Member) length() int {
	switch {
	case m.Field != nil:
		return m.Field.Length
	case m.Method != nil:
		return m.Method.Length
	}
	return 0
}

// RequiredFunc reports whether a member is required.
type RequiredFunc func(Member) bool

// DeclaredRequired reads the required flag recorded in the metadata.
func DeclaredRequired(m Member) bool {
	switch {
	case m.Field != nil:
		return m.Field.Required
	case m.Method != nil:
		return m.Method.Required
	}
	return false
}

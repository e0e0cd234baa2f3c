package shapeerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the structured errors through errors.Is.
var (
	ErrParse     = errors.New("parse error")
	ErrConfig    = errors.New("configuration error")
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate declaration")
)

// ParseError reports an input that could not be decoded: a metadata table,
// a resources description, a configuration file, or a JSON sample.
type ParseError struct {
	// Path names the input file; empty for inline input.
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	head := "parse error"
	if e.Path != "" {
		head += " in " + e.Path
	}
	return describe(head, e.Message, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConfigError reports an unusable setting.
type ConfigError struct {
	// Option is the setting name as it appears in the configuration file.
	Option string
	// Value is the rejected value, if any.
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	head := "configuration error"
	if e.Option != "" {
		head += " for " + e.Option
	}
	if e.Value != nil {
		head += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return describe(head, e.Message, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// Is matches ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// LookupError reports a class that is missing from, or declared twice in, a
// metadata table.
type LookupError struct {
	// Kind is the kind of entity, such as "class".
	Kind        string
	Name        string
	IsDuplicate bool
}

func (e *LookupError) Error() string {
	what := ErrNotFound.Error()
	if e.IsDuplicate {
		what = ErrDuplicate.Error()
	}
	if e.Kind != "" {
		what = e.Kind + " " + what
	}
	return describe(what, e.Name, nil)
}

// Is matches ErrDuplicate for duplicates and ErrNotFound otherwise.
func (e *LookupError) Is(target error) bool {
	if e.IsDuplicate {
		return target == ErrDuplicate
	}
	return target == ErrNotFound
}

// describe joins the non-empty parts with ": ".
func describe(head, message string, cause error) string {
	parts := []string{head}
	if message != "" {
		parts = append(parts, message)
	}
	if cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

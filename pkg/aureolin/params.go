package aureolin

import (
	"sort"
	"sync/atomic"
)

// Source identifies which request facet a handler argument is extracted from.
type Source int

const (
	SourceBody Source = iota
	SourceParam
	SourceQuery
	SourceHeader
	SourceContext
	SourceCustom
)

// String returns the source name as used in log output and error messages.
func (s Source) String() string {
	switch s {
	case SourceBody:
		return "body"
	case SourceParam:
		return "param"
	case SourceQuery:
		return "query"
	case SourceHeader:
		return "header"
	case SourceContext:
		return "context"
	case SourceCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Extractor produces a handler argument from the request context. Meta
// carries the binding's source metadata (a parameter or header name).
type Extractor func(c Context, meta string) (any, error)

// ParameterBinding maps one positional handler argument to a request facet.
// Meta names the path parameter, query parameter or header to read; Extract
// is set for SourceCustom bindings only.
type ParameterBinding struct {
	ControllerKey string
	HandlerName   string
	Index         int
	Source        Source
	Meta          string
	Extract       Extractor
}

// ParameterStore holds parameter bindings for all handlers. Bindings are
// recorded in declaration order and sorted by argument index on read.
type ParameterStore struct {
	bindings *Registry[ParameterBinding]
	frozen   atomic.Bool
}

// NewParameterStore creates an empty parameter store.
func NewParameterStore() *ParameterStore {
	return &ParameterStore{bindings: NewRegistry[ParameterBinding]()}
}

// RegisterBinding records a binding. Argument indices must be unique per
// (controller key, handler name) pair but need not be contiguous.
func (s *ParameterStore) RegisterBinding(b ParameterBinding) error {
	if s.frozen.Load() {
		return ErrFrozen
	}
	_, dup := s.bindings.FindBy(func(existing ParameterBinding) bool {
		return existing.ControllerKey == b.ControllerKey &&
			existing.HandlerName == b.HandlerName &&
			existing.Index == b.Index
	})
	if dup {
		return &DuplicateBindingError{Key: b.ControllerKey, HandlerName: b.HandlerName, Index: b.Index}
	}
	s.bindings.Add(b)
	return nil
}

// Bindings returns the bindings for a handler sorted ascending by argument
// index. A handler with no bindings yields an empty slice, not an error.
func (s *ParameterStore) Bindings(controllerKey, handlerName string) []ParameterBinding {
	matched := make([]ParameterBinding, 0)
	for _, b := range s.bindings.Items() {
		if b.ControllerKey == controllerKey && b.HandlerName == handlerName {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Index < matched[j].Index
	})
	return matched
}

// Freeze makes the store read-only. Called once after route assembly.
func (s *ParameterStore) Freeze() {
	s.frozen.Store(true)
}

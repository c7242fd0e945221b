// Package filterx keeps the state of search and report filters and applies
// them to in-memory data.
//
// A Service tracks current values against the initial values they reset
// to, and round-trips them through URL query parameters. Apply, Search,
// Between, SortText and Paginate work on plain slices.
package filterx

import (
	"reflect"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Filters maps a filter name to its value. Supported values are strings,
// booleans, numbers, string slices and nil.
type Filters map[string]any

// Clone returns a copy that shares no slices with f.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if s, ok := v.([]string); ok {
		return append([]string{}, s...)
	}
	return v
}

// ChangeFunc receives a copy of the filters after every change.
type ChangeFunc func(Filters)

// Option configures a Service.
type Option func(*Service)

// OnChange registers fn to be called after every change.
func OnChange(fn ChangeFunc) Option {
	return func(s *Service) {
		s.onChange = fn
	}
}

// Service holds the current filter values. Safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	current  Filters
	initial  Filters
	onChange ChangeFunc
}

// NewService starts with initial as both the current and the reset state.
func NewService(initial Filters, opts ...Option) *Service {
	if initial == nil {
		initial = Filters{}
	}
	s := &Service{
		current: initial.Clone(),
		initial: initial.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filters returns a copy of the current values.
func (s *Service) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Initial returns a copy of the initial values.
func (s *Service) Initial() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initial.Clone()
}

// SetFilters replaces the whole state.
func (s *Service) SetFilters(f Filters) {
	s.update(func() {
		s.current = f.Clone()
	})
}

// Set changes one filter.
func (s *Service) Set(key string, value any) {
	s.update(func() {
		s.current[key] = cloneValue(value)
	})
}

// Get returns one filter value.
func (s *Service) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.current[key]
	return cloneValue(v), ok
}

// Reset restores every filter to its initial value.
func (s *Service) Reset() {
	s.update(func() {
		s.current = s.initial.Clone()
	})
}

// ResetKey restores one filter to its initial value.
func (s *Service) ResetKey(key string) {
	s.update(func() {
		if v, ok := s.initial[key]; ok {
			s.current[key] = cloneValue(v)
			return
		}
		delete(s.current, key)
	})
}

// Clear empties every filter: slices become empty, strings become "" and
// anything else becomes nil. Unlike Reset it ignores the initial values.
func (s *Service) Clear() {
	s.update(func() {
		cleared := make(Filters, len(s.current))
		for k, v := range s.current {
			cleared[k] = emptyLike(v)
		}
		s.current = cleared
	})
}

func emptyLike(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(rv.Type(), 0, 0).Interface()
	case reflect.String:
		return reflect.Zero(rv.Type()).Interface()
	default:
		return nil
	}
}

// IsActive reports whether key holds a non-empty value that differs from
// its initial value.
func (s *Service) IsActive(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isActive(key)
}

func (s *Service) isActive(key string) bool {
	v := s.current[key]
	if isEmpty(v) {
		return false
	}
	return !cmp.Equal(v, s.initial[key])
}

// HasActive reports whether any filter is active.
func (s *Service) HasActive() bool {
	return s.ActiveCount() > 0
}

// ActiveCount returns the number of active filters.
func (s *Service) ActiveCount() int {
	return len(s.ActiveKeys())
}

// ActiveKeys returns the active filter names in sorted order.
func (s *Service) ActiveKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.current))
	for k := range s.current {
		if s.isActive(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// update runs fn under the write lock, then notifies outside it.
func (s *Service) update(fn func()) {
	s.updateIf(func() bool {
		fn()
		return true
	})
}

// updateIf is update for changes that may be abandoned; listeners are only
// notified when fn reports true.
func (s *Service) updateIf(fn func() bool) bool {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return false
	}
	snapshot := s.current.Clone()
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
	return true
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

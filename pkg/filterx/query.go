package filterx

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/Abraxas-365/formkit/pkg/errx"
)

var (
	ErrRegistry = errx.NewRegistry("FILTER")

	CodeInvalidQuery  = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, "query value does not match the filter type")
	CodeInvalidTarget = ErrRegistry.Register("INVALID_TARGET", errx.TypeValidation, "filters cannot be decoded into the target")
)

var (
	// ErrInvalidQuery is returned by ParseQuery for values of the wrong type.
	ErrInvalidQuery = CodeInvalidQuery.Sentinel()
	// ErrInvalidTarget is returned by Decode.
	ErrInvalidTarget = CodeInvalidTarget.Sentinel()
)

// Query encodes every non-empty filter. Slices are joined with commas.
func (s *Service) Query() url.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := url.Values{}
	for k, v := range s.current {
		if isEmpty(v) {
			continue
		}
		q.Set(k, valueToString(v))
	}
	return q
}

func valueToString(v any) string {
	if s, ok := v.([]string); ok {
		return strings.Join(s, ",")
	}
	return fmt.Sprint(v)
}

// ParseQuery applies q to the filters that exist in the initial state,
// converting each value to the type of its initial value. Unknown keys are
// ignored. If any value fails to convert nothing is changed.
func (s *Service) ParseQuery(q url.Values) error {
	var parseErr error
	changed := s.updateIf(func() bool {
		next := s.current.Clone()
		for key, values := range q {
			initial, known := s.initial[key]
			if !known {
				continue
			}
			raw := ""
			if len(values) > 0 {
				raw = values[0]
			}
			v, err := parseValue(raw, initial)
			if err != nil {
				parseErr = ErrRegistry.NewWithCause(CodeInvalidQuery, err).
					WithDetail("key", key).
					WithDetail("value", raw)
				return false
			}
			next[key] = v
		}
		s.current = next
		return true
	})
	if !changed {
		return parseErr
	}
	return nil
}

// parseValue converts raw to the type of like. An empty raw yields an
// empty slice for slice filters and nil otherwise.
func parseValue(raw string, like any) (any, error) {
	if _, isSlice := like.([]string); isSlice {
		if raw == "" {
			return []string{}, nil
		}
		return strings.Split(raw, ","), nil
	}
	if raw == "" {
		return nil, nil
	}
	if like == nil {
		return raw, nil
	}

	rv := reflect.ValueOf(like)
	switch rv.Kind() {
	case reflect.Bool:
		return raw == "true", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(rv.Type()).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, rv.Type().Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(rv.Type()).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, rv.Type().Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(rv.Type()).Interface(), nil
	default:
		return raw, nil
	}
}

// Package ptrx converts between values and pointers for optional form
// fields, where nil means "not provided".
package ptrx

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Slice returns pointers to copies of every element of vs.
func Slice[T any](vs []T) []*T {
	ps := make([]*T, len(vs))
	for i, v := range vs {
		ps[i] = To(v)
	}
	return ps
}

// Value returns the value of the pointer passed in or the zero value if the pointer is nil.
func Value[T any](v *T) T {
	if v != nil {
		return *v
	}
	var zero T
	return zero
}

// ValueOr returns the value of the pointer passed in or the default value if the pointer is nil.
func ValueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// NonZero returns nil for the zero value of T and a pointer otherwise, so
// blank inputs can be stored as "not provided".
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// Values dereferences every element of ps, skipping nils.
func Values[T any](ps []*T) []T {
	out := make([]T, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

package filterx

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply returns the items that satisfy every predicate, keeping their
// order. With no predicates it returns a copy of items.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, p := range preds {
			if !p(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// Search keeps the items where any text returned by fields contains query,
// ignoring case. An empty query matches everything.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return Apply(items)
	}
	return Apply(items, func(item T) bool {
		for _, s := range fields(item) {
			if strings.Contains(fold.String(s), q) {
				return true
			}
		}
		return false
	})
}

// Between keeps the items whose time falls within [from, to], both ends
// included. A zero from or to leaves that side open.
func Between[T any](items []T, from, to time.Time, at func(T) time.Time) []T {
	return Apply(items, func(item T) bool {
		t := at(item)
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && t.After(to) {
			return false
		}
		return true
	})
}

// SortText sorts a copy of items by the collation order of tag. Items for
// which key reports false sort last, in their original order.
func SortText[T any](items []T, tag language.Tag, desc bool, key func(T) (string, bool)) []T {
	out := slices.Clone(items)
	c := collate.New(tag)
	slices.SortStableFunc(out, func(a, b T) int {
		sa, okA := key(a)
		sb, okB := key(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		n := c.CompareString(sa, sb)
		if desc {
			return -n
		}
		return n
	})
	return out
}

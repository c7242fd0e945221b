// Package formatx renders numbers, dates, Brazilian documents and text for
// display. Locale-sensitive output goes through golang.org/x/text.
package formatx

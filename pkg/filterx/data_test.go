package filterx

import (
	"testing"
	"time"

	"github.com/Abraxas-365/formkit/pkg/ptrx"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type row struct {
	ID     int
	Name   string
	Status string
	At     time.Time
}

func rows() []row {
	day := func(d string) time.Time {
		t, _ := time.Parse(time.DateOnly, d)
		return t
	}
	return []row{
		{1, "João Silva", "active", day("2024-01-01")},
		{2, "maria souza", "inactive", day("2024-01-31")},
		{3, "Ana Lima", "active", day("2024-03-15")},
	}
}

func ids(rs []row) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestApply(t *testing.T) {
	active := func(r row) bool { return r.Status == "active" }

	assert.Equal(t, []int{1, 3}, ids(Apply(rows(), active)))
	assert.Equal(t, []int{1, 2, 3}, ids(Apply(rows())))
	assert.Empty(t, Apply([]row{}, active))
}

func TestSearch(t *testing.T) {
	fields := func(r row) []string { return []string{r.Name, r.Status} }

	assert.Equal(t, []int{2}, ids(Search(rows(), "MARIA", fields)))
	assert.Equal(t, []int{1, 2}, ids(Search(rows(), "s", func(r row) []string { return []string{r.Name} })))
	assert.Equal(t, []int{1, 2, 3}, ids(Search(rows(), "  ", fields)))
	assert.Empty(t, Search(rows(), "nobody", fields))
}

func TestBetween(t *testing.T) {
	at := func(r row) time.Time { return r.At }
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []int{1, 2}, ids(Between(rows(), from, to, at)), "bounds are inclusive")
	assert.Equal(t, []int{2, 3}, ids(Between(rows(), to, time.Time{}, at)))
}

func TestSortText(t *testing.T) {
	names := []*string{ptrx.To("Charlie"), nil, ptrx.To("álvaro"), ptrx.To("Bob")}
	key := func(s *string) (string, bool) {
		if s == nil {
			return "", false
		}
		return *s, true
	}

	asc := SortText(names, language.BrazilianPortuguese, false, key)
	assert.Equal(t, []string{"álvaro", "Bob", "Charlie"}, ptrx.Values(asc[:3]))
	assert.Nil(t, asc[3], "missing values sort last")

	desc := SortText(names, language.BrazilianPortuguese, true, key)
	assert.Equal(t, []string{"Charlie", "Bob", "álvaro"}, ptrx.Values(desc[:3]))
	assert.Nil(t, desc[3])

	assert.Equal(t, "Charlie", *names[0], "input is not modified")
}


func TestPaginate(t *testing.T) {
	data := make([]int, 25)
	for i := range data {
		data[i] = i + 1
	}

	first := Paginate(data, 1, 10)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 1, first.Items[0])
	assert.Equal(t, 10, first.Items[9])
	assert.Equal(t, Page{Number: 1, Size: 10, Total: 25, Pages: 3}, first.Page)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	last := Paginate(data, 3, 10)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, last.Items)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	beyond := Paginate(data[:10], 3, 10)
	assert.Empty(t, beyond.Items)
	assert.True(t, beyond.Empty)

	clamped := Paginate(data, 0, 0)
	assert.Equal(t, []int{1}, clamped.Items)
	assert.Equal(t, 25, clamped.Page.Pages)
}

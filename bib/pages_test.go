package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagesRangeSeparatorVariants(t *testing.T) {
	want := []PagesEntry{{
		Kind:  PagesRange,
		First: Page{Kind: PageNumeric, Number: 2},
		Last:  Page{Kind: PageNumeric, Number: 4},
	}}
	for _, in := range []string{"2-4", "2--4", "2---4", "2 - 4", "2–4", "2—4"} {
		assert.Equal(t, want, ParsePages(in), "input %q", in)
	}
}

func TestParsePagesSingle(t *testing.T) {
	assert.Equal(t, []PagesEntry{{Kind: PagesSingle, First: Page{Kind: PageNumeric, Number: 189}}}, ParsePages("189"))
}

func TestParsePagesMultipleEntries(t *testing.T) {
	got := ParsePages("1-5, 8, 10-12")
	assert.Len(t, got, 3)
	assert.Equal(t, PagesRange, got[0].Kind)
	assert.Equal(t, PagesSingle, got[1].Kind)
	assert.Equal(t, PagesRange, got[2].Kind)
}

func TestParsePagesLiteral(t *testing.T) {
	got := ParsePages("xiv-xvi")
	assert.Equal(t, []PagesEntry{{
		Kind:  PagesRange,
		First: Page{Kind: PageLiteral, Text: "xiv"},
		Last:  Page{Kind: PageLiteral, Text: "xvi"},
	}}, got)
}

func TestParsePageTotal(t *testing.T) {
	n, err := ParsePageTotal("189")
	assert.NoError(t, err)
	assert.Equal(t, uint32(189), n)

	_, err = ParsePageTotal("many")
	assert.Error(t, err)
}

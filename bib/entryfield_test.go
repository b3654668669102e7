package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceFieldUnknownName(t *testing.T) {
	f, err := CoerceField("zzzqux", "whatever", Options{})
	require.NoError(t, err)
	assert.Equal(t, Field{Kind: OtherField, OtherName: "zzzqux", Value: ValueAbsent}, f)
	assert.Equal(t, "zzzqux", f.Name())
}

func TestCoerceFieldEntrySubtypeKeepsRawText(t *testing.T) {
	f, err := CoerceField("entrysubtype", "workshop", Options{})
	require.NoError(t, err)
	assert.Equal(t, Field{Kind: FieldEntrySubtype, Value: ValueString, Text: "workshop"}, f)
}

func TestCoerceFieldBookTitleAliasesToBookSubtitle(t *testing.T) {
	f, err := CoerceField("booktitle", "Proceedings of Something", Options{})
	require.NoError(t, err)
	assert.Equal(t, FieldBookSubtitle, f.Kind)
	assert.Equal(t, "Proceedings of Something", f.Text)
	assert.Equal(t, "booksubtitle", f.Name())
}

func TestCoerceFieldPlainString(t *testing.T) {
	f, err := CoerceField("publisher", "O'Reilly", Options{})
	require.NoError(t, err)
	assert.Equal(t, Field{Kind: FieldPublisher, Value: ValueString, Text: "O'Reilly"}, f)
}

func TestCoerceFieldInvalidYearPropagatesError(t *testing.T) {
	_, err := CoerceField("year", "not-a-year", Options{})
	require.Error(t, err)
	var yearErr *InvalidYearError
	require.ErrorAs(t, err, &yearErr)
}

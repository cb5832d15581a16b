package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-tcf1/filter"
)

func TestParseComparisons(t *testing.T) {
	cases := []struct {
		input string
		want  filter.Expr
	}{
		{
			"cmp_id == 7",
			filter.OpExpr{Field: filter.FieldCmpID, Op: filter.OpEq, Value: filter.Int(7)},
		},
		{
			"version >= 2",
			filter.OpExpr{Field: filter.FieldVersion, Op: filter.OpGe, Value: filter.Int(2)},
		},
		{
			"created < 15100821554",
			filter.OpExpr{Field: filter.FieldCreated, Op: filter.OpLt, Value: filter.Int(15100821554)},
		},
		{
			`consent_language != "de"`,
			filter.OpExpr{Field: filter.FieldConsentLanguage, Op: filter.OpNe, Value: filter.Str("de")},
		},
		{
			"1 in purposes",
			filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpIn, Value: filter.Int(1)},
		},
		{
			"9 not in consents",
			filter.OpExpr{Field: filter.FieldConsents, Op: filter.OpNotIn, Value: filter.Int(9)},
		},
		{
			"max_vendor_id == {1, 2, 3}",
			filter.OpExpr{Field: filter.FieldMaxVendorID, Op: filter.OpEq, Value: filter.Set(1, 2, 3)},
		},
	}
	for _, c := range cases {
		got, err := filter.Parse(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func TestParsePrecedence(t *testing.T) {
	// not binds tighter than and, which binds tighter than or.
	got, err := filter.Parse("not 1 in purposes and cmp_id == 7 or version == 2")
	require.NoError(t, err)

	want := filter.OrExpr{
		Left: filter.AndExpr{
			Left: filter.NotExpr{
				Expr: filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpIn, Value: filter.Int(1)},
			},
			Right: filter.OpExpr{Field: filter.FieldCmpID, Op: filter.OpEq, Value: filter.Int(7)},
		},
		Right: filter.OpExpr{Field: filter.FieldVersion, Op: filter.OpEq, Value: filter.Int(2)},
	}
	assert.Equal(t, want, got)
}

func TestParseParens(t *testing.T) {
	got, err := filter.Parse("cmp_id == 7 and (1 in purposes or 4 in purposes)")
	require.NoError(t, err)

	want := filter.AndExpr{
		Left: filter.OpExpr{Field: filter.FieldCmpID, Op: filter.OpEq, Value: filter.Int(7)},
		Right: filter.OrExpr{
			Left:  filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpIn, Value: filter.Int(1)},
			Right: filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpIn, Value: filter.Int(4)},
		},
	}
	assert.Equal(t, want, got)
}

func TestParseEmptySet(t *testing.T) {
	got, err := filter.Parse("cmp_id == {}")
	require.NoError(t, err)
	assert.Equal(t, filter.OpExpr{Field: filter.FieldCmpID, Op: filter.OpEq, Value: filter.Set()}, got)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		pos   int
	}{
		{"cmp_id = 7", 7},
		{"cmp_id == ", 10},
		{"1 in nonsense", 5},
		{"nonsense == 1", 0},
		{"(version == 1", 13},
		{"version == 1 extra", 13},
		{"cmp_id == 7 and", 15},
		{`consent_language == "en`, 20},
		{"9 not consents", 6},
		{"cmp_id == {1 2}", 13},
		{"cmp_id ? 7", 7},
		{"", 0},
	}
	for _, c := range cases {
		_, err := filter.Parse(c.input)
		var parseErr *filter.ParseError
		require.ErrorAs(t, err, &parseErr, c.input)
		assert.Equal(t, c.pos, parseErr.Pos, c.input)
	}
}

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/go-tcf1/api"
	"github.com/prebid/go-tcf1/filter"
	"github.com/prebid/go-tcf1/vendorconsent"
)

// canonicalRecord decodes the consent string granting purposes 1-3 and
// every vendor up to 2011 except vendor 9.
func canonicalRecord(t *testing.T) api.VendorConsents {
	t.Helper()
	consent, err := vendorconsent.ParseString("BOEFEAyOEFEAyAHABDENAI4AAAB9vABAASA")
	require.NoError(t, err)
	return consent
}

func evalString(t *testing.T, input string, consent api.VendorConsents) bool {
	t.Helper()
	expr, err := filter.Parse(input)
	require.NoError(t, err, input)
	matched, err := filter.Evaluate(expr, consent)
	require.NoError(t, err, input)
	return matched
}

func TestEvaluateIntegerComparisons(t *testing.T) {
	consent := canonicalRecord(t)
	cases := map[string]bool{
		"cmp_id == 7":                 true,
		"cmp_id != 7":                 false,
		"version >= 2":                false,
		"version == 1":                true,
		"cmp_version <= 1":            true,
		"consent_screen > 2":          true,
		"consent_screen < 3":          false,
		"vendor_list_version == 8":    true,
		"max_vendor_id == 2011":       true,
		"created == 15100821554":      true,
		"created > 15100821553":       true,
		"last_updated < 15100821555":  true,
		"last_updated != 15100821554": false,
	}
	for input, want := range cases {
		assert.Equal(t, want, evalString(t, input, consent), input)
	}
}

func TestEvaluateStringComparisons(t *testing.T) {
	consent := canonicalRecord(t)
	assert.True(t, evalString(t, `consent_language == "en"`, consent))
	assert.False(t, evalString(t, `consent_language == "de"`, consent))
	assert.True(t, evalString(t, `consent_language != "de"`, consent))
}

func TestEvaluateSetMembership(t *testing.T) {
	consent := canonicalRecord(t)
	cases := map[string]bool{
		"1 in purposes":        true,
		"4 in purposes":        false,
		"4 not in purposes":    true,
		"9 not in consents":    true,
		"9 in consents":        false,
		"10 in consents":       true,
		"2010 in consents":     true,
		"0 in consents":        false,
		"0 not in consents":    true,
		"3000 not in consents": true,
	}
	for input, want := range cases {
		assert.Equal(t, want, evalString(t, input, consent), input)
	}
}

func TestEvaluateComposition(t *testing.T) {
	consent := canonicalRecord(t)
	input := "version == 1 and (1 in purposes or 4 in purposes) and not (9 in consents)"
	assert.True(t, evalString(t, input, consent))
}

func TestEvaluateDoubleNegation(t *testing.T) {
	consent := canonicalRecord(t)
	for _, input := range []string{"cmp_id == 7", "4 in purposes", `consent_language == "en"`} {
		expr, err := filter.Parse(input)
		require.NoError(t, err)

		direct, err := filter.Evaluate(expr, consent)
		require.NoError(t, err)
		doubled, err := filter.Evaluate(filter.NotExpr{Expr: filter.NotExpr{Expr: expr}}, consent)
		require.NoError(t, err)
		assert.Equal(t, direct, doubled, input)
	}
}

func TestEvaluateDistribution(t *testing.T) {
	// e and (a or b) == (e and a) or (e and b)
	consent := canonicalRecord(t)
	exprs := []string{"version == 1", "version == 2", "1 in purposes", "4 in purposes"}
	for _, e := range exprs {
		for _, a := range exprs {
			for _, b := range exprs {
				ee, err := filter.Parse(e)
				require.NoError(t, err)
				ea, err := filter.Parse(a)
				require.NoError(t, err)
				eb, err := filter.Parse(b)
				require.NoError(t, err)

				left := filter.AndExpr{Left: ee, Right: filter.OrExpr{Left: ea, Right: eb}}
				right := filter.OrExpr{
					Left:  filter.AndExpr{Left: ee, Right: ea},
					Right: filter.AndExpr{Left: ee, Right: eb},
				}
				lv, err := filter.Evaluate(left, consent)
				require.NoError(t, err)
				rv, err := filter.Evaluate(right, consent)
				require.NoError(t, err)
				assert.Equal(t, lv, rv, "%s and (%s or %s)", e, a, b)
			}
		}
	}
}

func TestEvaluateTypeErrors(t *testing.T) {
	consent := canonicalRecord(t)
	exprs := []filter.Expr{
		// in on an integer field
		filter.OpExpr{Field: filter.FieldVersion, Op: filter.OpIn, Value: filter.Int(1)},
		// ordering on a set field
		filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpGt, Value: filter.Int(1)},
		// integer field against a string literal
		filter.OpExpr{Field: filter.FieldCmpID, Op: filter.OpEq, Value: filter.Str("7")},
		// string field against an integer literal
		filter.OpExpr{Field: filter.FieldConsentLanguage, Op: filter.OpEq, Value: filter.Int(1)},
		// set membership with a set literal on the right
		filter.OpExpr{Field: filter.FieldPurposes, Op: filter.OpIn, Value: filter.Set(1, 2)},
		// ordering on strings
		filter.OpExpr{Field: filter.FieldConsentLanguage, Op: filter.OpLt, Value: filter.Str("zz")},
	}
	for _, e := range exprs {
		_, err := filter.Evaluate(e, consent)
		var typeErr *filter.TypeError
		assert.ErrorAs(t, err, &typeErr, "%+v", e)
	}
}

func TestEvaluateTypeErrorFromParsedSetLiteral(t *testing.T) {
	// A set literal parses but has no defined comparison against an
	// integer field.
	consent := canonicalRecord(t)
	expr, err := filter.Parse("cmp_id == {7}")
	require.NoError(t, err)

	_, err = filter.Evaluate(expr, consent)
	var typeErr *filter.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, filter.OpEq, typeErr.Op)
	assert.Equal(t, filter.IntValue, typeErr.Left)
	assert.Equal(t, filter.SetValue, typeErr.Right)
}

func TestEvaluateShortCircuitStillTypeChecksLeft(t *testing.T) {
	// A type error on the left operand surfaces even when the right
	// side would decide the result.
	consent := canonicalRecord(t)
	bad := filter.OpExpr{Field: filter.FieldVersion, Op: filter.OpIn, Value: filter.Int(1)}
	good := filter.OpExpr{Field: filter.FieldVersion, Op: filter.OpEq, Value: filter.Int(1)}

	_, err := filter.Evaluate(filter.AndExpr{Left: bad, Right: good}, consent)
	assert.Error(t, err)
	_, err = filter.Evaluate(filter.OrExpr{Left: bad, Right: good}, consent)
	assert.Error(t, err)
}

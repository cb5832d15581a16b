package filter

import (
	"fmt"
	"time"

	"github.com/prebid/go-tcf1/api"
)

// TypeError reports an opcode applied to an operand pair it is not
// defined for. The parser does not check operand types, so parsed
// expressions such as `cmp_id == {7}` or `1 in version` produce one at
// evaluation, as do ill-typed hand-built expressions.
type TypeError struct {
	Op    Opcode
	Left  ValueKind
	Right ValueKind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("operator %q is not defined for %s and %s operands", e.Op, e.Left, e.Right)
}

// Evaluate reports whether the consent record satisfies the expression.
func Evaluate(e Expr, consent api.VendorConsents) (bool, error) {
	return e.Eval(consent)
}

func (e AndExpr) Eval(consent api.VendorConsents) (bool, error) {
	l, err := e.Left.Eval(consent)
	if err != nil || !l {
		return false, err
	}
	return e.Right.Eval(consent)
}

func (e OrExpr) Eval(consent api.VendorConsents) (bool, error) {
	l, err := e.Left.Eval(consent)
	if err != nil || l {
		return l, err
	}
	return e.Right.Eval(consent)
}

func (e NotExpr) Eval(consent api.VendorConsents) (bool, error) {
	v, err := e.Expr.Eval(consent)
	return !v, err
}

func (e OpExpr) Eval(consent api.VendorConsents) (bool, error) {
	return e.Op.check(e.Field.project(consent), e.Value)
}

// project extracts the field's value from a consent record.
func (f Field) project(consent api.VendorConsents) Value {
	switch f {
	case FieldVersion:
		return Int(uint64(consent.Version()))
	case FieldCreated:
		return Int(deciseconds(consent.Created()))
	case FieldLastUpdated:
		return Int(deciseconds(consent.LastUpdated()))
	case FieldCmpID:
		return Int(uint64(consent.CmpID()))
	case FieldCmpVersion:
		return Int(uint64(consent.CmpVersion()))
	case FieldConsentScreen:
		return Int(uint64(consent.ConsentScreen()))
	case FieldConsentLanguage:
		return Str(consent.ConsentLanguage())
	case FieldVendorListVersion:
		return Int(uint64(consent.VendorListVersion()))
	case FieldMaxVendorID:
		return Int(uint64(consent.MaxVendorID()))
	case FieldPurposes:
		purposes := consent.PurposesAllowed()
		set := make([]uint64, len(purposes))
		for i, p := range purposes {
			set[i] = uint64(p)
		}
		return Set(set...)
	case FieldConsents:
		ids := consent.ConsentedVendors()
		set := make([]uint64, len(ids))
		for i, id := range ids {
			set[i] = uint64(id)
		}
		return Set(set...)
	}
	panic(fmt.Sprintf("filter: unknown field %d", f))
}

// deciseconds converts a timestamp to deciseconds since the Unix epoch,
// the integer form timestamps take in comparisons.
func deciseconds(t time.Time) uint64 {
	return uint64(t.Unix())*10 + uint64(t.Nanosecond()/int(100*time.Millisecond))
}

func (o Opcode) check(l, r Value) (bool, error) {
	switch {
	case l.Kind == IntValue && r.Kind == IntValue:
		switch o {
		case OpGt:
			return l.Int > r.Int, nil
		case OpGe:
			return l.Int >= r.Int, nil
		case OpLt:
			return l.Int < r.Int, nil
		case OpLe:
			return l.Int <= r.Int, nil
		case OpEq:
			return l.Int == r.Int, nil
		case OpNe:
			return l.Int != r.Int, nil
		}
	case l.Kind == StringValue && r.Kind == StringValue:
		switch o {
		case OpEq:
			return l.Str == r.Str, nil
		case OpNe:
			return l.Str != r.Str, nil
		}
	case l.Kind == SetValue && r.Kind == IntValue:
		switch o {
		case OpIn:
			return contains(l.Set, r.Int), nil
		case OpNotIn:
			return !contains(l.Set, r.Int), nil
		}
	}
	return false, &TypeError{Op: o, Left: l.Kind, Right: r.Kind}
}

func contains(set []uint64, v uint64) bool {
	for _, member := range set {
		if member == v {
			return true
		}
	}
	return false
}

// Package filter implements the boolean filter language evaluated
// against decoded consent records: a typed expression tree, its
// evaluator, and the parser for the textual form.
package filter

import "github.com/prebid/go-tcf1/api"

// Field identifies the consent-record attribute a comparison projects
// out.
type Field uint8

const (
	FieldVersion Field = iota
	FieldCreated
	FieldLastUpdated
	FieldCmpID
	FieldCmpVersion
	FieldConsentScreen
	FieldConsentLanguage
	FieldVendorListVersion
	FieldPurposes
	FieldMaxVendorID
	FieldConsents
)

var fieldNames = map[string]Field{
	"version":             FieldVersion,
	"created":             FieldCreated,
	"last_updated":        FieldLastUpdated,
	"cmp_id":              FieldCmpID,
	"cmp_version":         FieldCmpVersion,
	"consent_screen":      FieldConsentScreen,
	"consent_language":    FieldConsentLanguage,
	"vendor_list_version": FieldVendorListVersion,
	"purposes":            FieldPurposes,
	"max_vendor_id":       FieldMaxVendorID,
	"consents":            FieldConsents,
}

func (f Field) String() string {
	for name, field := range fieldNames {
		if field == f {
			return name
		}
	}
	return "unknown"
}

// Opcode is a comparison operator.
type Opcode uint8

const (
	OpGt Opcode = iota
	OpGe
	OpLt
	OpLe
	OpEq
	OpNe
	OpIn
	OpNotIn
)

func (o Opcode) String() string {
	switch o {
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	}
	return "unknown"
}

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	IntValue ValueKind = iota
	StringValue
	SetValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "integer"
	case StringValue:
		return "string"
	case SetValue:
		return "set"
	}
	return "unknown"
}

// Value is an operand: a field projection or a literal. Exactly one of
// Int, Str and Set is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Int  uint64
	Str  string
	Set  []uint64
}

// Int returns an integer Value.
func Int(v uint64) Value {
	return Value{Kind: IntValue, Int: v}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{Kind: StringValue, Str: s}
}

// Set returns a set-of-integers Value.
func Set(vs ...uint64) Value {
	return Value{Kind: SetValue, Set: vs}
}

// Expr is a filter expression. Expressions are immutable once built and
// may be evaluated concurrently against any number of records.
type Expr interface {
	// Eval reports whether the consent record satisfies the expression.
	Eval(consent api.VendorConsents) (bool, error)
}

// AndExpr is the conjunction of two expressions.
type AndExpr struct {
	Left, Right Expr
}

// OrExpr is the disjunction of two expressions.
type OrExpr struct {
	Left, Right Expr
}

// NotExpr negates an expression.
type NotExpr struct {
	Expr Expr
}

// OpExpr compares a projected record field with a literal value.
type OpExpr struct {
	Field Field
	Op    Opcode
	Value Value
}

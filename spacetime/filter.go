package spacetime

import "strconv"

// FilterKind names the value type a filter predicate applies to. The zero
// value is reserved so that a zero Filter is recognizably invalid.
type FilterKind uint8

const (
	filterKindUnset FilterKind = iota
	FilterBool
	FilterInt
	FilterText
)

func (k FilterKind) String() string {
	switch k {
	case FilterBool:
		return "BOOLEAN"
	case FilterInt:
		return "INT"
	case FilterText:
		return "TEXT"
	}
	return "FilterKind(" + strconv.Itoa(int(k)) + ")"
}

// FilterOp names the predicate shape. Shapes are only meaningful in
// combination with the right FilterKind; the constructors below are the
// supported way to build them.
type FilterOp uint8

const (
	opUnset FilterOp = iota

	// bool predicates
	OpIsTrue
	OpIsFalse
	OpEquals
	OpNotEquals

	// int and text predicates (shared tag name on the wire)
	OpEqual
	OpNotEqual

	// int predicates
	OpGreaterThan
	OpGreaterEqual
	OpLessThan
	OpLessEqual
	OpBetween
	OpIn
	OpNotIn

	// text predicates
	OpContains
	OpNotContains
	OpStartsWith
	OpEndsWith
	OpCaseInsensitiveEqual
)

func (op FilterOp) String() string {
	switch op {
	case OpIsTrue:
		return "IsTrue"
	case OpIsFalse:
		return "IsFalse"
	case OpEquals:
		return "Equals"
	case OpNotEquals:
		return "NotEquals"
	case OpEqual:
		return "Equal"
	case OpNotEqual:
		return "NotEqual"
	case OpGreaterThan:
		return "GreaterThan"
	case OpGreaterEqual:
		return "GreaterEqual"
	case OpLessThan:
		return "LessThan"
	case OpLessEqual:
		return "LessEqual"
	case OpBetween:
		return "Between"
	case OpIn:
		return "In"
	case OpNotIn:
		return "NotIn"
	case OpContains:
		return "Contains"
	case OpNotContains:
		return "NotContains"
	case OpStartsWith:
		return "StartsWith"
	case OpEndsWith:
		return "EndsWith"
	case OpCaseInsensitiveEqual:
		return "CaseInsensitiveEqual"
	}
	return "FilterOp(" + strconv.Itoa(int(op)) + ")"
}

// Filter is a typed predicate over the values stored under one space/key.
// Each filter carries exactly one predicate shape for one value kind; the
// constructors enumerate every supported shape. The zero value is invalid
// and rejected at encode time.
type Filter struct {
	kind FilterKind
	op   FilterOp

	boolArg bool
	intLo   int64
	intHi   int64
	intList []int64
	textArg string
}

// Kind reports the value type this filter applies to.
func (f Filter) Kind() FilterKind { return f.kind }

// Op reports the predicate shape.
func (f Filter) Op() FilterOp { return f.op }

// BoolArg returns the payload of a bool Equals/NotEquals predicate.
func (f Filter) BoolArg() bool { return f.boolArg }

// IntArg returns the payload of a single-operand int predicate.
func (f Filter) IntArg() int64 { return f.intLo }

// IntBounds returns the payload of an int Between predicate.
func (f Filter) IntBounds() (lo, hi int64) { return f.intLo, f.intHi }

// IntList returns the payload of an int In/NotIn predicate.
func (f Filter) IntList() []int64 { return f.intList }

// TextArg returns the payload of a text predicate.
func (f Filter) TextArg() string { return f.textArg }

// String renders the filter for error messages, e.g. "INT GreaterThan".
func (f Filter) String() string {
	if f.kind == filterKindUnset && f.op == opUnset {
		return "unset filter"
	}
	return f.kind.String() + " " + f.op.String()
}

// BoolIsTrue matches regions whose stored bool is true.
func BoolIsTrue() Filter { return Filter{kind: FilterBool, op: OpIsTrue} }

// BoolIsFalse matches regions whose stored bool is false.
func BoolIsFalse() Filter { return Filter{kind: FilterBool, op: OpIsFalse} }

// BoolEquals matches stored bools equal to v.
func BoolEquals(v bool) Filter { return Filter{kind: FilterBool, op: OpEquals, boolArg: v} }

// BoolNotEquals matches stored bools different from v.
func BoolNotEquals(v bool) Filter { return Filter{kind: FilterBool, op: OpNotEquals, boolArg: v} }

// IntEqual matches stored ints equal to n.
func IntEqual(n int64) Filter { return Filter{kind: FilterInt, op: OpEqual, intLo: n} }

// IntNotEqual matches stored ints different from n.
func IntNotEqual(n int64) Filter { return Filter{kind: FilterInt, op: OpNotEqual, intLo: n} }

// IntGreaterThan matches stored ints strictly greater than n.
func IntGreaterThan(n int64) Filter { return Filter{kind: FilterInt, op: OpGreaterThan, intLo: n} }

// IntGreaterEqual matches stored ints greater than or equal to n.
func IntGreaterEqual(n int64) Filter { return Filter{kind: FilterInt, op: OpGreaterEqual, intLo: n} }

// IntLessThan matches stored ints strictly less than n.
func IntLessThan(n int64) Filter { return Filter{kind: FilterInt, op: OpLessThan, intLo: n} }

// IntLessEqual matches stored ints less than or equal to n.
func IntLessEqual(n int64) Filter { return Filter{kind: FilterInt, op: OpLessEqual, intLo: n} }

// IntBetween matches stored ints in the closed interval [lo, hi].
func IntBetween(lo, hi int64) Filter {
	return Filter{kind: FilterInt, op: OpBetween, intLo: lo, intHi: hi}
}

// IntIn matches stored ints equal to any of ns.
func IntIn(ns ...int64) Filter {
	return Filter{kind: FilterInt, op: OpIn, intList: append([]int64(nil), ns...)}
}

// IntNotIn matches stored ints equal to none of ns.
func IntNotIn(ns ...int64) Filter {
	return Filter{kind: FilterInt, op: OpNotIn, intList: append([]int64(nil), ns...)}
}

// TextEqual matches stored text equal to s.
func TextEqual(s string) Filter { return Filter{kind: FilterText, op: OpEqual, textArg: s} }

// TextNotEqual matches stored text different from s.
func TextNotEqual(s string) Filter { return Filter{kind: FilterText, op: OpNotEqual, textArg: s} }

// TextContains matches stored text containing s.
func TextContains(s string) Filter { return Filter{kind: FilterText, op: OpContains, textArg: s} }

// TextNotContains matches stored text not containing s.
func TextNotContains(s string) Filter {
	return Filter{kind: FilterText, op: OpNotContains, textArg: s}
}

// TextStartsWith matches stored text with prefix s.
func TextStartsWith(s string) Filter {
	return Filter{kind: FilterText, op: OpStartsWith, textArg: s}
}

// TextEndsWith matches stored text with suffix s.
func TextEndsWith(s string) Filter { return Filter{kind: FilterText, op: OpEndsWith, textArg: s} }

// TextEqualIgnoreCase matches stored text equal to s ignoring case.
func TextEqualIgnoreCase(s string) Filter {
	return Filter{kind: FilterText, op: OpCaseInsensitiveEqual, textArg: s}
}

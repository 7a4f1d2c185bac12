package spacetime

// Expr is a recursive space-time range expression: a tree of set
// combinators over region leaves and value predicates. The variant set is
// sealed; the engine evaluates the tree, this layer only encodes it.
//
// Variants: ID (a literal region), And, Or, Xor, Not (ordered combinators),
// FilterExpr (regions whose stored value under space/key satisfies a
// predicate), HasValueExpr (regions that store any value under space/key).
type Expr interface {
	isExpr()
}

func (ID) isExpr() {}

// And matches regions contained in every child expression. Child order is
// preserved on the wire.
type And struct {
	Exprs []Expr
}

func (And) isExpr() {}

// Or matches regions contained in at least one child expression.
type Or struct {
	Exprs []Expr
}

func (Or) isExpr() {}

// Xor matches regions contained in an odd number of child expressions.
type Xor struct {
	Exprs []Expr
}

func (Xor) isExpr() {}

// Not matches the complement of its children. The complement universe is
// the engine's to define; it is passed through uninterpreted.
type Not struct {
	Exprs []Expr
}

func (Not) isExpr() {}

// FilterExpr matches regions whose value stored under Space/Key satisfies
// Filter. A nil Filter expresses bare existence and encodes as HasValue.
type FilterExpr struct {
	Space  string
	Key    string
	Filter *Filter
}

func (FilterExpr) isExpr() {}

// HasValueExpr matches regions that store any value under Space/Key.
type HasValueExpr struct {
	Space string
	Key   string
}

func (HasValueExpr) isExpr() {}

// AndOf combines expressions with set intersection.
func AndOf(exprs ...Expr) And { return And{Exprs: exprs} }

// OrOf combines expressions with set union.
func OrOf(exprs ...Expr) Or { return Or{Exprs: exprs} }

// XorOf combines expressions with symmetric difference.
func XorOf(exprs ...Expr) Xor { return Xor{Exprs: exprs} }

// NotOf complements the combined expressions.
func NotOf(exprs ...Expr) Not { return Not{Exprs: exprs} }

// FilterOf matches regions whose value under space/key satisfies f.
func FilterOf(space, key string, f Filter) FilterExpr {
	return FilterExpr{Space: space, Key: key, Filter: &f}
}

// HasValue matches regions storing any value under space/key.
func HasValue(space, key string) HasValueExpr {
	return HasValueExpr{Space: space, Key: key}
}

package basalt

import (
	"fmt"
	"slices"
)

// Query is an immutable descriptor of a single-table SELECT statement.
//
// A Query accumulates configuration through Select, Filter, and OrderBy; each
// returns a new, independent Query and leaves the receiver untouched. Because
// derivation copies the descriptor's internal slices, an ancestor and any
// query derived from it share no mutable state: callers may keep every
// intermediate descriptor, branch several divergent queries from a common
// ancestor, and render each independently.
//
// The zero Query is not usable; construct with New.
type Query struct {
	table  string
	cols   []string
	preds  []Cond
	orders []orderKey
}

// Cond is a single equality predicate: column = value.
type Cond struct {
	Column string
	Value  Literal
}

// Eq constructs an equality predicate for Filter.
func Eq(column string, value Literal) Cond {
	return Cond{Column: column, Value: value}
}

type orderKey struct {
	column string
	desc   bool
}

// New creates a descriptor for the named table with an empty projection, no
// predicates, and no ordering. The table name must be non-empty; a malformed
// name fails here with an INVALID_ARGUMENT error rather than deferring the
// failure to Build time.
func New(table string) (Query, error) {
	if table == "" {
		return Query{}, &Error{
			Code:    ErrCodeInvalidArgument,
			Message: "table name must not be empty",
		}
	}
	return Query{table: table}, nil
}

// Must returns q or panics if err is non-nil. It allows chained construction
// when the table name is a compile-time constant:
//
//	q := basalt.Must(basalt.New("Person")).Select("id", "age")
func Must(q Query, err error) Query {
	if err != nil {
		panic(fmt.Sprintf("basalt: %v", err))
	}
	return q
}

// Select returns a new Query with the given columns appended to the
// projection, in the order given. Columns are not deduplicated: selecting a
// column twice projects it twice, mirroring the no-validation design of the
// builder. An empty projection renders as *.
func (q Query) Select(columns ...string) Query {
	derived := q
	derived.cols = append(slices.Clone(q.cols), columns...)
	return derived
}

// Filter returns a new Query with the given equality predicates merged into
// the predicate list. A predicate on a column that is already constrained
// overwrites that column's value in place, keeping the column's first-seen
// position; predicates on new columns are appended in the order given.
func (q Query) Filter(conds ...Cond) Query {
	preds := slices.Clone(q.preds)
	for _, c := range conds {
		i := slices.IndexFunc(preds, func(p Cond) bool { return p.Column == c.Column })
		if i >= 0 {
			preds[i].Value = c.Value
		} else {
			preds = append(preds, c)
		}
	}
	derived := q
	derived.preds = preds
	return derived
}

// OrderBy returns a new Query with ascending order keys appended for the
// given columns. Keys are not deduplicated.
func (q Query) OrderBy(columns ...string) Query {
	return q.orderBy(false, columns)
}

// OrderByDesc is OrderBy with descending keys. Descending keys render with a
// DESC suffix; plain OrderBy stays ascending.
func (q Query) OrderByDesc(columns ...string) Query {
	return q.orderBy(true, columns)
}

func (q Query) orderBy(desc bool, columns []string) Query {
	orders := slices.Clone(q.orders)
	for _, col := range columns {
		orders = append(orders, orderKey{column: col, desc: desc})
	}
	derived := q
	derived.orders = orders
	return derived
}

// Table returns the descriptor's table name.
func (q Query) Table() string { return q.table }

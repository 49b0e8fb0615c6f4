package basalt

import "strings"

// Build renders the descriptor into SQL statement text. This is the terminal
// operation: everything before it only records configuration.
//
// Build is referentially transparent. It has no side effects, never mutates
// the descriptor, and always produces identical text for the same descriptor.
// The output shape is
//
//	SELECT <projection> FROM <table>[ WHERE <predicates>][ ORDER BY <keys>];
//
// with an empty projection rendered as *, predicates joined by " AND " in
// first-seen column order, order keys joined by ", " in append order, and a
// single trailing statement terminator.
func (q Query) Build() string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if len(q.cols) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(q.cols, ", "))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(q.table)

	if len(q.preds) > 0 {
		sb.WriteString(" WHERE ")
		for i, p := range q.preds {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString(p.Column)
			sb.WriteString(" = ")
			sb.WriteString(literalSQL(p.Value))
		}
	}

	if len(q.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range q.orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.column)
			if o.desc {
				sb.WriteString(" DESC")
			}
		}
	}

	sb.WriteString(";")
	return sb.String()
}

// String implements fmt.Stringer by rendering the descriptor.
func (q Query) String() string { return q.Build() }

package basalt

import (
	"fmt"
	"strconv"
)

// Literal is a sealed interface over the scalar kinds a predicate value may
// take. Only String, Int, Float, Bool, and Null implement it. Keeping the set
// closed lets rendering dispatch exhaustively instead of falling back to
// reflection.
type Literal interface {
	literal() // Sealed - only types in this package implement it
}

// String is a text literal, rendered wrapped in single quotes.
//
// LIMITATION: embedded quote characters are NOT escaped. Escaping is out of
// scope for this builder; callers must not pass untrusted strings containing
// quote characters.
type String string

func (String) literal() {}

// Int is an integer literal. Always int64.
type Int int64

func (Int) literal() {}

// Float is a floating point literal.
type Float float64

func (Float) literal() {}

// Bool is a boolean literal, rendered as the TRUE/FALSE keywords.
type Bool bool

func (Bool) literal() {}

// Null is the SQL NULL literal.
type Null struct{}

func (Null) literal() {}

// FromGo converts a loosely-typed scalar, as produced by YAML or JSON
// decoding, into the closed Literal variant. A value that is already a
// Literal passes through. Unsupported shapes (slices, maps, structs) are
// rejected with an UNSUPPORTED_VALUE error.
func FromGo(v any) (Literal, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Literal:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	default:
		return nil, &Error{
			Code:    ErrCodeUnsupportedValue,
			Message: fmt.Sprintf("unsupported literal type %T", v),
		}
	}
}

// literalSQL renders a Literal in its SQL textual form.
func literalSQL(v Literal) string {
	switch val := v.(type) {
	case String:
		return "'" + string(val) + "'"
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		// Null, or a nil Literal in a hand-built Cond.
		return "NULL"
	}
}

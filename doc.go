// Package basalt builds SQL SELECT statements from immutable query
// descriptors.
//
// A descriptor is created with New, refined with Select, Filter, and OrderBy,
// and rendered with Build. Every refinement returns a fresh descriptor and
// leaves its receiver intact, so intermediate descriptors can be retained and
// branched:
//
//	q := basalt.Must(basalt.New("Person"))
//	g := q.Select("id", "age").Filter(basalt.Eq("name", basalt.String("Bill")))
//
//	g.Select("name").OrderBy("name").Build()
//	// SELECT id, age, name FROM Person WHERE name = 'Bill' ORDER BY name;
//
//	g.OrderBy("age").Build()
//	// SELECT id, age FROM Person WHERE name = 'Bill' ORDER BY age;
//
// Both renders are valid: deriving from g never changes g.
//
// Nothing is evaluated until Build. Rendering is deterministic and free of
// side effects, and descriptors are plain values whose internal state is
// copied on every derivation, so they are safe to share across goroutines
// without coordination.
//
// Filter values use the closed Literal variant (String, Int, Float, Bool,
// Null). String literals are wrapped in single quotes WITHOUT escaping -
// do not pass untrusted input.
package basalt

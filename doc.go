// Package rapidutil binds plain Go structs to JSON text through explicit,
// compile-time-checked field descriptors.
//
// - Describe/DescribeTuple register an ordered member table per record type
// - Marshal walks the bound value tree and emits JSON in declaration order
// - Unmarshal parses JSON and writes through live references into the record
// - A single Error type carries a stable code, a dotted member path, and a
//   human-readable message for every failure
//
// Design policy:
// - No runtime reflection: field shape is fixed by which constructor binds it,
//   so an unsupported member type fails at compile time.
// - The value tree built per call holds only references into the caller's
//   record; it is request-scoped and never retained.
// - The generic document model lives under document/; the CLI under
//   cmd/rapidoc.
//
// Typical usage:
//
//	type Person struct {
//		Name string
//		Age  int32
//	}
//
//	var personType = rapidutil.Describe(func(p *Person) []rapidutil.Field {
//		return []rapidutil.Field{
//			rapidutil.String("name", &p.Name),
//			rapidutil.Int32("age", &p.Age),
//		}
//	})
//
//	text, err := personType.Marshal(&p)
//	err = personType.Unmarshal([]byte(text), &p)
package rapidutil

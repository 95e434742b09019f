// Package shapematch decides whether a runtime-observed schema type can carry
// values of a statically declared shape.
//
// A declared shape is a domain (a named alias around one inner type), an enum
// (a named set of variant labels) or a composite (a named record of typed
// fields). A Descriptor is what a live type catalog reports for a type name:
// a name plus a Kind that is one of DomainKind, EnumKind, CompositeKind or
// OtherKind.
//
// Matching policy:
//
//   - Every matcher first compares names, then kinds. Any mismatch is false.
//   - Domain: the inner declared type must accept the descriptor's inner type.
//   - Enum: every live variant must be declared. Declared variants the live
//     type lacks are fine, and variant counts are never compared.
//   - Composite: the live type must have at least as many fields as declared.
//     Each live field with a declared counterpart is matched recursively;
//     extra live fields pass.
//
// Recursive checks dispatch through the Direction chosen for the top-level
// call (Encode or Decode), so base types may accept different names per
// direction. Nesting is bounded by MatchOpt.MaxDepth; exceeding it returns
// false together with an error matching ErrTooDeep.
//
// Typical usage:
//
//	item := dsl.Composite("inventory_item").
//		Field("name", dsl.Text()).
//		Field("supplier_id", dsl.Int4()).
//		MustBuild()
//	ok, err := shapematch.Accepts(item, shapematch.Decode, desc)
//	ok, issues, err := shapematch.Explain(item, shapematch.Decode, desc)
//
// Design policy:
// - Keep only the matcher and its data model in the root package.
// - Place builders under dsl/, descriptor catalogs under catalog/, and the CLI under cmd/shapematch.
// - Prefer black-box testing against public APIs.
package shapematch

// Package dsl provides builders for declared shapes.
//
// Overview
//   - Domain(name, inner): a named alias around one inner acceptor.
//   - Enum(name, variants...): a closed set of variant labels.
//   - Composite(name).Field(...).Build(): a record of uniquely named fields.
//   - Base types: Bool/Int2/Int4/Int8/Float4/Float8/Numeric/Text/Bytea/JSON/UUID/
//     Date/Timestamp/Timestamptz, plus Base(names...) and Directional(enc, dec)
//     for anything else.
//   - Nullable(inner) and Lazy(resolve) wrap other acceptors.
//
// Quickstart
//
//	item := g.Composite("inventory_item").
//		Field("name", g.Text()).
//		Field("supplier_id", g.Int4()).
//		Field("price", g.Nullable(g.Numeric())).
//		MustBuild()
//	ok, err := shapematch.Accepts(item, shapematch.Decode, live)
//
// Self-referential shapes go through Lazy; matching them relies on the
// MatchOpt.MaxDepth guard.
package dsl

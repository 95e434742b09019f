package dsl

import (
	"sort"
	"strings"

	sm "github.com/reoring/shapematch"
)

// baseType accepts base descriptors by name, with a separate name set per
// direction.
type baseType struct {
	encodes map[string]struct{}
	decodes map[string]struct{}
}

func newBaseType(encodes, decodes []string) baseType {
	return baseType{encodes: toSet(encodes), decodes: toSet(decodes)}
}

func toSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func (b baseType) Accept(m *sm.Matcher, d *sm.Descriptor) bool {
	set := b.encodes
	if m.Direction() == sm.Decode {
		set = b.decodes
	}
	if d != nil && d.Tag() == sm.KindOther {
		if _, ok := set[d.Name]; ok {
			return true
		}
	}
	got := "<nil>"
	if d != nil {
		got = d.Name
	}
	return m.Reject(sm.CodeTypeMismatch, "want", describe(set), "got", got)
}

func describe(set map[string]struct{}) string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Base accepts base types whose name is one of names, in both directions.
func Base(names ...string) sm.Acceptor { return newBaseType(names, names) }

// Directional accepts base types from encodes when encoding and from decodes
// when decoding.
func Directional(encodes, decodes []string) sm.Acceptor { return newBaseType(encodes, decodes) }

func Bool() sm.Acceptor        { return Base("bool") }
func Int2() sm.Acceptor        { return Base("int2") }
func Int4() sm.Acceptor        { return Base("int4") }
func Int8() sm.Acceptor        { return Base("int8") }
func Float4() sm.Acceptor      { return Base("float4") }
func Float8() sm.Acceptor      { return Base("float8") }
func Numeric() sm.Acceptor     { return Base("numeric") }
func Bytea() sm.Acceptor       { return Base("bytea") }
func JSON() sm.Acceptor        { return Base("json", "jsonb") }
func UUID() sm.Acceptor        { return Base("uuid") }
func Date() sm.Acceptor        { return Base("date") }
func Timestamp() sm.Acceptor   { return Base("timestamp") }
func Timestamptz() sm.Acceptor { return Base("timestamptz") }

// Text accepts the character types. Untyped parameters ("unknown") can be
// bound from text, and case-insensitive text can be read into it.
func Text() sm.Acceptor {
	return Directional(
		[]string{"text", "varchar", "bpchar", "name", "unknown"},
		[]string{"text", "varchar", "bpchar", "name", "citext"},
	)
}

package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	sm "github.com/reoring/shapematch"
	g "github.com/reoring/shapematch/dsl"
)

func TestComposite_BuildRejectsBadFields(t *testing.T) {
	_, err := g.Composite("item").
		Field("a", g.Int4()).
		Field("a", g.Text()).
		Field("", g.Text()).
		Build()
	iss, ok := sm.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %v", err)
	}
	type row struct{ Path, Code string }
	var got []row
	for _, it := range iss {
		got = append(got, row{it.Path, it.Code})
	}
	want := []row{{"/a", sm.CodeDuplicateField}, {"/", sm.CodeEmptyName}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestComposite_EmptyName(t *testing.T) {
	if _, err := g.Composite("").Field("a", g.Int4()).Build(); err == nil {
		t.Fatalf("expected error for empty composite name")
	}
}

func TestComposite_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	g.Composite("item").Field("a", g.Int4()).Field("a", g.Int4()).MustBuild()
}

func TestComposite_FieldsKeepDeclarationOrder(t *testing.T) {
	s := g.Composite("item").Field("b", g.Int4()).Field("a", g.Text()).MustBuild()
	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"b", "a"}, names); diff != "" {
		t.Fatalf("field order (-want +got):\n%s", diff)
	}
	if s.Name() != "item" {
		t.Fatalf("unexpected name %q", s.Name())
	}
}

func TestBaseTypes(t *testing.T) {
	cases := []struct {
		name string
		a    sm.Acceptor
		dir  sm.Direction
		d    *sm.Descriptor
		want bool
	}{
		{"int4 exact", g.Int4(), sm.Decode, sm.Base("int4"), true},
		{"int4 vs int8", g.Int4(), sm.Decode, sm.Base("int8"), false},
		{"json accepts jsonb", g.JSON(), sm.Encode, sm.Base("jsonb"), true},
		{"text encode unknown", g.Text(), sm.Encode, sm.Base("unknown"), true},
		{"text decode unknown", g.Text(), sm.Decode, sm.Base("unknown"), false},
		{"text decode citext", g.Text(), sm.Decode, sm.Base("citext"), true},
		{"base rejects enum kind", g.Base("mood"), sm.Decode, &sm.Descriptor{Name: "mood", Kind: sm.EnumKind{}}, false},
		{"base rejects nil", g.Bool(), sm.Decode, nil, false},
		{"nullable passes through", g.Nullable(g.UUID()), sm.Decode, sm.Base("uuid"), true},
		{"nullable rejects", g.Nullable(g.UUID()), sm.Decode, sm.Base("text"), false},
		{"directional", g.Directional([]string{"a"}, []string{"b"}), sm.Decode, sm.Base("b"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sm.Accepts(tc.a, tc.dir, tc.d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestBaseTypes_ExplainListsAcceptedNames(t *testing.T) {
	_, iss, _ := sm.Explain(g.JSON(), sm.Decode, sm.Base("text"))
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", iss)
	}
	if iss[0].Params["want"] != "json|jsonb" || iss[0].Params["got"] != "text" {
		t.Fatalf("unexpected params %v", iss[0].Params)
	}
}

func TestLazy_ResolvesOnMatch(t *testing.T) {
	var target sm.Acceptor
	lazy := g.Lazy(func() sm.Acceptor { return target })
	target = g.Enum("mood", "sad")
	ok, err := sm.Accepts(lazy, sm.Decode, &sm.Descriptor{Name: "mood", Kind: sm.EnumKind{Variants: []string{"sad"}}})
	if !ok || err != nil {
		t.Fatalf("expected lazy target to match, got ok=%v err=%v", ok, err)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/shapematch/i18n"
)

const (
	snapshot = "testdata/snapshot.yaml"
	live     = "testdata/live.json"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCheck_AllAccepted(t *testing.T) {
	code, out, errOut := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "posint,inventory_item")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\nstdout:\n%s\nstderr:\n%s", code, out, errOut)
	}
	for _, line := range []string{
		"ok posint (encode)",
		"ok posint (decode)",
		"ok inventory_item (encode)",
		"ok inventory_item (decode)",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in output:\n%s", line, out)
		}
	}
}

func TestCheck_MismatchExplained(t *testing.T) {
	code, out, _ := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "mood", "-dir", "decode", "-explain")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, out)
	}
	if !strings.Contains(out, "mismatch mood (decode)") {
		t.Fatalf("missing mismatch line:\n%s", out)
	}
	if !strings.Contains(out, "enum mood does not declare variant ecstatic") {
		t.Fatalf("missing explanation:\n%s", out)
	}
}

func TestCheck_JapaneseMessages(t *testing.T) {
	defer i18n.SetLanguage("en")
	_, out, _ := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "mood", "-dir", "decode", "-explain", "-lang", "ja")
	if !strings.Contains(out, "ecstatic") || strings.Contains(out, "does not declare") {
		t.Fatalf("expected japanese explanation:\n%s", out)
	}
}

func TestCheck_CyclicTypeReportsDepthError(t *testing.T) {
	code, out, _ := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "node", "-dir", "encode", "-max-depth", "8")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, out)
	}
	if !strings.Contains(out, "error node (encode)") || !strings.Contains(out, "depth limit 8") {
		t.Fatalf("expected depth error:\n%s", out)
	}
}

func TestCheck_DefaultsToDefinedTypes(t *testing.T) {
	code, out, _ := runCLI(t, "check", "-want", snapshot, "-live", live, "-dir", "decode", "-v")
	if code != 1 {
		t.Fatalf("expected exit 1 (mood and node fail), got %d", code)
	}
	for _, name := range []string{"inventory_item", "mood", "node", "posint"} {
		if !strings.Contains(out, " "+name+" (decode)") {
			t.Fatalf("%s not checked:\n%s", name, out)
		}
	}
	if strings.Contains(out, " int4 ") {
		t.Fatalf("builtins should not be checked by default:\n%s", out)
	}
}

func TestCheck_BuiltinAndUnknownTypes(t *testing.T) {
	code, out, _ := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "int4,text")
	if code != 0 {
		t.Fatalf("builtins exist in both catalogs, got exit %d\n%s", code, out)
	}
	code, _, errOut := runCLI(t, "check", "-want", snapshot, "-live", live, "-type", "ghost")
	if code != 2 || !strings.Contains(errOut, "ghost") {
		t.Fatalf("expected exit 2 for unknown snapshot type, got %d (%s)", code, errOut)
	}
}

func TestCheck_TypeMissingFromLive(t *testing.T) {
	partial := filepath.Join(t.TempDir(), "live.yaml")
	if err := os.WriteFile(partial, []byte("types:\n  - {name: posint, kind: domain, inner: int4}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, out, _ := runCLI(t, "check", "-want", snapshot, "-live", partial, "-type", "posint,mood")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, out)
	}
	if !strings.Contains(out, "missing mood: not present in live catalog") || !strings.Contains(out, "ok posint (decode)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCheck_UsageErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{"frobnicate"},
		{"check"},
		{"check", "-want", snapshot, "-live", live, "-dir", "sideways"},
		{"check", "-want", "testdata/none.yaml", "-live", live},
		{"list"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, args...); code != 2 {
			t.Fatalf("args %v: expected exit 2, got %d", args, code)
		}
	}
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, "list", "-catalog", snapshot)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 defined types, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "inventory_item") || !strings.HasSuffix(lines[0], "composite") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	_, all, _ := runCLI(t, "list", "-catalog", live, "-all")
	if !strings.Contains(all, "timestamptz") {
		t.Fatalf("expected builtins with -all:\n%s", all)
	}
}

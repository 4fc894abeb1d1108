// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRoundTrip(t *testing.T) {
	srcs := []string{
		"echo hello world\n",
		"a=1 b=2 cmd x\n",
		"if true; then echo yes; else echo no; fi\n",
		"cat <<EOF\nbody\nEOF\n",
		"for x in a b c; do echo $x; done\n",
		"case $x in a) echo a ;; b|c) echo bc ;; esac\n",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			want := mustParse(t, src, WithLoc2(), WithSource())

			var buf bytes.Buffer
			if err := Encode(&buf, want); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
				t.Errorf("round-trip mismatch:\n%s", diff)
			}
		})
	}
}

func TestJSONDecodeChildTypes(t *testing.T) {
	n := mustParse(t, "cat <<EOF\nbody\nEOF\n")
	var buf bytes.Buffer
	if err := Encode(&buf, n); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	simple := got.Children[0].(*Node).Children[0].(*Node)
	var hd *Node
	for _, c := range simple.Children {
		if cn, ok := c.(*Node); ok && cn.Kind == KindIOHereDoc {
			hd = cn
		}
	}
	if hd == nil {
		t.Fatal("no IOHereDoc node found after round-trip")
	}
	if _, ok := hd.Children[0].(string); !ok {
		t.Fatalf("operator child decoded as %T, want string", hd.Children[0])
	}
	body := hd.Children[len(hd.Children)-1]
	if s, ok := body.(string); !ok || s != "body\n" {
		t.Fatalf("body decoded as %#v, want %q", body, "body\n")
	}
}

func TestJSONEncodeIndent(t *testing.T) {
	n := mustParse(t, "echo hi\n")
	var compact, indented bytes.Buffer
	if err := Encode(&compact, n); err != nil {
		t.Fatal(err)
	}
	if err := (EncodeOptions{Indent: "  "}).Encode(&indented, n); err != nil {
		t.Fatal(err)
	}
	if compact.Len() == 0 || indented.Len() == 0 {
		t.Fatal("expected non-empty output from both encodings")
	}
	if compact.String() == indented.String() {
		t.Fatal("indented and compact output should differ")
	}
}

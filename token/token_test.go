// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package token

import "testing"

func TestWordBoundary(t *testing.T) {
	cases := []struct {
		name string
		src  string
		i    int
		want bool
	}{
		{"space", "if ", 2, true},
		{"newline", "if\nfoo", 2, true},
		{"operator", "if;", 2, true},
		{"mid-word", "ifoo", 2, false},
		{"end-of-input", "if", 2, true},
		{"letter-at-start", "if", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WordBoundary([]byte(c.src), c.i)
			if got != c.want {
				t.Errorf("WordBoundary(%q, %d) = %v, want %v", c.src, c.i, got, c.want)
			}
		})
	}
}

func TestLookupReserved(t *testing.T) {
	for _, w := range []string{"if", "then", "fi", "for", "case", "!", "{", "}"} {
		if _, ok := LookupReserved(w); !ok {
			t.Errorf("LookupReserved(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ifx", "echo", "[["} {
		if _, ok := LookupReserved(w); ok {
			t.Errorf("LookupReserved(%q) = true, want false", w)
		}
	}
}

func TestIsSingleCharOp(t *testing.T) {
	cases := []struct {
		src  string
		i    int
		want bool
	}{
		{"& b", 0, true},
		{"&& b", 0, false},
		{"> b", 0, true},
		{">> b", 0, false},
		{"| b", 0, true},
		{"|| b", 0, false},
	}
	for _, c := range cases {
		got := IsSingleCharOp([]byte(c.src), c.i)
		if got != c.want {
			t.Errorf("IsSingleCharOp(%q, %d) = %v, want %v", c.src, c.i, got, c.want)
		}
	}
}

func TestIsOperatorByte(t *testing.T) {
	for _, b := range []byte("&><(|);") {
		if !IsOperatorByte(b) {
			t.Errorf("IsOperatorByte(%q) = false, want true", b)
		}
	}
	for _, b := range []byte("abc_1") {
		if IsOperatorByte(b) {
			t.Errorf("IsOperatorByte(%q) = true, want false", b)
		}
	}
}

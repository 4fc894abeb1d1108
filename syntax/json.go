// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

// Encoding of the AST as a generic tagged tree (§6.3). Unlike a
// reflection-driven typed-AST encoder, Node is already homogeneous —
// every construct is the same Go type — so encoding needs no reflection
// to decide what Go type a child should become; decoding, however,
// still needs a small amount of custom logic to turn each child's raw
// JSON back into a *Node, string, or int64 rather than a generic map.
package syntax

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodeOptions configures how a tree is written out.
type EncodeOptions struct {
	Indent string // e.g. "\t"; empty means compact output
}

// Encode is a shortcut for EncodeOptions{}.Encode.
func Encode(w io.Writer, n *Node) error {
	return EncodeOptions{}.Encode(w, n)
}

// Encode writes n to w in the tagged-tree JSON form described in §6.3.
func (opts EncodeOptions) Encode(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(n)
}

// Decode reads a tree previously written by Encode.
func Decode(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// jsonNode mirrors Node's exported shape so UnmarshalJSON can delegate
// field-by-field decoding to the stdlib and only special-case Children.
type jsonNode struct {
	Kind     Kind              `json:"kind"`
	Children []json.RawMessage `json:"children,omitempty"`
	Pos      int               `json:"pos,omitempty"`
	EndPos   int               `json:"endpos,omitempty"`
	Line     int               `json:"line,omitempty"`
	Col      int               `json:"col,omitempty"`
	EndLine  int               `json:"end_line,omitempty"`
	EndCol   int               `json:"end_col,omitempty"`
	Source   *string           `json:"source,omitempty"`
}

// UnmarshalJSON decodes a node, recursively turning each child's raw JSON
// back into a *Node, string, or int64 rather than a generic map/float64.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.Kind = raw.Kind
	n.Pos, n.EndPos = raw.Pos, raw.EndPos
	n.Line, n.Col, n.EndLine, n.EndCol = raw.Line, raw.Col, raw.EndLine, raw.EndCol
	n.Source = raw.Source
	n.begin, n.end = raw.Pos, raw.EndPos

	n.Children = make([]any, 0, len(raw.Children))
	for _, rm := range raw.Children {
		child, err := decodeChild(rm)
		if err != nil {
			return err
		}
		n.Children = append(n.Children, child)
	}
	return nil
}

func decodeChild(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		child := new(Node)
		if err := json.Unmarshal(data, child); err != nil {
			return nil, err
		}
		return child, nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		var i int64
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return i, nil
	}
}

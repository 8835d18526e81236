// Package doctext converts TipTap-style chapter JSON into plain text and
// collects the positions of tagged keyword nodes.
package doctext

import (
	"encoding/json"
	"strings"
)

const (
	typeDoc        = "doc"
	typeParagraph  = "paragraph"
	typeText       = "text"
	typeCustomWord = "customWord"
	typeHardBreak  = "hardBreak"
)

// KeywordPosition records a keyword extracted from a customWord node and the
// offset of its first character within the assembled plain text. Offsets are
// measured in UTF-16 code units, the indexing the editor frontend uses.
type KeywordPosition struct {
	Keyword string `json:"keyword"`
	Offset  int    `json:"offset"`
}

// Analysis is the result of flattening one chapter document.
type Analysis struct {
	PlainText string
	Keywords  []KeywordPosition
}

// ValidationError reports a chapter document whose root is malformed. Only the
// root is ever validated; anything below it degrades to a no-op instead.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid chapter document: " + e.Reason
}

// Analyze walks the chapter document and returns its plain text together with
// every customWord occurrence. Top-level blocks are joined by a single newline,
// so a document with N blocks always yields N-1 separators, even when blocks
// are empty. The function is pure and never fails below the root.
func Analyze(doc json.RawMessage) (*Analysis, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(doc, &root); err != nil || root == nil {
		return nil, &ValidationError{Reason: "document root must be a JSON object"}
	}

	var rootType string
	_ = json.Unmarshal(root["type"], &rootType)
	if rootType != typeDoc {
		return nil, &ValidationError{Reason: `document root type must be "doc"`}
	}

	blocksRaw, ok := root["content"]
	if !ok {
		return nil, &ValidationError{Reason: "document must contain a content array"}
	}
	var blocks []json.RawMessage
	if isNull(blocksRaw) || json.Unmarshal(blocksRaw, &blocks) != nil {
		return nil, &ValidationError{Reason: "document content must be an array"}
	}

	w := &writer{}
	for i, block := range blocks {
		if i > 0 {
			w.append("\n")
		}
		w.appendBlock(block)
	}

	return &Analysis{PlainText: w.buf.String(), Keywords: w.keywords}, nil
}

// UTF16Len returns the length of s in UTF-16 code units. Chapter length limits
// and keyword offsets both use this unit so they agree with the frontend.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

type node struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Attrs   json.RawMessage `json:"attrs"`
	Content json.RawMessage `json:"content"`
}

type writer struct {
	buf      strings.Builder
	units    int
	keywords []KeywordPosition
}

func (w *writer) append(s string) {
	w.buf.WriteString(s)
	w.units += UTF16Len(s)
}

func (w *writer) appendBlock(raw json.RawMessage) {
	n, ok := decodeNode(raw)
	if !ok {
		return
	}
	if n.Type != typeParagraph {
		w.appendInline(raw)
		return
	}
	w.appendInline(n.Content)
}

// appendInline walks inline nodes depth-first, left to right. Arrays recurse
// element-wise without separators; unrecognized node types are transparent
// wrappers whose content is passed through.
func (w *writer) appendInline(raw json.RawMessage) {
	if len(raw) == 0 || isNull(raw) {
		return
	}
	if firstByte(raw) == '[' {
		var children []json.RawMessage
		if err := json.Unmarshal(raw, &children); err != nil {
			return
		}
		for _, child := range children {
			w.appendInline(child)
		}
		return
	}

	n, ok := decodeNode(raw)
	if !ok {
		return
	}
	switch n.Type {
	case typeText:
		w.append(n.Text)
	case typeCustomWord:
		w.appendCustomWord(n)
	case typeHardBreak:
		w.append("\n")
	default:
		w.appendInline(n.Content)
	}
}

// appendCustomWord records the keyword position before appending its text, so
// the offset points at the keyword's first character in the final string.
func (w *writer) appendCustomWord(n node) {
	var attrs struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(n.Attrs, &attrs); err != nil {
		return
	}
	if attrs.Text == "" {
		return
	}
	w.keywords = append(w.keywords, KeywordPosition{Keyword: attrs.Text, Offset: w.units})
	w.append(attrs.Text)
}

func decodeNode(raw json.RawMessage) (node, bool) {
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		return node{}, false
	}
	return n, true
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

func isNull(raw json.RawMessage) bool {
	return firstByte(raw) == 'n'
}

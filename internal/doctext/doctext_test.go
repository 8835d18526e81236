package doctext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTextAndKeyword(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [
					{"type": "text", "text": "い"},
					{"type": "customWord", "attrs": {"text": "ふね"}},
					{"type": "text", "text": "う"}
				]
			}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "いふねう", a.PlainText)
	require.Len(t, a.Keywords, 1)
	assert.Equal(t, "ふね", a.Keywords[0].Keyword)
	assert.Equal(t, 1, a.Keywords[0].Offset)
}

func TestAnalyzeJoinsBlocksWithSingleNewline(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "a"}]},
			{"type": "paragraph"},
			{"type": "paragraph", "content": [{"type": "text", "text": "b"}]}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", a.PlainText)
}

func TestAnalyzeEmptyBlocksStillSeparate(t *testing.T) {
	// 3 empty blocks produce exactly 2 separators.
	doc := `{
		"type": "doc",
		"content": [
			{"type": "paragraph"},
			{"type": "paragraph"},
			{"type": "paragraph"}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "\n\n", a.PlainText)
	assert.Empty(t, a.Keywords)
}

func TestAnalyzeHardBreak(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [
					{"type": "text", "text": "a"},
					{"type": "hardBreak"},
					{"type": "text", "text": "b"}
				]
			}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "a\nb", a.PlainText)
}

func TestAnalyzeUnknownWrapperIsTransparent(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{
				"type": "blockquote",
				"content": [
					{"type": "fancyWrapper", "content": [{"type": "text", "text": "x"}]}
				]
			}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "x", a.PlainText)
}

func TestAnalyzeCustomWordWithoutAttrs(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [
					{"type": "customWord"},
					{"type": "customWord", "attrs": {"text": ""}},
					{"type": "text", "text": "ok"}
				]
			}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	assert.Equal(t, "ok", a.PlainText)
	assert.Empty(t, a.Keywords)
}

func TestAnalyzeRootValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"non-object root", `[1,2,3]`},
		{"null root", `null`},
		{"wrong type", `{"type":"paragraph","content":[]}`},
		{"missing content", `{"type":"doc"}`},
		{"null content", `{"type":"doc","content":null}`},
		{"non-array content", `{"type":"doc","content":{"a":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(json.RawMessage(tt.doc))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAnalyzeOffsetsCountUTF16Units(t *testing.T) {
	// "𠮷" is outside the BMP and counts as two UTF-16 units.
	doc := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [
					{"type": "text", "text": "𠮷"},
					{"type": "customWord", "attrs": {"text": "ふね"}}
				]
			}
		]
	}`

	a, err := Analyze(json.RawMessage(doc))
	require.NoError(t, err)
	require.Len(t, a.Keywords, 1)
	assert.Equal(t, 2, a.Keywords[0].Offset)
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 4, UTF16Len("いふねう"))
	assert.Equal(t, 2, UTF16Len("𠮷"))
	assert.Equal(t, 5, UTF16Len("a𠮷bc"))
}

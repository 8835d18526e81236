package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoker struct {
	response json.RawMessage
	err      error
	lastReq  StructuredRequest
}

func (s *stubInvoker) RequestStructuredJSON(_ context.Context, req StructuredRequest) (json.RawMessage, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestKeywordGenerate(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{
		"keywords": [
			["うみ", "ふね", "りんご", "でんしゃ"],
			["そら", "とり", "くつ", "ほん"],
			["やま", "かわ", "いす", "とけい"]
		]
	}`)}

	g := NewKeywordListsGenerator(inv, nil)
	got, err := g.Generate(context.Background(), "きょうはうみにいきました")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"うみ", "ふね", "りんご", "でんしゃ"}, got[0])

	assert.Equal(t, "keyword_matrix", inv.lastReq.SchemaName)
	assert.Equal(t, 2000, inv.lastReq.MaxOutputTokens)
	assert.Equal(t, "きょうはうみにいきました", inv.lastReq.UserInput)
}

func TestKeywordGenerateBlankInput(t *testing.T) {
	g := NewKeywordListsGenerator(&stubInvoker{}, nil)

	_, err := g.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrBlankInput)
}

func TestKeywordGenerateMissingKeywords(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"other": []}`)}
	g := NewKeywordListsGenerator(inv, nil)

	_, err := g.Generate(context.Background(), "text")
	var ierr *InvalidResponseError
	assert.ErrorAs(t, err, &ierr)
}

func TestKeywordGenerateNullKeywords(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"keywords": null}`)}
	g := NewKeywordListsGenerator(inv, nil)

	_, err := g.Generate(context.Background(), "text")
	var ierr *InvalidResponseError
	assert.ErrorAs(t, err, &ierr)
}

func TestKeywordGenerateKeywordsNotArray(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"keywords": "nope"}`)}
	g := NewKeywordListsGenerator(inv, nil)

	_, err := g.Generate(context.Background(), "text")
	var ierr *InvalidResponseError
	assert.ErrorAs(t, err, &ierr)
}

func TestKeywordGenerateSkipsNonArrayGroups(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{
		"keywords": [["a", "b"], "not a group", ["c"]]
	}`)}
	g := NewKeywordListsGenerator(inv, nil)

	got, err := g.Generate(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, got)
}

func TestKeywordGenerateLenientElements(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{
		"keywords": [["ok", 3, true, null]]
	}`)}
	g := NewKeywordListsGenerator(inv, nil)

	got, err := g.Generate(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"ok", "3", "true", ""}, got[0])
}

func TestKeywordGeneratePropagatesClientError(t *testing.T) {
	inv := &stubInvoker{err: &ClientError{Kind: KindTimeout, Message: "timed out"}}
	g := NewKeywordListsGenerator(inv, nil)

	_, err := g.Generate(context.Background(), "text")
	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindTimeout, cerr.Kind)
}

func TestKeywordGenerateInitialEmbedsSeed(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"keywords": []}`)}
	g := NewKeywordListsGenerator(inv, nil)

	_, err := g.GenerateInitial(context.Background())
	require.NoError(t, err)
	assert.Contains(t, inv.lastReq.UserInput, "seed=")

	first := inv.lastReq.UserInput
	_, err = g.GenerateInitial(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, inv.lastReq.UserInput)
}

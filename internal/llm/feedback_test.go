package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackGenerate(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{
		"feedbacks": [
			{"original": "わたし、そら", "corrected": "わたしはそら", "reason": "「は」がないから。"}
		]
	}`)}

	g := NewFeedbackGenerator(inv, nil)
	got, err := g.Generate(context.Background(), "わたし、そらのしたで")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "わたし、そら", got[0].Original)
	assert.Equal(t, "わたしはそら", got[0].Corrected)
	assert.Equal(t, "「は」がないから。", got[0].Reason)

	assert.Equal(t, "feedbacks_wrapper", inv.lastReq.SchemaName)
	assert.Equal(t, 2000, inv.lastReq.MaxOutputTokens)
}

func TestFeedbackGenerateBlankInput(t *testing.T) {
	g := NewFeedbackGenerator(&stubInvoker{}, nil)

	_, err := g.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrBlankInput)
}

func TestFeedbackGenerateMissingFeedbacksIsEmpty(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"other": 1}`)}
	g := NewFeedbackGenerator(inv, nil)

	got, err := g.Generate(context.Background(), "text")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedbackGenerateNonArrayFeedbacksIsEmpty(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{"feedbacks": "oops"}`)}
	g := NewFeedbackGenerator(inv, nil)

	got, err := g.Generate(context.Background(), "text")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedbackGenerateDropsAllEmptyItems(t *testing.T) {
	inv := &stubInvoker{response: json.RawMessage(`{
		"feedbacks": [
			{"original": "", "corrected": "", "reason": ""},
			{"original": "a", "corrected": "", "reason": ""}
		]
	}`)}
	g := NewFeedbackGenerator(inv, nil)

	got, err := g.Generate(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Original)
}

func TestFeedbackGeneratePropagatesClientError(t *testing.T) {
	inv := &stubInvoker{err: &ClientError{Kind: KindServerError, Message: "boom"}}
	g := NewFeedbackGenerator(inv, nil)

	_, err := g.Generate(context.Background(), "text")
	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindServerError, cerr.Kind)
}

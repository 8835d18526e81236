package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const keywordSystemPrompt = "あなたは4〜6歳の子ども向けに日本語文章からキーワードセットを抽出するアシスタントです。" +
	"各セットは「関連しそうな単語2つ」と「関連が薄い単語2つ」の計4語で構成してください。" +
	"すべての単語はひらがなで、可能であれば10文字以内に収めてください。" +
	"セットは必ず3つ返し、JSON配列以外の出力は行わないでください。"

const initialKeywordPromptTemplate = `これは章本文が存在しない初回サジェスト用の依頼です。seed=%s
子どもがワクワクするようなテーマや季節、感情、小さな発見などを自由に想像し、
それぞれのセットに関連語2つ・無関係な遊び心ある単語2つを混ぜてください。
ひらがな・10文字以内を守りつつ、毎回違う切り口になるよう意識してください。
`

const keywordMaxOutputTokens = 2000

// KeywordListsGenerator produces keyword suggestion sets for the editor. Each
// set holds four hiragana words; a response always carries three sets.
type KeywordListsGenerator struct {
	invoker Invoker
	log     *slog.Logger
}

func NewKeywordListsGenerator(invoker Invoker, logger *slog.Logger) *KeywordListsGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeywordListsGenerator{invoker: invoker, log: logger}
}

// Generate asks the model for keyword sets derived from the chapter text.
func (g *KeywordListsGenerator) Generate(ctx context.Context, chapterText string) ([][]string, error) {
	if strings.TrimSpace(chapterText) == "" {
		return nil, ErrBlankInput
	}

	schema := keywordMatrixSchema()
	raw, err := g.invoker.RequestStructuredJSON(ctx, StructuredRequest{
		SystemPrompt:    keywordSystemPrompt,
		UserInput:       chapterText,
		Schema:          schema,
		SchemaName:      "keyword_matrix",
		MaxOutputTokens: keywordMaxOutputTokens,
	})
	if err != nil {
		return nil, err
	}
	if verr := ValidateJSONAgainstSchema(schema, raw); verr != nil {
		g.log.Warn("llm.keywords.schema_mismatch", "error", verr)
	}
	return decodeKeywordMatrix(raw)
}

// GenerateInitial produces suggestions before any chapter text exists. A fresh
// seed goes into the prompt so repeated calls do not converge on one theme.
func (g *KeywordListsGenerator) GenerateInitial(ctx context.Context) ([][]string, error) {
	prompt := fmt.Sprintf(initialKeywordPromptTemplate, uuid.NewString())
	return g.Generate(ctx, prompt)
}

func keywordMatrixSchema() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"keywords": map[string]any{
				"type":            "array",
				"additionalItems": false,
				"items": map[string]any{
					"type":            "array",
					"items":           map[string]any{"type": "string"},
					"minItems":        4,
					"maxItems":        4,
					"additionalItems": false,
				},
				"minItems": 3,
				"maxItems": 3,
			},
		},
		"required":             []string{"keywords"},
		"additionalProperties": false,
	}
}

// decodeKeywordMatrix reads keywords as an array of arrays. A missing or
// non-array keywords field is an invalid response; non-array groups are
// skipped and non-string elements degrade to their textual form.
func decodeKeywordMatrix(raw json.RawMessage) ([][]string, error) {
	var envelope struct {
		Keywords json.RawMessage `json:"keywords"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &InvalidResponseError{Message: "model response must be a JSON object"}
	}

	// a JSON null unmarshals into a nil slice without error, so it has to be
	// rejected before the array decode
	var groups []json.RawMessage
	if len(envelope.Keywords) == 0 || isJSONNull(envelope.Keywords) ||
		json.Unmarshal(envelope.Keywords, &groups) != nil {
		return nil, &InvalidResponseError{Message: "model response must contain a 'keywords' array"}
	}

	result := make([][]string, 0, len(groups))
	for _, groupRaw := range groups {
		var elems []json.RawMessage
		if err := json.Unmarshal(groupRaw, &elems); err != nil {
			continue
		}
		group := make([]string, 0, len(elems))
		for _, e := range elems {
			group = append(group, textOf(e))
		}
		result = append(result, group)
	}
	return result, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// textOf renders a scalar JSON value as text. Strings pass through, numbers
// and booleans use their literal form, and containers or null become "".
func textOf(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// feedbackSystemPrompt instructs the model to correct grammar only, in
// hiragana a young child can read, and to answer with a feedbacks array.
const feedbackSystemPrompt = "あなたは4〜6歳の子どもが書いた文章を、文法だけやさしく直すアシスタントです。\n" +
	"内容やストーリーへの意見は不要です。\n" +
	"出力はできるだけひらがなで、難しい言葉は使わないでください。\n" +
	"\n" +
	"出力は必ず JSON で返してください。フィールドは `feedbacks` のみで、以下の構造に従ってください:\n" +
	"- feedbacks: 配列。間違いの数だけ要素を入れる（上限なし、間違いが無ければ空配列）。\n" +
	"- 各要素はオブジェクトで以下を含む:\n" +
	"  - original: 修正前の部分文（全文は入れない）\n" +
	"  - corrected: 文法だけ直した文（意味は変えない）\n" +
	"  - reason: 子どもにもわかるやさしい説明（短く）\n" +
	"\n" +
	"守ること:\n" +
	"- 原文を文/行ごとに見て、文法が変なところだけをセット化する。\n" +
	"- 1セットにつき1つの直し（全体まとめはしない）。原文の順番どおりに並べる。\n" +
	"- 余計なフィールドや文字列化した JSON を返さない。feedbacks 以外は出さない。\n" +
	"- 原文は original 以外で書き換えない。意味や内容には触れない。\n" +
	"- 文法的に直すところが無い場合は、feedbacks を空配列にする。無理に間違いを作らない。\n" +
	"\n" +
	"出力例:\n" +
	"{\n" +
	"  \"feedbacks\": [\n" +
	"    {\n" +
	"      \"original\": \"わたし、そらのしたで\",\n" +
	"      \"corrected\": \"わたしはそらのしたで\",\n" +
	"      \"reason\": \"「わたし」のあとに「は」がなくて、ぶんがつながっていないから。\"\n" +
	"    },\n" +
	"    {\n" +
	"      \"original\": \"わたしにへあるいていって、\",\n" +
	"      \"corrected\": \"わたしのほうへあるいていって、\",\n" +
	"      \"reason\": \"「にへ」はへんなつながりで、どこにいくのかがわからなくなるから。\"\n" +
	"    }\n" +
	"  ]\n" +
	"}\n"

const feedbackMaxOutputTokens = 2000

// FeedbackItem is one grammar correction: the fragment as written, its
// corrected form, and a child-readable reason.
type FeedbackItem struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Reason    string `json:"reason"`
}

// FeedbackGenerator turns chapter text into a list of grammar corrections.
type FeedbackGenerator struct {
	invoker Invoker
	log     *slog.Logger
}

func NewFeedbackGenerator(invoker Invoker, logger *slog.Logger) *FeedbackGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackGenerator{invoker: invoker, log: logger}
}

// Generate asks the model for grammar corrections on the chapter text. An
// empty list is a valid outcome and means nothing needed fixing.
func (g *FeedbackGenerator) Generate(ctx context.Context, chapterText string) ([]FeedbackItem, error) {
	if strings.TrimSpace(chapterText) == "" {
		return nil, ErrBlankInput
	}

	schema := feedbacksSchema()
	raw, err := g.invoker.RequestStructuredJSON(ctx, StructuredRequest{
		SystemPrompt:    feedbackSystemPrompt,
		UserInput:       chapterText,
		Schema:          schema,
		SchemaName:      "feedbacks_wrapper",
		MaxOutputTokens: feedbackMaxOutputTokens,
	})
	if err != nil {
		return nil, err
	}
	if verr := ValidateJSONAgainstSchema(schema, raw); verr != nil {
		g.log.Warn("llm.feedback.schema_mismatch", "error", verr)
	}
	return decodeFeedbacks(raw), nil
}

func feedbacksSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedbacks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"original":  map[string]any{"type": "string"},
						"corrected": map[string]any{"type": "string"},
						"reason":    map[string]any{"type": "string"},
					},
					"required":             []string{"original", "corrected", "reason"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"feedbacks"},
		"additionalProperties": false,
	}
}

// decodeFeedbacks is deliberately forgiving: a missing or malformed feedbacks
// field yields an empty list, and items where all three fields are blank are
// dropped.
func decodeFeedbacks(raw json.RawMessage) []FeedbackItem {
	var envelope struct {
		Feedbacks json.RawMessage `json:"feedbacks"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return []FeedbackItem{}
	}
	var entries []map[string]json.RawMessage
	if len(envelope.Feedbacks) == 0 || json.Unmarshal(envelope.Feedbacks, &entries) != nil {
		return []FeedbackItem{}
	}

	items := make([]FeedbackItem, 0, len(entries))
	for _, entry := range entries {
		item := FeedbackItem{
			Original:  textOf(entry["original"]),
			Corrected: textOf(entry["corrected"]),
			Reason:    textOf(entry["reason"]),
		}
		if strings.TrimSpace(item.Original) == "" &&
			strings.TrimSpace(item.Corrected) == "" &&
			strings.TrimSpace(item.Reason) == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

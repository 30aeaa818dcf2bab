// Package assistant は文章生成サービスを使った自己紹介文の作成と履歴メモの清書を提供します。
// 生成に失敗しても呼び出し側にはエラーを返さず、代替文言を返します。
package assistant

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
)

// Generator はプロンプトから文章を生成する外部サービスの抽象です。
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Locale は出力言語と代替文言の組です。
type Locale struct {
	Language        string
	BioUnavailable  string
	BioServiceError string
}

var locales = map[string]Locale{
	"th": {
		Language:        "Thai",
		BioUnavailable:  "ไม่สามารถสร้างประวัติโดยย่อได้ในขณะนี้",
		BioServiceError: "เกิดข้อผิดพลาดในการเชื่อมต่อกับ AI",
	},
	"en": {
		Language:        "English",
		BioUnavailable:  "A summary could not be generated at this time.",
		BioServiceError: "An error occurred while contacting the AI service.",
	},
}

// DefaultLocale は既定の言語コードです。
const DefaultLocale = "th"

// LookupLocale は言語コードに対応する Locale を返します。
func LookupLocale(code string) (Locale, bool) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

var (
	bioTemplate = template.Must(template.New("bio").Parse(`You are an expert HR assistant. Write a professional, concise executive summary (bio) in {{.Language}} language for the following employee based on their history.

Name: {{.Employee.FirstName}} {{.Employee.LastName}}
Position: {{.Employee.Position}}
Department: {{.Employee.Department}}
Start Date: {{.Employee.StartDate}}

History Records:
{{range .Employee.History}}- [{{.Date}}] {{.Type}}: {{.Title}} - {{.Description}}
{{end}}
Keep the tone formal, encouraging, and professional. Length: around 100-150 words.
`))

	enhanceTemplate = template.Must(template.New("enhance").Parse(`You are a professional HR editor. Rewrite the following rough notes into a polite, professional, and clear record description in {{.Language}} language.
Context: This is a "{{.Type}}" record for an employee history file.

Rough Notes: "{{.Raw}}"

Output only the rewritten text.
`))
)

// Client は records.Writer の実装です。
type Client struct {
	gen    Generator
	locale Locale
	logger logrus.FieldLogger
}

var _ records.Writer = (*Client)(nil)

// NewClient は Client を生成します。未知の言語コードは既定の言語として扱います。
func NewClient(gen Generator, localeCode string, logger logrus.FieldLogger) *Client {
	locale, ok := LookupLocale(localeCode)
	if !ok {
		locale = locales[DefaultLocale]
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{gen: gen, locale: locale, logger: logger}
}

// BioPrompt は自己紹介文生成用のプロンプトを組み立てます。
func (c *Client) BioPrompt(e records.Employee) (string, error) {
	var buf bytes.Buffer
	err := bioTemplate.Execute(&buf, struct {
		Language string
		Employee records.Employee
	}{Language: c.locale.Language, Employee: e})
	return buf.String(), err
}

// EnhancePrompt は履歴メモ清書用のプロンプトを組み立てます。
func (c *Client) EnhancePrompt(raw string, t records.HistoryType) (string, error) {
	var buf bytes.Buffer
	err := enhanceTemplate.Execute(&buf, struct {
		Language string
		Type     records.HistoryType
		Raw      string
	}{Language: c.locale.Language, Type: t, Raw: raw})
	return buf.String(), err
}

// Bio は社員の履歴を要約した自己紹介文を返します。
func (c *Client) Bio(ctx context.Context, e records.Employee) records.GeneratedText {
	log := c.logger.WithField("employee_id", e.ID)

	prompt, err := c.BioPrompt(e)
	if err != nil {
		log.WithError(err).Error("failed to build bio prompt")
		return records.GeneratedText{Text: c.locale.BioServiceError, Fallback: true}
	}

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("error generating bio")
		return records.GeneratedText{Text: c.locale.BioServiceError, Fallback: true}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn("bio generation returned no text")
		return records.GeneratedText{Text: c.locale.BioUnavailable, Fallback: true}
	}
	return records.GeneratedText{Text: text}
}

// Enhance はメモを清書します。失敗時は元のメモをそのまま返します。
func (c *Client) Enhance(ctx context.Context, raw string, t records.HistoryType) records.GeneratedText {
	log := c.logger.WithField("type", t)

	prompt, err := c.EnhancePrompt(raw, t)
	if err != nil {
		log.WithError(err).Error("failed to build enhance prompt")
		return records.GeneratedText{Text: raw, Fallback: true}
	}

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("error enhancing text")
		return records.GeneratedText{Text: raw, Fallback: true}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return records.GeneratedText{Text: raw, Fallback: true}
	}
	return records.GeneratedText{Text: text}
}

package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

//go:embed templates/edit.md
var editTemplate string

//go:embed templates/filter.md
var filterTemplate string

//go:embed templates/adjustment.md
var adjustmentTemplate string

//go:embed templates/safety_policy.md
var safetyPolicy string

// SafetyPolicy は全モード共通で埋め込む安全ポリシーの本文です。
var SafetyPolicy = strings.TrimSpace(safetyPolicy)

// modeTemplates はモードとテンプレート文字列を紐づけるマップです。
var modeTemplates = map[domain.EditMode]string{
	domain.ModeEdit:       editTemplate,
	domain.ModeFilter:     filterTemplate,
	domain.ModeAdjustment: adjustmentTemplate,
}

// PromptBuilder は、編集モードごとの指示文を組み立てる契約です。
type PromptBuilder interface {
	Build(mode domain.EditMode, userRequest string) (string, error)
}

// TemplateData はテンプレートに渡すデータです。
type TemplateData struct {
	UserRequest  string
	SafetyPolicy string
}

// Builder は埋め込みテンプレートから指示文を生成します。
// ユーザーの要求文は検証も加工もせず、そのまま埋め込みます。
type Builder struct {
	templates map[domain.EditMode]*template.Template
}

// NewBuilder はすべてのテンプレートを解析して Builder を初期化します。
func NewBuilder() (*Builder, error) {
	parsed := make(map[domain.EditMode]*template.Template, len(modeTemplates))
	for mode, content := range modeTemplates {
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' (go:embed) の読み込みに失敗しました: 内容が空です", mode)
		}
		tmpl, err := template.New(string(mode)).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("プロンプト '%s' の解析に失敗: %w", mode, err)
		}
		parsed[mode] = tmpl
	}
	return &Builder{templates: parsed}, nil
}

// Build は、要求されたモードのテンプレートにユーザーの要求文と安全ポリシーを埋め込みます。
func (b *Builder) Build(mode domain.EditMode, userRequest string) (string, error) {
	tmpl, ok := b.templates[mode]
	if !ok {
		return "", fmt.Errorf("不明なモードです: '%s'。サポートされているモードは [%s] です", mode, supportedModes())
	}

	var sb strings.Builder
	data := TemplateData{UserRequest: userRequest, SafetyPolicy: SafetyPolicy}
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("プロンプトテンプレートの実行に失敗しました: %w", err)
	}
	return strings.TrimSpace(sb.String()), nil
}

func supportedModes() string {
	names := make([]string, 0, len(domain.Modes))
	for _, m := range domain.Modes {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
)

// EditJob は 1 枚の画像に対する編集指示です。Source は data URL, http(s), gs://, ローカルパスのいずれかです。
type EditJob struct {
	Mode    domain.EditMode
	Source  string
	Prompt  string
	Hotspot *domain.Hotspot
}

// EditRunner は元画像の読み込みから編集までを 1 回分実行します。
type EditRunner struct {
	loader generator.SourceLoader
	editor generator.PhotoEditor
}

// NewEditRunner は EditRunner を初期化します。
func NewEditRunner(loader generator.SourceLoader, editor generator.PhotoEditor) (*EditRunner, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader (SourceLoader) is required")
	}
	if editor == nil {
		return nil, fmt.Errorf("editor (PhotoEditor) is required")
	}
	return &EditRunner{loader: loader, editor: editor}, nil
}

// Run は元画像を読み込み、指定されたモードで編集します。
func (r *EditRunner) Run(ctx context.Context, job EditJob) (*domain.ImageResponse, error) {
	img, err := r.loader.Load(ctx, job.Source)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "編集を開始します", "mode", job.Mode, "source", img.Name, "mime_type", img.MimeType)
	return r.editor.Execute(ctx, domain.EditRequest{
		Mode:    job.Mode,
		Image:   *img,
		Prompt:  job.Prompt,
		Hotspot: job.Hotspot,
	})
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/internal/builder"
	"github.com/shouni/gemini-photo-kit/internal/config"
	"github.com/shouni/gemini-photo-kit/internal/runner"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// setupAppContext は環境変数と CLI フラグを合わせた設定で AppContext を初期化します。
func setupAppContext(ctx context.Context) (*builder.AppContext, error) {
	cfg := config.LoadConfig()
	if imageModel != "" {
		cfg.Kit.ImageModel = imageModel
	}
	return builder.BuildAppContext(ctx, cfg)
}

// singleInput は単一画像を扱うコマンド向けに --input を 1 件だけ取り出します。
func singleInput() (string, error) {
	switch len(opts.Inputs) {
	case 0:
		return "", fmt.Errorf("編集元の画像（--input）を指定してください")
	case 1:
		return opts.Inputs[0], nil
	default:
		return "", fmt.Errorf("このコマンドでは --input は 1 件だけ指定できます（複数の場合は batch を使ってください）")
	}
}

// runSingle は 1 枚の画像を編集し、結果を保存または表示します。
func runSingle(ctx context.Context, out io.Writer, mode domain.EditMode, hotspot *domain.Hotspot) error {
	source, err := singleInput()
	if err != nil {
		return err
	}

	appCtx, err := setupAppContext(ctx)
	if err != nil {
		return err
	}

	editRunner, err := runner.NewEditRunner(appCtx.Loader, appCtx.Editor)
	if err != nil {
		return err
	}

	slog.Info("画像編集を開始します", "mode", mode, "input", source, "image_model", appCtx.Config.Kit.ImageModel)
	resp, err := editRunner.Run(ctx, runner.EditJob{Mode: mode, Source: source, Prompt: opts.Prompt, Hotspot: hotspot})
	if err != nil {
		return fmt.Errorf("画像編集に失敗しました (%s): %w", domain.Kind(err), err)
	}

	return emit(ctx, out, appCtx, resp)
}

// emit は --output があれば保存し、無ければ data URL を表示します。
func emit(ctx context.Context, out io.Writer, appCtx *builder.AppContext, resp *domain.ImageResponse) error {
	if opts.Output == "" {
		_, err := fmt.Fprintln(out, resp.DataURL())
		return err
	}
	if err := runner.Save(ctx, appCtx.Writer, opts.Output, resp); err != nil {
		return err
	}
	slog.Info("編集結果を保存しました", "path", opts.Output, "mime_type", resp.MimeType)
	return nil
}

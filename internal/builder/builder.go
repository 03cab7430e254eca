package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/internal/config"
	kitconfig "github.com/shouni/gemini-photo-kit/pkg/config"
	"github.com/shouni/gemini-photo-kit/pkg/credential"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
	"github.com/shouni/gemini-photo-kit/pkg/prompts"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// BuildAppContext は、設定を基に編集窓口・画像ローダー・出力先を初期化して返します。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, fmt.Errorf("InputReaderの初期化に失敗しました: %w", err)
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		slog.WarnContext(ctx, "OutputWriterの取得に失敗しました。保存機能が制限される可能性があります", "error", err)
	}

	loader, err := BuildSourceLoader(cfg.Kit, reader)
	if err != nil {
		return nil, err
	}

	editor, err := BuildEditor(cfg)
	if err != nil {
		return nil, err
	}

	appCtx := NewAppContext(cfg, editor, loader, writer)
	return &appCtx, nil
}

// BuildSourceLoader は go-http-kit と go-cache を使って SourceCore を組み立てます。
func BuildSourceLoader(kit kitconfig.Config, reader generator.InputReader) (*generator.SourceCore, error) {
	httpClient := httpkit.New(kit.HTTPTimeout)
	sourceCache := cache.New(kit.CacheExpiration, kit.CacheCleanup)

	loader, err := generator.NewSourceCore(
		reader,
		httpClient,
		sourceCache,
		kit.CacheExpiration,
		generator.WithCompression(kit.CompressThreshold, kit.JPEGQuality),
	)
	if err != nil {
		return nil, fmt.Errorf("SourceCoreの初期化に失敗しました: %w", err)
	}
	return loader, nil
}

// BuildEditor は設定された送信バックエンドで GeminiEditor を組み立てます。
func BuildEditor(cfg *config.Config) (*generator.GeminiEditor, error) {
	factory, err := DispatcherFactory(cfg.Kit.Backend)
	if err != nil {
		return nil, err
	}

	promptBuilder, err := prompts.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	creds := credential.Chain{
		credential.Static(cfg.GeminiAPIKey),
		credential.NewEnv(config.EnvAPIKey),
	}

	editor, err := generator.NewGeminiEditor(creds, factory, promptBuilder, cfg.Kit.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("GeminiEditorの初期化に失敗しました: %w", err)
	}
	return editor, nil
}

// Backends は DispatcherFactory が受け付けるバックエンド名の一覧です。空文字は BackendGenAI と同じ扱いです。
var Backends = []string{kitconfig.BackendGenAI}

// DispatcherFactory はバックエンド名に対応する DispatcherFactory を返します。
func DispatcherFactory(backend string) (generator.DispatcherFactory, error) {
	switch backend {
	case "", kitconfig.BackendGenAI:
		return generator.NewGenAIDispatcherFactory(generator.GenAIOptions{}), nil
	default:
		return nil, fmt.Errorf("不明なバックエンドです: '%s'。サポートされているのは [%s] です", backend, kitconfig.BackendGenAI)
	}
}
